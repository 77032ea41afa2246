package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Expected test-key authorization")
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		msgs, ok := body["messages"].([]interface{})
		if !ok || len(msgs) != 1 {
			t.Errorf("Expected a single user message, got %v", body["messages"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-123",
			"choices": [
				{
					"message": {
						"content": "general"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key")
	client.baseURL = server.URL

	resp, err := client.Complete(context.Background(), "Hi, are you a robot?")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp != "general" {
		t.Errorf("Expected 'general', got %q", resp)
	}
}

func TestOpenAIClient_CompleteWithSystem_SendsSystemMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body openAIRequest
		json.NewDecoder(r.Body).Decode(&body)

		if len(body.Messages) != 2 {
			t.Fatalf("Expected 2 messages, got %d", len(body.Messages))
		}
		if body.Messages[0].Role != "system" {
			t.Errorf("Expected system role first, got %q", body.Messages[0].Role)
		}
		if body.Messages[1].Role != "user" {
			t.Errorf("Expected user role second, got %q", body.Messages[1].Role)
		}

		w.Write([]byte(`{"choices":[{"message":{"content":"Hello!"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key")
	client.baseURL = server.URL

	resp, err := client.CompleteWithSystem(context.Background(), "You are a helpful assistant.", "Hi")
	if err != nil {
		t.Fatalf("CompleteWithSystem failed: %v", err)
	}
	if resp != "Hello!" {
		t.Errorf("Expected 'Hello!', got %q", resp)
	}
}

func TestOpenAIClient_NoAPIKey(t *testing.T) {
	client := NewOpenAIClient("")
	_, err := client.Complete(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestOpenAIClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"upstream exploded"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
}
