// clubgraph answers questions about ITC BLIDA from a Neo4j knowledge graph,
// routing each question through an LLM-driven pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clubgraph/internal/agent"
	"clubgraph/internal/config"
	"clubgraph/internal/graph"
	"clubgraph/internal/llm"
	"clubgraph/internal/seed"
	"clubgraph/internal/server"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "clubgraph",
	Short: "clubgraph - knowledge graph Q&A service for ITC BLIDA",
	Long: `clubgraph answers natural-language questions about the ITC BLIDA club.

Each question is classified by an LLM: questions about the club's internal
data (members, departments, events, projects) are answered from a Neo4j
knowledge graph via a synthesized Cypher query; everything else gets a
conversational answer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP question-answering service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client, err := llm.NewClientFromConfig(cfg.LLM, cfg.GetLLMTimeout())
		if err != nil {
			return err
		}

		store := graph.NewStore(cfg.Neo4j, logger)
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				logger.Warn("store close failed", zap.Error(err))
			}
		}()

		pipeline := agent.NewPipeline(client, store, logger)
		srv := server.New(pipeline, logger)

		return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.GetShutdownTimeout())
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the schema and load the sample dataset (destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store := graph.NewStore(cfg.Neo4j, logger)
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				logger.Warn("store close failed", zap.Error(err))
			}
		}()

		return seed.Run(ctx, store, logger)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask \"question\"",
	Short: "Answer a single question from the command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client, err := llm.NewClientFromConfig(cfg.LLM, cfg.GetLLMTimeout())
		if err != nil {
			return err
		}

		store := graph.NewStore(cfg.Neo4j, logger)
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				logger.Warn("store close failed", zap.Error(err))
			}
		}()

		pipeline := agent.NewPipeline(client, store, logger)
		result, err := pipeline.Run(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Answer: %s\n", result.Answer)
		fmt.Printf("Classification: %s\n", result.Classification)
		if result.Context != "" {
			fmt.Printf("Context: %s\n", result.Context)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "clubgraph.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
