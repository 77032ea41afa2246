// Package seed populates the knowledge graph with the ITC BLIDA sample
// dataset. It is a collaborator of the pipeline, not part of it; it talks to
// the store through the same shared connection discipline.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clubgraph/internal/graph"
)

// Run initializes the schema, clears the graph, and loads the dataset.
// Destructive: everything in the store is deleted first.
func Run(ctx context.Context, store *graph.Store, logger *zap.Logger) error {
	logger.Info("seeding ITC BLIDA data into neo4j")

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("schema init failed: %w", err)
	}

	if _, err := store.Query(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	steps := []struct {
		name string
		fn   func(context.Context, *graph.Store) error
	}{
		{"departments", loadDepartments},
		{"events", loadEvents},
		{"projects", loadProjects},
		{"partners", loadPartners},
		{"members", loadMembers},
		{"hostings", loadHostings},
		{"contributions", loadContributions},
	}

	for _, step := range steps {
		logger.Info("loading", zap.String("step", step.name))
		if err := step.fn(ctx, store); err != nil {
			return fmt.Errorf("failed to load %s: %w", step.name, err)
		}
	}

	logger.Info("seeding complete")
	return nil
}

func loadDepartments(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(departments))
	for _, d := range departments {
		batch = append(batch, map[string]any{"name": d.Name, "focus": d.Focus})
	}

	_, err := store.Query(ctx, `
		UNWIND $departments AS dept
		CREATE (:Department {name: dept.name, focus: dept.focus})`,
		map[string]any{"departments": batch})
	return err
}

func loadEvents(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(events))
	for _, e := range events {
		batch = append(batch, map[string]any{
			"name":        e.Name,
			"date":        e.Date,
			"description": e.Description,
			"location":    e.Location,
			"theme":       e.Theme,
			"format":      e.Format,
			"source":      e.Source,
		})
	}

	_, err := store.Query(ctx, `
		UNWIND $events AS event
		CREATE (:Event {
			name: event.name,
			date: event.date,
			description: event.description,
			location: event.location,
			theme: event.theme,
			format: event.format,
			source: event.source
		})`,
		map[string]any{"events": batch})
	return err
}

func loadProjects(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		batch = append(batch, map[string]any{
			"name":            p.Name,
			"year":            p.Year,
			"status":          p.Status,
			"lead_department": p.LeadDepartment,
			"description":     p.Description,
			"showcased_at":    p.ShowcasedAt,
			"source":          p.Source,
		})
	}

	_, err := store.Query(ctx, `
		UNWIND $projects AS project
		CREATE (p:Project {
			name: project.name,
			year: project.year,
			status: project.status,
			description: project.description,
			source: project.source
		})
		WITH p, project
		MATCH (dept:Department {name: project.lead_department})
		MERGE (dept)-[:LEADS]->(p)
		WITH p, project
		UNWIND coalesce(project.showcased_at, []) AS eventName
		MATCH (ev:Event {name: eventName})
		MERGE (p)-[:FEATURED_IN]->(ev)`,
		map[string]any{"projects": batch})
	return err
}

func loadPartners(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(partners))
	for _, p := range partners {
		batch = append(batch, map[string]any{
			"name":              p.Name,
			"kind":              p.Kind,
			"focus":             p.Focus,
			"supports_events":   p.SupportsEvents,
			"supports_projects": p.SupportsProjects,
			"source":            p.Source,
		})
	}

	if _, err := store.Query(ctx, `
		UNWIND $partners AS partner
		CREATE (:Partner {
			name: partner.name,
			kind: partner.kind,
			focus: partner.focus,
			source: partner.source
		})`,
		map[string]any{"partners": batch}); err != nil {
		return err
	}

	if _, err := store.Query(ctx, `
		UNWIND $partners AS partner
		MATCH (p:Partner {name: partner.name})
		UNWIND coalesce(partner.supports_events, []) AS eventName
		MATCH (ev:Event {name: eventName})
		MERGE (p)-[:SPONSORS]->(ev)`,
		map[string]any{"partners": batch}); err != nil {
		return err
	}

	_, err := store.Query(ctx, `
		UNWIND $partners AS partner
		MATCH (p:Partner {name: partner.name})
		UNWIND coalesce(partner.supports_projects, []) AS projectName
		MATCH (proj:Project {name: projectName})
		MERGE (p)-[:SUPPORTS]->(proj)`,
		map[string]any{"partners": batch})
	return err
}

func loadMembers(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(members))
	for _, m := range members {
		batch = append(batch, map[string]any{
			"id":         m.ID,
			"name":       m.Name,
			"role":       m.Role,
			"joined":     m.Joined,
			"expertise":  m.Expertise,
			"department": m.Department,
			"organizes":  m.Organizes,
			"source":     m.Source,
		})
	}

	_, err := store.Query(ctx, `
		UNWIND $members AS memberData
		CREATE (m:Member {
			id: memberData.id,
			name: memberData.name,
			role: memberData.role,
			joined: memberData.joined,
			expertise: memberData.expertise,
			source: memberData.source
		})
		WITH m, memberData
		MATCH (dept:Department {name: memberData.department})
		MERGE (m)-[:MEMBER_OF]->(dept)
		WITH m, memberData
		UNWIND coalesce(memberData.organizes, []) AS eventName
		MATCH (ev:Event {name: eventName})
		MERGE (m)-[:ORGANIZES]->(ev)`,
		map[string]any{"members": batch})
	return err
}

func loadHostings(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(hostings))
	for _, h := range hostings {
		batch = append(batch, map[string]any{"department": h.Department, "event": h.Event})
	}

	_, err := store.Query(ctx, `
		UNWIND $hostings AS hosting
		MATCH (dept:Department {name: hosting.department})
		MATCH (event:Event {name: hosting.event})
		MERGE (dept)-[:HOSTS]->(event)`,
		map[string]any{"hostings": batch})
	return err
}

func loadContributions(ctx context.Context, store *graph.Store) error {
	batch := make([]map[string]any, 0, len(contributions))
	for _, c := range contributions {
		batch = append(batch, map[string]any{
			"member_id": c.MemberID,
			"project":   c.Project,
			"scope":     c.Scope,
		})
	}

	_, err := store.Query(ctx, `
		UNWIND $contribs AS contrib
		MATCH (m:Member {id: contrib.member_id})
		MATCH (p:Project {name: contrib.project})
		MERGE (m)-[:CONTRIBUTES_TO {scope: contrib.scope}]->(p)`,
		map[string]any{"contribs": batch})
	return err
}
