package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The dataset is static; these tests pin its referential integrity so a bad
// edit fails fast instead of silently dropping relationships at load time.

func TestDataset_ReferentialIntegrity(t *testing.T) {
	deptNames := make(map[string]bool)
	for _, d := range departments {
		deptNames[d.Name] = true
	}
	eventNames := make(map[string]bool)
	for _, e := range events {
		eventNames[e.Name] = true
	}
	projectNames := make(map[string]bool)
	for _, p := range projects {
		projectNames[p.Name] = true
	}
	memberIDs := make(map[string]bool)
	for _, m := range members {
		memberIDs[m.ID] = true
	}

	t.Run("projects reference known departments and events", func(t *testing.T) {
		for _, p := range projects {
			assert.True(t, deptNames[p.LeadDepartment], "project %q lead department %q", p.Name, p.LeadDepartment)
			for _, ev := range p.ShowcasedAt {
				assert.True(t, eventNames[ev], "project %q showcased at unknown event %q", p.Name, ev)
			}
		}
	})

	t.Run("partners reference known events and projects", func(t *testing.T) {
		for _, p := range partners {
			for _, ev := range p.SupportsEvents {
				assert.True(t, eventNames[ev], "partner %q supports unknown event %q", p.Name, ev)
			}
			for _, proj := range p.SupportsProjects {
				assert.True(t, projectNames[proj], "partner %q supports unknown project %q", p.Name, proj)
			}
		}
	})

	t.Run("members reference known departments and events", func(t *testing.T) {
		for _, m := range members {
			assert.True(t, deptNames[m.Department], "member %q department %q", m.ID, m.Department)
			for _, ev := range m.Organizes {
				assert.True(t, eventNames[ev], "member %q organizes unknown event %q", m.ID, ev)
			}
		}
	})

	t.Run("hostings and contributions resolve", func(t *testing.T) {
		for _, h := range hostings {
			assert.True(t, deptNames[h.Department], "hosting department %q", h.Department)
			assert.True(t, eventNames[h.Event], "hosting event %q", h.Event)
		}
		for _, c := range contributions {
			assert.True(t, memberIDs[c.MemberID], "contribution member %q", c.MemberID)
			assert.True(t, projectNames[c.Project], "contribution project %q", c.Project)
		}
	})

	t.Run("member ids unique", func(t *testing.T) {
		assert.Len(t, memberIDs, len(members))
	})
}
