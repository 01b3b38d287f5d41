// Package plan reads the project-plan documents the CLI consumes: the
// project window, its resources and their assignments, and optional
// estimation inputs. The web layer owns the real schema; a plan file is
// the same rows exported as JSON.
package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ib823/cockpit-engine/internal/allocation"
	"github.com/ib823/cockpit-engine/internal/calendar"
	"github.com/ib823/cockpit-engine/internal/estimator"
)

// Resource is a named person or role on the project.
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// AssignmentRow is one phase- or task-level assignment of a resource.
type AssignmentRow struct {
	Resource string  `json:"resource"`
	Owner    string  `json:"owner,omitempty"` // owning phase or task, informational
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Percent  float64 `json:"percent"`
}

// Plan is a complete project-plan document.
type Plan struct {
	Project     string            `json:"project"`
	Region      string            `json:"region"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Resources   []Resource        `json:"resources"`
	Assignments []AssignmentRow   `json:"assignments"`
	Estimate    *estimator.Inputs `json:"estimate,omitempty"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks region, window, resource references and percentages.
func (p *Plan) Validate() error {
	if _, err := calendar.ParseRegion(p.Region); err != nil {
		return err
	}
	if _, err := p.Window(); err != nil {
		return err
	}

	ids := make(map[string]bool, len(p.Resources))
	for _, r := range p.Resources {
		if r.ID == "" {
			return fmt.Errorf("resource %q has no id", r.Name)
		}
		if ids[r.ID] {
			return fmt.Errorf("duplicate resource id %q", r.ID)
		}
		ids[r.ID] = true
	}

	for i, a := range p.Assignments {
		if !ids[a.Resource] {
			return fmt.Errorf("assignment %d references unknown resource %q", i, a.Resource)
		}
		if a.Percent <= 0 || a.Percent > 100 {
			return fmt.Errorf("assignment %d: percent %g outside (0, 100]", i, a.Percent)
		}
		if _, err := windowOf(a.Start, a.End); err != nil {
			return fmt.Errorf("assignment %d: %w", i, err)
		}
	}
	return nil
}

// ParsedRegion returns the plan's region code.
func (p *Plan) ParsedRegion() (calendar.Region, error) {
	return calendar.ParseRegion(p.Region)
}

// Window returns the project window.
func (p *Plan) Window() (calendar.Window, error) {
	return windowOf(p.Start, p.End)
}

// AllocationAssignments projects the plan's assignment rows into engine
// values. Validate must have passed.
func (p *Plan) AllocationAssignments() ([]allocation.Assignment, error) {
	out := make([]allocation.Assignment, 0, len(p.Assignments))
	for i, a := range p.Assignments {
		w, err := windowOf(a.Start, a.End)
		if err != nil {
			return nil, fmt.Errorf("assignment %d: %w", i, err)
		}
		out = append(out, allocation.Assignment{
			Window:     w,
			ResourceID: a.Resource,
			Percent:    a.Percent,
		})
	}
	return out, nil
}

// ResourceName returns the display name for a resource id, falling back to
// the id itself.
func (p *Plan) ResourceName(id string) string {
	for _, r := range p.Resources {
		if r.ID == id {
			if r.Name != "" {
				return r.Name
			}
			break
		}
	}
	return id
}

func windowOf(start, end string) (calendar.Window, error) {
	s, err := calendar.ParseDay(start)
	if err != nil {
		return calendar.Window{}, err
	}
	e, err := calendar.ParseDay(end)
	if err != nil {
		return calendar.Window{}, err
	}
	return calendar.NewWindow(s, e)
}
