// Package checker runs the triple validator over whole Graphol projects
// and reports every illegal edge.
package checker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ontoworks/graphol/diagram"
	"github.com/ontoworks/graphol/loader"
	"github.com/ontoworks/graphol/validation"
	"github.com/ontoworks/graphol/vocabulary/graphol"
	"github.com/ontoworks/graphol/vocabulary/owl"
)

// Diagnostic describes one illegal edge or node. Node diagnostics carry
// an empty EdgeID.
type Diagnostic struct {
	Diagram  string           `json:"diagram"`
	EdgeID   string           `json:"edge_id"`
	SourceID string           `json:"source_id"`
	TargetID string           `json:"target_id"`
	EdgeKind graphol.EdgeKind `json:"edge_kind"`
	Message  string           `json:"message"`
}

func (d Diagnostic) String() string {
	if d.EdgeID == "" {
		return fmt.Sprintf("%s: node %s: %s", d.Diagram, d.SourceID, d.Message)
	}
	return fmt.Sprintf("%s: %s edge %s (%s -> %s): %s",
		d.Diagram, d.EdgeKind, d.EdgeID, d.SourceID, d.TargetID, d.Message)
}

// Report is the outcome of one check run.
type Report struct {
	RunID       string       `json:"run_id"`
	Path        string       `json:"path,omitempty"`
	CheckedAt   time.Time    `json:"checked_at"`
	Edges       int          `json:"edges"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Clean reports whether every checked edge was legal.
func (r *Report) Clean() bool { return len(r.Diagnostics) == 0 }

// Checker validates every edge of loaded projects.
type Checker struct {
	logger  *slog.Logger
	profile owl.Profile
}

// New creates a checker for the unrestricted OWL 2 profile. A nil logger
// falls back to slog.Default.
func New(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{logger: logger, profile: owl.ProfileOWL2}
}

// SetProfile restricts datatype diagnostics to the given OWL 2 profile.
func (c *Checker) SetProfile(p owl.Profile) {
	c.profile = p
}

// CheckFile loads the project file at path and checks every diagram in it.
func (c *Checker) CheckFile(path string) (*Report, error) {
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	report := c.CheckProject(p)
	report.Path = path
	return report, nil
}

// CheckProject checks every diagram of an already loaded project.
func (c *Checker) CheckProject(p *loader.Project) *Report {
	report := newReport()
	for _, d := range p.Diagrams {
		c.checkDiagram(report, d)
	}
	c.logger.Info("check complete",
		"run_id", report.RunID,
		"project", p.Name,
		"edges", report.Edges,
		"diagnostics", len(report.Diagnostics))
	return report
}

// CheckDiagram checks a single diagram.
func (c *Checker) CheckDiagram(d *diagram.Diagram) *Report {
	report := newReport()
	c.checkDiagram(report, d)
	return report
}

func newReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CheckedAt: time.Now().UTC(),
	}
}

func (c *Checker) checkDiagram(report *Report, d *diagram.Diagram) {
	// Each diagram gets its own validator: the memo is keyed by node
	// references and must not leak across diagrams.
	v := validation.New()
	for _, e := range d.Edges() {
		report.Edges++
		res := v.Validate(e.Source(), e.Kind(), e.Target())
		if res.IsValid() {
			continue
		}
		diag := Diagnostic{
			Diagram:  d.Name(),
			EdgeID:   e.ID(),
			SourceID: e.Source().ID(),
			TargetID: e.Target().ID(),
			EdgeKind: e.Kind(),
			Message:  res.Message(),
		}
		report.Diagnostics = append(report.Diagnostics, diag)
		c.logger.Debug("illegal edge",
			"diagram", d.Name(),
			"edge", e.ID(),
			"message", res.Message())
	}

	for _, n := range d.Nodes() {
		dt := n.Datatype()
		if dt == "" || c.profile.Supports(dt) {
			continue
		}
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			Diagram:  d.Name(),
			SourceID: n.ID(),
			Message:  fmt.Sprintf("datatype %s is not in the %s profile", dt, c.profile),
		})
	}
}
