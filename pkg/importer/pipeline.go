package importer

import (
	"context"
	"errors"
	"fmt"
)

// PassSpec declares one import pass and the passes that must have completed
// before it may run. The ordering dependency (professionals before users) is
// data, not convention, so a CLI or scheduler can enforce it mechanically.
type PassSpec struct {
	Name     string
	Requires []string
	Run      func(ctx context.Context) (*RunReport, error)
}

// ErrDependencyFailed marks a pass that was skipped because a pass it
// requires failed fatally.
var ErrDependencyFailed = errors.New("required pass failed")

// Pipeline runs passes sequentially in declaration order. A fatal pass
// failure skips every pass that requires it but leaves independent passes
// untouched.
type Pipeline struct {
	passes []PassSpec
}

func NewPipeline(passes ...PassSpec) (*Pipeline, error) {
	seen := make(map[string]bool, len(passes))
	for _, p := range passes {
		if p.Name == "" || p.Run == nil {
			return nil, fmt.Errorf("pipeline: pass with empty name or nil run func")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("pipeline: duplicate pass %q", p.Name)
		}
		for _, req := range p.Requires {
			if !seen[req] {
				return nil, fmt.Errorf("pipeline: pass %q requires %q which is not scheduled before it", p.Name, req)
			}
		}
		seen[p.Name] = true
	}
	return &Pipeline{passes: passes}, nil
}

// Run executes every pass, calling onReport after each successful one. The
// returned error joins all fatal pass failures; per-record errors live in
// the reports, not here.
func (p *Pipeline) Run(ctx context.Context, onReport func(*RunReport)) error {
	failed := make(map[string]bool)
	var errs []error

	for _, pass := range p.passes {
		var blocked string
		for _, req := range pass.Requires {
			if failed[req] {
				blocked = req
				break
			}
		}
		if blocked != "" {
			failed[pass.Name] = true
			errs = append(errs, fmt.Errorf("pass %s skipped (%s): %w", pass.Name, blocked, ErrDependencyFailed))
			continue
		}

		report, err := pass.Run(ctx)
		if err != nil {
			failed[pass.Name] = true
			errs = append(errs, fmt.Errorf("pass %s: %w", pass.Name, err))
			continue
		}
		if onReport != nil && report != nil {
			onReport(report)
		}
	}

	return errors.Join(errs...)
}
