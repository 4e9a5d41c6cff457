package importer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordError describes one failed record. Index is the 1-based position in
// the source (ledger line or roster entry number).
type RecordError struct {
	Index int
	Label string
	Cause string
}

// Credential is the handout for one provisioned account. The plaintext is
// random per account and must be rotated on first login.
type Credential struct {
	Name         string
	Email        string
	Role         string
	TempPassword string
}

// RunReport accumulates the statistics of a single import pass. It is owned
// exclusively by that pass and emitted to the operator at the end; it is
// never persisted.
type RunReport struct {
	RunID      uuid.UUID
	Pass       string
	StartedAt  time.Time
	FinishedAt time.Time

	Created int
	Skipped int
	Errored int

	// Client pass breakdown.
	WithEmail     int
	WithPhone     int
	WithBirthDate int

	// Professionals pass breakdown.
	AdministrativeSkipped int
	BySpecialty           map[string]int

	// Users pass breakdown.
	Linked         int
	DuplicateEmail int
	ByRole         map[string]int
	Credentials    []Credential

	Errors []RecordError

	errorCap int
}

func newRunReport(pass string, errorCap int) *RunReport {
	return &RunReport{
		RunID:       uuid.New(),
		Pass:        pass,
		StartedAt:   time.Now().UTC(),
		BySpecialty: make(map[string]int),
		ByRole:      make(map[string]int),
		errorCap:    errorCap,
	}
}

func (r *RunReport) addError(index int, label string, err error) {
	r.Errored++
	r.Errors = append(r.Errors, RecordError{Index: index, Label: label, Cause: err.Error()})
}

func (r *RunReport) finish() {
	r.FinishedAt = time.Now().UTC()
}

// Processed is the number of source records the pass looked at.
func (r *RunReport) Processed() int {
	return r.Created + r.Skipped + r.Errored + r.AdministrativeSkipped
}

// Summary renders the operator-facing run report. Error details are capped;
// the counters are not.
func (r *RunReport) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pass %s (run %s) finished in %s\n", r.Pass, r.RunID, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	fmt.Fprintf(&b, "  created: %d\n", r.Created)
	fmt.Fprintf(&b, "  skipped: %d\n", r.Skipped)
	fmt.Fprintf(&b, "  errored: %d\n", r.Errored)

	if r.AdministrativeSkipped > 0 {
		fmt.Fprintf(&b, "  administrative skipped: %d\n", r.AdministrativeSkipped)
	}
	if r.DuplicateEmail > 0 {
		fmt.Fprintf(&b, "  duplicate emails skipped: %d\n", r.DuplicateEmail)
	}
	if r.Linked > 0 {
		fmt.Fprintf(&b, "  linked to professionals: %d\n", r.Linked)
	}
	if r.WithEmail > 0 || r.WithPhone > 0 || r.WithBirthDate > 0 {
		fmt.Fprintf(&b, "  with email: %d, with phone: %d, with birth date: %d\n", r.WithEmail, r.WithPhone, r.WithBirthDate)
	}
	writeBreakdown(&b, "by specialty", r.BySpecialty)
	writeBreakdown(&b, "by role", r.ByRole)

	if processed := r.Processed(); processed > 0 {
		fmt.Fprintf(&b, "  success rate: %.1f%%\n", float64(r.Created)/float64(processed)*100)
	}

	if len(r.Credentials) > 0 {
		fmt.Fprintf(&b, "  provisioned accounts (temporary credentials, reset required on first login):\n")
		for _, c := range r.Credentials {
			fmt.Fprintf(&b, "    - %s (%s) %s temp password: %s\n", c.Name, c.Role, c.Email, c.TempPassword)
		}
	}

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "  errors:\n")
		shown := r.Errors
		if r.errorCap > 0 && len(shown) > r.errorCap {
			shown = shown[:r.errorCap]
		}
		for _, e := range shown {
			fmt.Fprintf(&b, "    - record %d (%s): %s\n", e.Index, e.Label, e.Cause)
		}
		if rest := len(r.Errors) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "    ... and %d more\n", rest)
		}
	}

	return b.String()
}

func writeBreakdown(b *strings.Builder, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "  %s:\n", title)
	for _, k := range keys {
		fmt.Fprintf(b, "    - %s: %d\n", k, counts[k])
	}
}
