// Package task defines the task record and the normalization rules
// that every record passes through before entering the store, whether
// it was typed in interactively or reconciled from a spreadsheet.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Status is a task state. The wire values are the Spanish literals
// the spreadsheet format uses.
type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusInProgress Status = "En progreso"
	StatusDone       Status = "Hecho"
)

// Statuses lists the valid states in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusDone}

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

// Priorities lists the valid priorities in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Placeholder replaces empty dept/owner cells on import.
const Placeholder = "—"

// ErrMissingField is returned when a create or update is attempted
// with an empty title, department or owner.
var ErrMissingField = errors.New("title, department and owner are required")

// Task is the core record. DateISO always falls on a Monday-Friday day
// of some week; Progress is always within [0,100].
type Task struct {
	ID       string   `json:"id"`
	DateISO  string   `json:"dateISO"`
	Title    string   `json:"title"`
	Dept     string   `json:"dept"`
	Owner    string   `json:"owner"`
	Progress int      `json:"progress"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.New().String()
}

// Validate checks the fields required for interactive create/update.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Dept) == "" || strings.TrimSpace(t.Owner) == "" {
		return ErrMissingField
	}
	return nil
}

// EffectiveStatus re-derives the display status from both stored
// fields. A task at 100% is Hecho no matter what the stored status
// says; otherwise the stored status wins when valid and is inferred
// from progress when not.
func (t *Task) EffectiveStatus() Status {
	if t.Progress >= 100 {
		return StatusDone
	}
	return ResolveStatus(string(t.Status), t.Progress)
}

// Done reports whether the task counts as completed for statistics:
// progress at 100 or an explicit Hecho status.
func (t *Task) Done() bool {
	return t.Progress >= 100 || t.Status == StatusDone
}

func (t *Task) String() string {
	return fmt.Sprintf("%s [%s] %s (%s/%s) %d%%", t.DateISO, t.EffectiveStatus(), t.Title, t.Dept, t.Owner, t.Progress)
}
