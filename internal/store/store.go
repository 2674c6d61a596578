// Package store owns the in-memory task collection and the selected
// week anchor, and persists both as a single JSON blob through the kv
// capability after every mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/saijayin/agenda/internal/kv"
	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/week"
)

// DefaultKey is the default storage key; kept stable so existing
// state blobs keep loading across versions.
const DefaultKey = "agenda_semanal_v1"

// ErrNotFound is returned by Update when no task matches the id.
var ErrNotFound = errors.New("task not found")

// Store is the single owner of all task records. It is not safe for
// concurrent use; callers serialize access (the CLI and the web
// service each funnel mutations through one goroutine-safe wrapper).
type Store struct {
	backend kv.Store
	key     string

	tasks      []task.Task
	weekAnchor string
}

// state is the persisted snapshot shape.
type state struct {
	Tasks        []task.Task `json:"tasks"`
	WeekStartISO string      `json:"weekStartISO"`
}

// Draft carries the raw fields of a create or update. DateISO, when
// set and inside the selected week, wins over DayIndex; otherwise
// DayIndex places the task within the week.
type Draft struct {
	DateISO  string
	DayIndex int
	Title    string
	Dept     string
	Owner    string
	Progress int
	Status   string
	Priority string
}

// Open restores a store from the backend under the given key. A
// missing or corrupt blob yields an empty collection; an empty week
// anchor snaps to the Monday of the current week.
func Open(backend kv.Store, key string) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{backend: backend, key: key}
	if err := s.restore(); err != nil {
		return nil, err
	}
	if s.weekAnchor == "" {
		s.weekAnchor = week.ToISO(week.MondayOf(time.Now()))
	}
	return s, nil
}

func (s *Store) restore() error {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		return fmt.Errorf("failed to read persisted state: %w", err)
	}
	if !ok {
		return nil
	}

	var st state
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// Corrupt blob: start over rather than failing the process.
		return nil
	}
	s.tasks = st.Tasks
	if _, err := week.FromISO(st.WeekStartISO); err == nil {
		// Snap in case an older blob carried a non-Monday anchor.
		s.weekAnchor, _ = week.MondayOfISO(st.WeekStartISO)
	}
	return nil
}

// persist writes the full snapshot. Every mutating operation calls it
// before returning.
func (s *Store) persist() error {
	st := state{Tasks: s.tasks, WeekStartISO: s.weekAnchor}
	if st.Tasks == nil {
		st.Tasks = []task.Task{}
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := s.backend.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// WeekAnchor returns the currently selected week's Monday.
func (s *Store) WeekAnchor() string {
	return s.weekAnchor
}

// SetWeekAnchor selects the week containing iso, snapping to Monday.
func (s *Store) SetWeekAnchor(iso string) error {
	monday, err := week.MondayOfISO(iso)
	if err != nil {
		return err
	}
	s.weekAnchor = monday
	return s.persist()
}

// Tasks returns a snapshot copy of every task.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id, or false.
func (s *Store) Get(id string) (task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// normalize builds a well-formed task from a draft, snapping the date
// into the selected week.
func (s *Store) normalize(id string, d Draft) (task.Task, error) {
	idx := d.DayIndex
	if idx < 0 {
		idx = 0
	}
	if idx > 4 {
		idx = 4
	}
	if d.DateISO != "" {
		if di, err := week.DayIndex(s.weekAnchor, d.DateISO); err == nil && di >= 0 && di <= 4 {
			idx = di
		}
	}
	dateISO, err := week.AddDays(s.weekAnchor, idx)
	if err != nil {
		return task.Task{}, err
	}

	progress := task.Clamp(d.Progress)
	t := task.Task{
		ID:       id,
		DateISO:  dateISO,
		Title:    d.Title,
		Dept:     d.Dept,
		Owner:    d.Owner,
		Progress: progress,
		Status:   task.ResolveStatus(d.Status, progress),
		Priority: task.ResolvePriority(d.Priority),
	}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Create validates, normalizes and appends a new task, then persists.
func (s *Store) Create(d Draft) (task.Task, error) {
	t, err := s.normalize(task.NewID(), d)
	if err != nil {
		return task.Task{}, err
	}
	s.tasks = append(s.tasks, t)
	if err := s.persist(); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Update replaces the task with the given id. Unknown ids are
// rejected with ErrNotFound and nothing is mutated.
func (s *Store) Update(id string, d Draft) (task.Task, error) {
	t, err := s.normalize(id, d)
	if err != nil {
		return task.Task{}, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = t
			if err := s.persist(); err != nil {
				return task.Task{}, err
			}
			return t, nil
		}
	}
	return task.Task{}, ErrNotFound
}

// Delete removes the task with the given id; absent ids are a no-op.
func (s *Store) Delete(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// ReplaceWeek swaps out every task whose canonical week equals weekISO
// for the given replacement set. Tasks in other weeks are untouched.
// This is the import merge contract: a full replace, not a diff.
func (s *Store) ReplaceWeek(weekISO string, replacement []task.Task) error {
	monday, err := week.MondayOfISO(weekISO)
	if err != nil {
		return err
	}

	kept := make([]task.Task, 0, len(s.tasks)+len(replacement))
	for _, t := range s.tasks {
		w, err := week.MondayOfISO(t.DateISO)
		if err != nil || w != monday {
			kept = append(kept, t)
		}
	}
	s.tasks = append(kept, replacement...)
	return s.persist()
}

// ClearAll empties the collection and erases the persisted blob.
func (s *Store) ClearAll() error {
	s.tasks = nil
	if err := s.backend.Delete(s.key); err != nil {
		return fmt.Errorf("failed to clear persisted state: %w", err)
	}
	return nil
}

// Len returns the number of stored tasks across all weeks.
func (s *Store) Len() int {
	return len(s.tasks)
}
