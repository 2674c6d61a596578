// Package agg derives week views from task snapshots: weekday
// buckets, per-day and whole-week statistics, filter vocabularies and
// the chart payload. It never mutates the store; every function takes
// a snapshot and returns a new structure.
package agg

import (
	"math"
	"sort"

	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/week"
)

// DayStats summarizes one weekday bucket.
type DayStats struct {
	Count       int `json:"count"`
	AvgProgress int `json:"avgProgress"`
	Done        int `json:"done"`
}

// WeekStats summarizes the whole week, including tasks that fell
// outside the Monday-Friday buckets.
type WeekStats struct {
	Total       int `json:"total"`
	AvgProgress int `json:"avgProgress"`
}

// ChartData is the payload handed to the charting capability: five
// weekday labels with matching average-progress and count series.
type ChartData struct {
	Labels      [5]string `json:"labels"`
	AvgProgress [5]int    `json:"avgProgress"`
	Counts      [5]int    `json:"counts"`
}

// Filter holds the three optional equality filters applied after week
// partitioning. Empty fields match everything.
type Filter struct {
	Dept   string
	Owner  string
	Status task.Status
}

// TasksInWeek returns the tasks whose canonical week is anchorISO.
func TasksInWeek(tasks []task.Task, anchorISO string) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		w, err := week.MondayOfISO(t.DateISO)
		if err == nil && w == anchorISO {
			out = append(out, t)
		}
	}
	return out
}

// DayBuckets partitions a week's tasks into the five weekday slots.
// Tasks outside the Monday-Friday window are excluded from the
// buckets but still count toward WeekStatsOf.
func DayBuckets(weekTasks []task.Task, anchorISO string) [5][]task.Task {
	var buckets [5][]task.Task
	for _, t := range weekTasks {
		idx, err := week.DayIndex(anchorISO, t.DateISO)
		if err == nil && idx >= 0 && idx <= 4 {
			buckets[idx] = append(buckets[idx], t)
		}
	}
	return buckets
}

// PerDayStats computes count, rounded average progress and done count
// over one bucket. An empty bucket averages to 0.
func PerDayStats(bucket []task.Task) DayStats {
	st := DayStats{Count: len(bucket)}
	if len(bucket) == 0 {
		return st
	}
	sum := 0
	for _, t := range bucket {
		sum += task.Clamp(t.Progress)
		if t.Done() {
			st.Done++
		}
	}
	st.AvgProgress = int(math.Round(float64(sum) / float64(len(bucket))))
	return st
}

// WeekStatsOf applies the same averaging rule over all week tasks.
func WeekStatsOf(weekTasks []task.Task) WeekStats {
	st := WeekStats{Total: len(weekTasks)}
	if len(weekTasks) == 0 {
		return st
	}
	sum := 0
	for _, t := range weekTasks {
		sum += task.Clamp(t.Progress)
	}
	st.AvgProgress = int(math.Round(float64(sum) / float64(len(weekTasks))))
	return st
}

// Chart assembles the weekday chart payload for a week.
func Chart(weekTasks []task.Task, anchorISO string) ChartData {
	var data ChartData
	data.Labels = week.DayNames
	buckets := DayBuckets(weekTasks, anchorISO)
	for i, bucket := range buckets {
		st := PerDayStats(bucket)
		data.AvgProgress[i] = st.AvgProgress
		data.Counts[i] = st.Count
	}
	return data
}

// Depts returns the distinct departments present, sorted, excluding
// empty values. Used to populate the department filter vocabulary.
func Depts(tasks []task.Task) []string {
	return distinct(tasks, func(t task.Task) string { return t.Dept })
}

// Owners returns the distinct owners present, sorted, excluding
// empty values.
func Owners(tasks []task.Task) []string {
	return distinct(tasks, func(t task.Task) string { return t.Owner })
}

func distinct(tasks []task.Task, field func(task.Task) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tasks {
		v := field(t)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Apply filters a week's tasks by the optional equality filters and
// returns them in the deterministic board order: date ascending, ties
// broken by title.
func (f Filter) Apply(weekTasks []task.Task) []task.Task {
	var out []task.Task
	for _, t := range weekTasks {
		if f.Dept != "" && t.Dept != f.Dept {
			continue
		}
		if f.Owner != "" && t.Owner != f.Owner {
			continue
		}
		if f.Status != "" && t.EffectiveStatus() != f.Status {
			continue
		}
		out = append(out, t)
	}
	SortBoard(out)
	return out
}

// SortBoard orders tasks by date ascending, then title.
func SortBoard(tasks []task.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].DateISO != tasks[j].DateISO {
			return tasks[i].DateISO < tasks[j].DateISO
		}
		return tasks[i].Title < tasks[j].Title
	})
}

var statusOrder = map[task.Status]int{
	task.StatusPending:    0,
	task.StatusInProgress: 1,
	task.StatusDone:       2,
}

var priorityOrder = map[task.Priority]int{
	task.PriorityHigh:   0,
	task.PriorityMedium: 1,
	task.PriorityLow:    2,
}

// SortList orders tasks the way the grouped list view shows them:
// pending first and done last, then by priority, then by date.
func SortList(tasks []task.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		si, sj := statusOrder[tasks[i].EffectiveStatus()], statusOrder[tasks[j].EffectiveStatus()]
		if si != sj {
			return si < sj
		}
		pi, pj := priorityOrder[tasks[i].Priority], priorityOrder[tasks[j].Priority]
		if pi != pj {
			return pi < pj
		}
		return tasks[i].DateISO < tasks[j].DateISO
	})
}
