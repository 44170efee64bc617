package aggregate

import (
	"sort"
	"sync"
	"time"

	"coursetally/internal/model"
)

// WeekdayOrder is the fixed rendering order, Monday first
var WeekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Tally is the consumer-side running aggregate: visit counts keyed by
// (day of week, course). It only ever increments for the lifetime of a
// run and is rebuilt from zero on restart. Safe for concurrent use:
// the render ticker and the push-consumer callbacks share it.
type Tally struct {
	mu      sync.RWMutex
	counts  map[time.Weekday]map[string]int64
	records int64
	visits  int64
}

// NewTally creates an empty aggregate
func NewTally() *Tally {
	return &Tally{
		counts: make(map[time.Weekday]map[string]int64),
	}
}

// Add increments the count for the record's (weekday, course) by the
// record's visit count. There is no decrement path.
func (t *Tally) Add(r *model.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := r.Weekday()
	if t.counts[day] == nil {
		t.counts[day] = make(map[string]int64)
	}
	t.counts[day][r.Course] += r.Count
	t.records++
	t.visits += r.Count
}

// Get returns the current count for one (weekday, course) pair
func (t *Tally) Get(day time.Weekday, course string) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[day][course]
}

// TotalRecords returns the number of records ingested
func (t *Tally) TotalRecords() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.records
}

// TotalVisits returns the sum of all ingested visit counts
func (t *Tally) TotalVisits() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.visits
}

// Courses returns all course labels seen so far, sorted
func (t *Tally) Courses() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, byCourse := range t.counts {
		for course := range byCourse {
			seen[course] = struct{}{}
		}
	}

	courses := make([]string, 0, len(seen))
	for course := range seen {
		courses = append(courses, course)
	}
	sort.Strings(courses)

	return courses
}

// CourseCounts returns the per-weekday counts for one course in
// WeekdayOrder, and whether the course has been seen at all.
func (t *Tally) CourseCounts(course string) ([]int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := false
	counts := make([]int64, len(WeekdayOrder))
	for i, day := range WeekdayOrder {
		if c, ok := t.counts[day][course]; ok {
			counts[i] = c
			found = true
		}
	}

	return counts, found
}

// Snapshot returns a deep copy of the aggregate, weekdays in fixed
// order, courses sorted within each weekday.
func (t *Tally) Snapshot() *model.StatsResponse {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resp := &model.StatsResponse{
		TotalRecords: t.records,
		TotalVisits:  t.visits,
		Weekdays:     make([]model.WeekdayStats, 0, len(t.counts)),
	}

	for _, day := range WeekdayOrder {
		byCourse, ok := t.counts[day]
		if !ok {
			continue
		}

		stats := model.WeekdayStats{
			Weekday: day.String(),
			Courses: make([]model.CourseStat, 0, len(byCourse)),
		}
		for course, count := range byCourse {
			stats.Courses = append(stats.Courses, model.CourseStat{Course: course, Count: count})
		}
		sort.Slice(stats.Courses, func(i, j int) bool {
			return stats.Courses[i].Course < stats.Courses[j].Course
		})

		resp.Weekdays = append(resp.Weekdays, stats)
	}

	return resp
}
