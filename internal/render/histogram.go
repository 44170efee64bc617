package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"coursetally/internal/aggregate"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when there is nothing to plot yet
var ErrNoData = errors.New("no data available for plotting")

// Histogram writes a grouped bar chart of visit counts to path as PNG:
// weekdays on the X axis, one bar series per course. countsByCourse
// rows must be aligned to aggregate.WeekdayOrder.
func Histogram(path string, courses []string, countsByCourse [][]int64) error {
	if len(courses) == 0 {
		return ErrNoData
	}
	if len(courses) != len(countsByCourse) {
		return fmt.Errorf("courses/counts length mismatch: %d vs %d", len(courses), len(countsByCourse))
	}

	p := plot.New()
	p.Title.Text = "Course Attendance by Weekday"
	p.X.Label.Text = "Weekday"
	p.Y.Label.Text = "Number of Visits"

	width := vg.Points(15)

	for i, course := range courses {
		values := make(plotter.Values, len(countsByCourse[i]))
		for j, count := range countsByCourse[i] {
			values[j] = float64(count)
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("failed to build bar chart for %q: %w", course, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		// Center the group of bars around each tick
		bars.Offset = width * vg.Length(i-len(courses)/2)

		p.Add(bars)
		p.Legend.Add(course, bars)
	}
	p.Legend.Top = true

	labels := make([]string, len(aggregate.WeekdayOrder))
	for i, day := range aggregate.WeekdayOrder {
		labels[i] = day.String()
	}
	p.NominalX(labels...)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	return nil
}
