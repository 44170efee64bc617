package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"coursetally/internal/model"

	"github.com/rs/zerolog/log"
)

// required CSV columns
const (
	columnDate   = "date"
	columnCourse = "course"
	columnCount  = "count"
)

// ErrMissingColumn is returned when the CSV header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

// CSVFeed reads Records from a CSV file in row order. Malformed rows
// are skipped with a logged warning; they are never fatal.
type CSVFeed struct {
	path    string
	loop    bool
	file    *os.File
	reader  *csv.Reader
	cols    map[string]int
	skipped int64
}

// NewCSVFeed opens the source file and validates its header.
// With loop enabled the feed rewinds at end of file instead of
// returning io.EOF.
func NewCSVFeed(path string, loop bool) (*CSVFeed, error) {
	f := &CSVFeed{path: path, loop: loop}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *CSVFeed) open() error {
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // row length checked per field below

	header, err := reader.Read()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Normalize header names
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnDate, columnCourse, columnCount} {
		if _, ok := cols[required]; !ok {
			file.Close()
			return fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	f.file = file
	f.reader = reader
	f.cols = cols

	log.Info().Str("path", f.path).Bool("loop", f.loop).Msg("CSV feed opened")

	return nil
}

// Next returns the next valid Record in row order. Rows that fail to
// parse or validate are skipped. Returns io.EOF when the file is
// exhausted and looping is off.
func (f *CSVFeed) Next() (*model.Record, error) {
	for {
		row, err := f.reader.Read()
		if errors.Is(err, io.EOF) {
			if !f.loop {
				return nil, io.EOF
			}
			log.Info().Str("path", f.path).Msg("End of data file, rewinding")
			f.file.Close()
			if err := f.open(); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			// csv syntax error on a single row
			f.skipped++
			log.Warn().Err(err).Msg("Skipping malformed CSV row")
			continue
		}

		record, err := f.parseRow(row)
		if err != nil {
			f.skipped++
			log.Warn().Err(err).Strs("row", row).Msg("Skipping invalid row")
			continue
		}

		return record, nil
	}
}

// parseRow converts one CSV row into a validated Record
func (f *CSVFeed) parseRow(row []string) (*model.Record, error) {
	field := func(name string) (string, error) {
		idx := f.cols[name]
		if idx >= len(row) {
			return "", fmt.Errorf("row too short, missing %s", name)
		}
		return strings.TrimSpace(row[idx]), nil
	}

	dateStr, err := field(columnDate)
	if err != nil {
		return nil, err
	}
	course, err := field(columnCourse)
	if err != nil {
		return nil, err
	}
	countStr, err := field(columnCount)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(model.DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	if countStr == "" {
		return nil, fmt.Errorf("missing count for course %q", course)
	}
	count, err := strconv.ParseInt(countStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid count %q: %w", countStr, err)
	}

	record := &model.Record{
		Date:   date,
		Course: course,
		Count:  count,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Skipped returns the number of rows skipped so far
func (f *CSVFeed) Skipped() int64 {
	return f.skipped
}

// Close closes the underlying file
func (f *CSVFeed) Close() error {
	if f != nil && f.file != nil {
		return f.file.Close()
	}
	return nil
}
