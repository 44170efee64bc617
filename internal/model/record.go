package model

import (
	"errors"
	"time"
)

// DateLayout is the calendar date format used in the CSV source and on the wire
const DateLayout = "2006-01-02"

var (
	// ErrEmptyCourse is returned when a record has no course label
	ErrEmptyCourse = errors.New("course must not be empty")
	// ErrZeroDate is returned when a record has no date
	ErrZeroDate = errors.New("date must be set")
	// ErrNegativeCount is returned when a record carries a negative visit count
	ErrNegativeCount = errors.New("count must be non-negative")
)

// Record represents one logical unit of input data: a single CSV row.
// A Record is immutable once read.
type Record struct {
	Date   time.Time `json:"date"`
	Course string    `json:"course"`
	Count  int64     `json:"count"`
}

// Validate checks the record against the strict schema, failing closed
func (r *Record) Validate() error {
	if r.Date.IsZero() {
		return ErrZeroDate
	}
	if r.Course == "" {
		return ErrEmptyCourse
	}
	if r.Count < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Weekday returns the day of week derived from the record date
func (r *Record) Weekday() time.Weekday {
	return r.Date.Weekday()
}

// VisitMessage represents the wire form of a Record on the broker topic
type VisitMessage struct {
	MessageID   string    `json:"message_id"`
	Date        string    `json:"date"`
	Course      string    `json:"course"`
	Count       int64     `json:"count"`
	PublishedAt time.Time `json:"published_at"`
}

// NewVisitMessage builds the wire form of a record
func NewVisitMessage(id string, r *Record) *VisitMessage {
	return &VisitMessage{
		MessageID:   id,
		Date:        r.Date.Format(DateLayout),
		Course:      r.Course,
		Count:       r.Count,
		PublishedAt: time.Now().UTC(),
	}
}

// ToRecord converts the message back to a Record, re-validating on the
// consume side so a malformed message fails closed.
func (m *VisitMessage) ToRecord() (*Record, error) {
	date, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return nil, err
	}

	r := &Record{
		Date:   date,
		Course: m.Course,
		Count:  m.Count,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// VisitLog represents an archived consumed record
type VisitLog struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MessageID  string    `json:"message_id" gorm:"type:varchar(36);index"`
	Date       string    `json:"date" gorm:"type:varchar(10);not null"`
	Weekday    string    `json:"weekday" gorm:"type:varchar(9);index"`
	Course     string    `json:"course" gorm:"type:varchar(64);index;not null"`
	Count      int64     `json:"count" gorm:"not null"`
	ConsumedAt time.Time `json:"consumed_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for VisitLog
func (VisitLog) TableName() string {
	return "visit_logs"
}

// NewVisitLog builds the archive entity for a consumed message
func NewVisitLog(m *VisitMessage, r *Record) *VisitLog {
	return &VisitLog{
		MessageID: m.MessageID,
		Date:      m.Date,
		Weekday:   r.Weekday().String(),
		Course:    r.Course,
		Count:     r.Count,
	}
}

// CourseStat represents one course's count for a single weekday
type CourseStat struct {
	Course string `json:"course"`
	Count  int64  `json:"count"`
}

// WeekdayStats represents all course counts for one weekday
type WeekdayStats struct {
	Weekday string       `json:"weekday"`
	Courses []CourseStat `json:"courses"`
}

// StatsResponse represents the aggregate exposed by the stats API
type StatsResponse struct {
	TotalRecords int64          `json:"total_records"`
	TotalVisits  int64          `json:"total_visits"`
	Weekdays     []WeekdayStats `json:"weekdays"`
}
