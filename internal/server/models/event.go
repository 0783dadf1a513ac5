// Package models defines server-side data models persisted in the database.
package models

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/eventplanner/internal/common"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// MaxAttendeeCount matches the INTEGER column the count is stored in.
const MaxAttendeeCount = math.MaxInt32

// Event is the owned resource. UserID is assigned once from the
// authenticated principal when the event is created and never changes.
type Event struct {
	ID            string
	UserID        string
	Title         string
	Date          time.Time
	BudgetCents   int64
	Description   string
	AttendeeCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EventDraft carries the user-supplied fields of a new event.
type EventDraft struct {
	Title         string
	Date          time.Time
	BudgetCents   int64
	Description   string
	AttendeeCount int
}

// Validate checks the draft against the event field rules. today is the
// current date; events may not be scheduled before it.
func (d EventDraft) Validate(today time.Time) error {
	var v common.ValidationError

	title := strings.TrimSpace(d.Title)
	switch {
	case title == "":
		v.Add("title", "Title is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		v.Add("title", "Title must not exceed 200 characters")
	}

	if d.Date.IsZero() {
		v.Add("date", "Date is required")
	} else if truncateDay(d.Date).Before(truncateDay(today)) {
		v.Add("date", "Date must not be in the past")
	}

	if d.BudgetCents < 1 {
		v.Add("budget", "Budget must be positive")
	}

	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		v.Add("description", "Description must not exceed 2000 characters")
	}

	switch {
	case d.AttendeeCount < 1:
		v.Add("attendeeCount", "Attendee count must be at least 1")
	case d.AttendeeCount > MaxAttendeeCount:
		v.Add("attendeeCount", "Attendee count is too large")
	}

	return v.OrNil()
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
