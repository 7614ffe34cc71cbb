package wizard

import (
	"regexp"
	"strings"
	"time"
)

var (
	firstNamePattern = regexp.MustCompile(`^[a-zA-Z\s]{2,30}$`)
	lastNamePattern  = regexp.MustCompile(`^[a-zA-Z\s]{1,30}$`)
	cityPattern      = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	pincodePattern   = regexp.MustCompile(`^[A-Za-z0-9\-\s]{3,10}$`)
	mobilePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	markupTag  = regexp.MustCompile(`<[^>]*>`)
	htmlEntity = regexp.MustCompile(`&[a-zA-Z]+;|&#[0-9]+;`)
)

// MeetsMinimumAge reports whether a date of birth amounts to at least
// minYears whole years at today, accounting for a month/day not yet reached.
func MeetsMinimumAge(dob, today time.Time, minYears int) bool {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age >= minYears
}

// StartsTodayOrLater reports whether start falls on today's date or later,
// ignoring time-of-day.
func StartsTodayOrLater(start, now time.Time) bool {
	return !dateOnly(start).Before(dateOnly(now))
}

// EndsAfterStart reports whether end falls strictly after start by calendar
// date; time-of-day components never decide the outcome.
func EndsAfterStart(start, end time.Time) bool {
	return dateOnly(end).After(dateOnly(start))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PlainText strips markup tags and entities from rich-text input and trims
// the rest, so "only formatting, no text" collapses to the empty string.
func PlainText(s string) string {
	out := markupTag.ReplaceAllString(s, "")
	out = htmlEntity.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// RichTextEmpty reports whether rich-text input carries no actual text.
func RichTextEmpty(s string) bool {
	return PlainText(s) == ""
}
