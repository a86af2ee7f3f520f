package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/taskboard-io/taskboard/internal/models"
)

// ParseDate parses the date formats accepted on the command line.
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2026")
// - yyyy-mm-dd (e.g., "2026-12-15")
// - X days / X weeks from today (e.g., "3 days", "2 weeks")
// - "today", "tomorrow"
// The result is a calendar date (midnight UTC).
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	switch strings.ToLower(input) {
	case "today":
		return models.DateOf(time.Now()), nil
	case "tomorrow":
		return models.DateOf(time.Now()).AddDate(0, 0, 1), nil
	}

	if d, err := parseSlashFormat(input); err == nil {
		return d, nil
	}
	if d, err := time.ParseInLocation("2006-01-02", input, time.UTC); err == nil {
		return d, nil
	}
	if d, err := parseRelativeDays(input); err == nil {
		return d, nil
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, yyyy-mm-dd, X days, or X weeks")
}

// parseSlashFormat parses dd/mm/yyyy format
func parseSlashFormat(input string) (time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

// parseRelativeDays parses relative formats like "3 days" or "2 weeks"
func parseRelativeDays(input string) (time.Time, error) {
	input = strings.ToLower(input)

	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	today := models.DateOf(time.Now())

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return time.Time{}, fmt.Errorf("days must be between 1 and 365")
		}
		return today.AddDate(0, 0, amount), nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return time.Time{}, fmt.Errorf("weeks must be between 1 and 52")
		}
		return today.AddDate(0, 0, amount*7), nil

	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}

// FormatDate formats a calendar date for display.
func FormatDate(date time.Time) string {
	return date.Format("02/01/2006")
}

// FormatDeadline formats a deadline with an urgency hint relative to today.
func FormatDeadline(deadline time.Time) string {
	daysDiff := models.DaysBetween(time.Now(), deadline)
	dateStr := FormatDate(deadline)

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("due %s", dateStr)
	}
}
