// Package validate holds the client-side form checks that run before any
// request is issued. These are UX conveniences; the backend remains the
// authority and its rejections are still handled.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for dates.
const DateLayout = "2006-01-02"

// ErrRequired is returned for blank required fields.
var ErrRequired = errors.New("required")

// Required checks that a field is non-blank.
func Required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is %w", name, ErrRequired)
	}
	return nil
}

// PositiveQuantity parses a quantity field and checks it is > 0.
func PositiveQuantity(value string) (float64, error) {
	q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("quantity must be a number")
	}
	if q <= 0 {
		return 0, fmt.Errorf("quantity must be positive")
	}
	return q, nil
}

// FutureDate parses a date field and checks it is today or later.
func FutureDate(value string, now time.Time) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("date must be in %s form", DateLayout)
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return "", fmt.Errorf("date must not be in the past")
	}
	return d.Format(DateLayout), nil
}

// Email performs the minimal shape check used on login and register forms.
func Email(value string) error {
	v := strings.TrimSpace(value)
	at := strings.Index(v, "@")
	if at < 1 || at == len(v)-1 || !strings.Contains(v[at:], ".") {
		return fmt.Errorf("email address looks invalid")
	}
	return nil
}
