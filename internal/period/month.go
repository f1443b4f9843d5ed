// Package period derives the canonical billing period: the calendar month
// prior to a given point in time.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Month is the wire-level month name used on persisted invoices.
type Month string

const (
	January   Month = "January"
	February  Month = "February"
	March     Month = "March"
	April     Month = "April"
	May       Month = "May"
	June      Month = "June"
	July      Month = "July"
	August    Month = "August"
	September Month = "September"
	October   Month = "October"
	November  Month = "November"
	December  Month = "December"
)

var months = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

var ErrInvalidMonth = errors.New("invalid_month")

// MonthFromInt converts a 1-based month number to its Month.
func MonthFromInt(n int) (Month, error) {
	if n < 1 || n > 12 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, n)
	}
	return months[n-1], nil
}

// Int returns the 1-based month number, or 0 for an unknown value.
func (m Month) Int() int {
	for i, candidate := range months {
		if candidate == m {
			return i + 1
		}
	}
	return 0
}

// Time returns m as a time.Month. Only valid for known months.
func (m Month) Time() time.Month {
	return time.Month(m.Int())
}
