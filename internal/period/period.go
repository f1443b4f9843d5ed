package period

import "time"

// Period identifies one invoicing cycle.
type Period struct {
	Month Month
	Year  int
}

// Previous returns the billing period for the calendar month before now.
// January wraps to December of the prior year.
func Previous(now time.Time) Period {
	month := int(now.Month())
	year := now.Year()
	if month == 1 {
		return Period{Month: December, Year: year - 1}
	}
	m, _ := MonthFromInt(month - 1)
	return Period{Month: m, Year: year}
}

// Contains reports whether t falls inside the period's calendar month.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month.Int()
}

// DueDate is the payment due date for the period: the 27th of the billing
// month at midnight UTC. Day 27 exists in every month, so no clamping.
func (p Period) DueDate() time.Time {
	return time.Date(p.Year, p.Month.Time(), 27, 0, 0, 0, 0, time.UTC)
}
