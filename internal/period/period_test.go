package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousMidYear(t *testing.T) {
	for m := 2; m <= 12; m++ {
		now := time.Date(2024, time.Month(m), 15, 10, 30, 0, 0, time.UTC)
		p := Previous(now)
		assert.Equal(t, m-1, p.Month.Int(), "month %d", m)
		assert.Equal(t, 2024, p.Year, "month %d", m)
	}
}

func TestPreviousJanuaryWrapsToDecember(t *testing.T) {
	p := Previous(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, December, p.Month)
	assert.Equal(t, 2024, p.Year)
}

func TestMonthFromInt(t *testing.T) {
	m, err := MonthFromInt(11)
	assert.NoError(t, err)
	assert.Equal(t, November, m)
	assert.Equal(t, 11, m.Int())

	_, err = MonthFromInt(0)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = MonthFromInt(13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestContains(t *testing.T) {
	p := Period{Month: November, Year: 2024}

	assert.True(t, p.Contains(time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC)))
}

func TestDueDate(t *testing.T) {
	p := Period{Month: February, Year: 2024}
	assert.Equal(t, time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC), p.DueDate())
}
