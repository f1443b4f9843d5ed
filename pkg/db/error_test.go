package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"postgres", errors.New(`duplicate key value violates unique constraint "rates_pkey"`), true},
		{"mysql", errors.New("Error 1062: Duplicate entry"), true},
		{"sqlite", errors.New("UNIQUE constraint failed: rates.id"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDuplicateKeyErr(tc.err))
		})
	}
}
