package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nhle/projects/internal/model"
)

// AssertProjectEqual compares two projects field by field. Hour values are
// compared numerically, so 10 and 10.00 are equal.
func AssertProjectEqual(t *testing.T, want, got model.Project) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID, "id")
	assert.Equal(t, want.Name, got.Name, "name")
	assertHoursEqual(t, "estimated hours", want.EstimatedHours, got.EstimatedHours)
	assertHoursEqual(t, "actual hours", want.ActualHours, got.ActualHours)
	assert.Equal(t, want.Difficulty, got.Difficulty, "difficulty")
	assert.Equal(t, want.Notes, got.Notes, "notes")
}

func assertHoursEqual(t *testing.T, field string, want, got decimal.NullDecimal) {
	t.Helper()

	if !assert.Equal(t, want.Valid, got.Valid, "%s presence", field) || !want.Valid {
		return
	}
	assert.True(t, want.Decimal.Equal(got.Decimal),
		"%s: want %s, got %s", field, want.Decimal, got.Decimal)
}

// Hours builds a valid two-digit hour value from s. It panics on bad input.
func Hours(s string) decimal.NullDecimal {
	return model.Hours(decimal.RequireFromString(s))
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
