package model

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// HoursScale is the number of fractional digits kept for hour values.
const HoursScale = 2

// Project is a single row in the project table.
// ID is zero until the store assigns one on insert.
type Project struct {
	ID             int64               `json:"project_id" db:"project_id"`
	Name           string              `json:"project_name" db:"project_name"`
	EstimatedHours decimal.NullDecimal `json:"estimated_hours" db:"estimated_hours"`
	ActualHours    decimal.NullDecimal `json:"actual_hours" db:"actual_hours"`
	Difficulty     *int                `json:"difficulty,omitempty" db:"difficulty"`
	Notes          *string             `json:"notes,omitempty" db:"notes"`
}

// ProjectSummary is the listing shape of a project.
type ProjectSummary struct {
	ID   int64  `json:"project_id" db:"project_id"`
	Name string `json:"project_name" db:"project_name"`
}

// Summary returns the listing view of p.
func (p Project) Summary() ProjectSummary {
	return ProjectSummary{ID: p.ID, Name: p.Name}
}

// String renders every field, using "null" for absent values.
func (p Project) String() string {
	return fmt.Sprintf(
		"ID=%d, name=%s, estimatedHours=%s, actualHours=%s, difficulty=%s, notes=%s",
		p.ID, p.Name,
		FormatHours(p.EstimatedHours), FormatHours(p.ActualHours),
		FormatInt(p.Difficulty), FormatString(p.Notes),
	)
}

// ProjectPatch carries the fields of an update. A nil pointer or an
// invalid NullDecimal means "keep the existing value".
type ProjectPatch struct {
	Name           *string
	EstimatedHours decimal.NullDecimal
	ActualHours    decimal.NullDecimal
	Difficulty     *int
	Notes          *string
}

// Apply returns p with every supplied field of the patch overwritten.
// The ID is never touched.
func (patch ProjectPatch) Apply(p Project) Project {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.EstimatedHours.Valid {
		p.EstimatedHours = patch.EstimatedHours
	}
	if patch.ActualHours.Valid {
		p.ActualHours = patch.ActualHours
	}
	if patch.Difficulty != nil {
		d := *patch.Difficulty
		p.Difficulty = &d
	}
	if patch.Notes != nil {
		n := *patch.Notes
		p.Notes = &n
	}
	return p
}

// Hours builds a valid hour value rounded to HoursScale digits.
func Hours(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d.Round(HoursScale), Valid: true}
}

// FormatHours prints h with exactly two fractional digits, or "null".
func FormatHours(h decimal.NullDecimal) string {
	if !h.Valid {
		return "null"
	}
	return h.Decimal.StringFixed(HoursScale)
}

// FormatInt prints *v or "null".
func FormatInt(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}

// FormatString prints *v or "null".
func FormatString(v *string) string {
	if v == nil {
		return "null"
	}
	return *v
}
