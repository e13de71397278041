package employee

import "strings"

// Employee is stored with the ID exactly as submitted (trimmed). Lookups
// compare the normalized form returned by NormalizeID.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Key returns the comparison key of the employee ID.
func (e Employee) Key() string {
	return NormalizeID(e.ID)
}

// NormalizeID trims and uppercases an employee ID for equality and lookup.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// SameName reports whether two names match ignoring case and surrounding space.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
