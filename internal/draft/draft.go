// Package draft holds the transient form state for the sell, signup and
// login flows. Each form is its own variant with an exhaustive field set and
// a single Validate returning the full error set; submission is blocked
// while any error is present.
package draft

// FieldErrors maps a field name to the message shown inline next to it.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
