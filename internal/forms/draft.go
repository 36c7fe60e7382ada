// Package forms models a screen's form draft: raw field values, per-field
// validation errors, and the submit gate. A draft is created when a screen
// (command) starts, mutated on every input, and discarded afterwards.
package forms

import "strings"

// Rule validates and optionally rewrites a field value. filtered is the
// value as it should be stored (live filters strip disallowed characters);
// msg is the inline error, empty when the value is acceptable.
type Rule func(value string) (filtered string, msg string)

// Field describes one input of a draft.
type Field struct {
	Name     string
	Required bool
	Rule     Rule
}

// Draft holds the state of one in-progress form.
type Draft struct {
	fields   []Field
	values   map[string]string
	errors   map[string]string
	inFlight bool
}

// NewDraft creates a draft over the given fields.
func NewDraft(fields ...Field) *Draft {
	return &Draft{
		fields: fields,
		values: make(map[string]string, len(fields)),
		errors: make(map[string]string, len(fields)),
	}
}

// Set records raw input for a field, applying its filter and rule.
// Unknown fields are ignored.
func (d *Draft) Set(name, value string) {
	for _, f := range d.fields {
		if f.Name != name {
			continue
		}
		if f.Rule != nil {
			filtered, msg := f.Rule(value)
			d.values[name] = filtered
			if msg != "" {
				d.errors[name] = msg
			} else {
				delete(d.errors, name)
			}
		} else {
			d.values[name] = value
			delete(d.errors, name)
		}
		return
	}
}

// Value returns the current (filtered) value of a field.
func (d *Draft) Value(name string) string { return d.values[name] }

// Error returns the inline error for a field, empty when valid.
func (d *Draft) Error(name string) string { return d.errors[name] }

// CanSubmit reports whether submission is permitted: no validation errors,
// all required fields non-empty, and no request already in flight.
func (d *Draft) CanSubmit() bool {
	if d.inFlight || len(d.errors) > 0 {
		return false
	}
	for _, f := range d.fields {
		if f.Required && strings.TrimSpace(d.values[f.Name]) == "" {
			return false
		}
	}
	return true
}

// BeginSubmit marks the draft in flight, disabling further submits until
// EndSubmit. Returns false when submission is not currently permitted,
// guarding against the double-submit race.
func (d *Draft) BeginSubmit() bool {
	if !d.CanSubmit() {
		return false
	}
	d.inFlight = true
	return true
}

// EndSubmit re-enables submission after the in-flight request resolves.
func (d *Draft) EndSubmit() { d.inFlight = false }
