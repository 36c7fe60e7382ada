// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"collabnex/cli/internal/forms"
	"collabnex/cli/internal/validate"
)

// Field rules shared by the auth forms. Each rule applies the live filter
// and returns the inline error the form would show.

func emailField() forms.Field {
	return forms.Field{Name: "email", Required: true, Rule: func(v string) (string, string) {
		v = validate.NormalizeEmail(v)
		if !validate.IsValidEmail(v) {
			return v, "invalid email address"
		}
		return v, ""
	}}
}

func passwordField() forms.Field {
	return forms.Field{Name: "password", Required: true, Rule: func(v string) (string, string) {
		if !validate.IsValidPassword(v) {
			return v, "password must be at least 6 characters"
		}
		return v, ""
	}}
}

func fullNameField() forms.Field {
	return forms.Field{Name: "fullName", Required: true, Rule: func(v string) (string, string) {
		v = validate.FilterFullName(v)
		if !validate.IsValidFullName(v) {
			return v, "full name must be at least 3 letters"
		}
		return v, ""
	}}
}
