// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		hidden []string
	}{
		{"query password", "login?password=hunter22&x=1", []string{"hunter22"}},
		{"json password", `{"email":"a@b.co","password":"hunter22"}`, []string{"hunter22"}},
		{"bearer header", "Authorization: Bearer eyJabc.def.ghi", []string{"eyJabc"}},
		{"json tokens", `{"accessToken":"aaa","refreshToken":"bbb"}`, []string{"aaa", "bbb"}},
		{"token pair", "retrying with token=secret123", []string{"secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Mask(tt.in)
			for _, secret := range tt.hidden {
				if strings.Contains(out, secret) {
					t.Errorf("Mask(%q) = %q; still contains %q", tt.in, out, secret)
				}
			}
			if !strings.Contains(out, "***") {
				t.Errorf("Mask(%q) = %q; expected a masked marker", tt.in, out)
			}
		})
	}
}

func TestMask_LeavesOrdinaryTextAlone(t *testing.T) {
	in := `{"title":"Open Mic","city":"Pune"}`
	if out := Mask(in); out != in {
		t.Errorf("Mask changed non-sensitive text: %q", out)
	}
}

func TestMaskToken(t *testing.T) {
	if got := MaskToken("eyJhbGciOiJIUzI1NiJ9.payload.sig"); got != "eyJhbGci***" {
		t.Errorf("MaskToken = %q", got)
	}
	if got := MaskToken("short"); got != "***" {
		t.Errorf("MaskToken short = %q", got)
	}
}
