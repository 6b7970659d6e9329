package provider

import "testing"

func TestExtractEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Send your resume to jobs+hr@example.co.uk today", "jobs+hr@example.co.uk"},
		{"Contact hr@acme.io or careers@acme.io", "hr@acme.io"},
		{"Reach us at foo.bar_99%x@sub.domain.com.", "foo.bar_99%x@sub.domain.com"},
		{"No contact information here", ""},
		{"almost an email: foo@bar", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ExtractEmail(tc.in); got != tc.want {
			t.Errorf("ExtractEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
