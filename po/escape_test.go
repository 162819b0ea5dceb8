package po

import "testing"

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain text",
		"tab\there",
		"line\nbreak",
		`a "quoted" word`,
		`back\slash`,
		"\r\a\b\f\v",
		"mixed \"quotes\" and \\ and \n and \t",
		"中文内容",
	} {
		escaped := escape(s)
		got, err := unescape(escaped)
		if err != nil {
			t.Errorf("unescape(escape(%q)) failed: %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("unescape(escape(%q)) = %q, want original", s, got)
		}
	}
}

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{`hello`, "hello"},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
		{`a\rb`, "a\rb"},
		{`say \"hi\"`, `say "hi"`},
		{`a\\b`, `a\b`},
		{`\a\b\f\v`, "\a\b\f\v"},
	} {
		got, err := unescape(tc.in)
		if err != nil {
			t.Errorf("unescape(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("unescape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnescapeInvalid(t *testing.T) {
	for _, in := range []string{
		`bad \x escape`,
		`bad \q`,
		`trailing backslash \`,
		`\0`,
	} {
		if _, err := unescape(in); err == nil {
			t.Errorf("unescape(%q): expected error, got none", in)
		}
	}
}

func TestEscape(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"a\nb", `a\nb`},
		{`a"b`, `a\"b`},
		{`a\b`, `a\\b`},
		{"plain", "plain"},
	} {
		if got := escape(tc.in); got != tc.want {
			t.Errorf("escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
