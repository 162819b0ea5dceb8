package util

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/l10n-kit/potcat/po"
)

func sp(s string) *string {
	return &s
}

func TestJSONCatalogRoundTrip(t *testing.T) {
	catalog := &po.Catalog{Messages: []*po.Message{
		{
			Comments: []po.Comment{
				{Kind: po.TranslatorComment, Text: "a note"},
				{Kind: po.FlagComment, Text: "fuzzy"},
			},
			ID:   sp("Hello"),
			Strs: []string{"Hola"},
		},
		{
			Context:  sp("menu"),
			ID:       sp("One file"),
			IDPlural: sp("Many files"),
			Strs:     []string{"Un fichero", "Muchos ficheros"},
		},
		{
			ID:   sp(""),
			Strs: []string{"Content-Type: text/plain; charset=UTF-8\n"},
		},
	}}

	var buf bytes.Buffer
	if err := WriteJSONCatalog(&buf, catalog, "  "); err != nil {
		t.Fatalf("WriteJSONCatalog failed: %v", err)
	}
	parsed, err := ReadJSONCatalog(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadJSONCatalog failed: %v", err)
	}
	if !reflect.DeepEqual(catalog, parsed) {
		t.Errorf("JSON round-trip mismatch:\noriginal: %#v\nparsed:   %#v", catalog, parsed)
	}
}

func TestReadJSONCatalogErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
	}{
		{"invalid JSON", `{"messages": [`},
		{"no messages key", `{"entries": []}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadJSONCatalog([]byte(tc.data)); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

func TestLooksLikeJSON(t *testing.T) {
	for _, tc := range []struct {
		data string
		want bool
	}{
		{`{"messages": []}`, true},
		{"  \n\t{}", true},
		{`msgid "a"`, false},
		{"", false},
		{"# comment", false},
	} {
		if got := LooksLikeJSON([]byte(tc.data)); got != tc.want {
			t.Errorf("LooksLikeJSON(%q) = %v, want %v", tc.data, got, tc.want)
		}
	}
}

func TestReadCatalogDetectsFormat(t *testing.T) {
	poText := "msgid \"Hello\"\nmsgstr \"Hola\"\n"
	jsonText := `{"messages": [{"msgid": "Hello", "msgstr": ["Hola"]}]}`

	for _, tc := range []struct {
		name string
		data string
	}{
		{"po", poText},
		{"json", jsonText},
	} {
		t.Run(tc.name, func(t *testing.T) {
			catalog, err := ReadCatalog([]byte(tc.data), "")
			if err != nil {
				t.Fatalf("ReadCatalog failed: %v", err)
			}
			if len(catalog.Messages) != 1 {
				t.Fatalf("expected 1 message, got %d", len(catalog.Messages))
			}
			m := catalog.Messages[0]
			if m.ID == nil || *m.ID != "Hello" || !reflect.DeepEqual(m.Strs, []string{"Hola"}) {
				t.Errorf("message = %#v", m)
			}
		})
	}
}

func TestReadCatalogPropagatesDecodeError(t *testing.T) {
	_, err := ReadCatalog([]byte("msgid \"bad \\x\"\n"), "")
	if err == nil {
		t.Fatal("expected decode error, got none")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q does not carry the line number", err)
	}
}
