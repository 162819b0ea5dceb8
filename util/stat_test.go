package util

import (
	"strings"
	"testing"

	"github.com/l10n-kit/potcat/po"
)

func TestCountCatalogStats(t *testing.T) {
	text := `# header
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Hello"
msgstr "Hola"

msgid "World"
msgstr ""

msgctxt "menu"
msgid "Open"
msgstr "Abrir"

#, fuzzy
msgid "One file"
msgid_plural "Many files"
msgstr[0] "Un fichero"
msgstr[1] ""
`
	catalog, err := po.Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	stats := CountCatalogStats(catalog)

	if stats.Messages != 5 {
		t.Errorf("Messages = %d, want 5", stats.Messages)
	}
	if stats.Translated != 3 {
		t.Errorf("Translated = %d, want 3", stats.Translated)
	}
	if stats.Untranslated != 1 {
		t.Errorf("Untranslated = %d, want 1", stats.Untranslated)
	}
	if stats.Plural != 1 {
		t.Errorf("Plural = %d, want 1", stats.Plural)
	}
	if stats.WithContext != 1 {
		t.Errorf("WithContext = %d, want 1", stats.WithContext)
	}
	if stats.Comments != 2 {
		t.Errorf("Comments = %d, want 2", stats.Comments)
	}
}

func TestCountCatalogStatsEmpty(t *testing.T) {
	stats := CountCatalogStats(&po.Catalog{})
	if stats.Messages != 0 || stats.Translated != 0 || stats.Untranslated != 0 {
		t.Errorf("stats for empty catalog = %#v", stats)
	}
}
