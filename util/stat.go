// Package util provides catalog statistics for the stat subcommand.
package util

import "github.com/l10n-kit/potcat/po"

// CatalogStats holds statistics for a parsed catalog.
type CatalogStats struct {
	Messages     int // messages in the catalog
	Translated   int // messages with at least one non-empty msgstr
	Untranslated int // messages whose msgstr entries are all empty
	Plural       int // messages with msgid_plural
	WithContext  int // messages with msgctxt
	Comments     int // comment lines across all messages
}

// CountCatalogStats walks a catalog and tallies statistics. The
// header entry (empty msgid) counts as a message but is not counted
// as translated or untranslated.
func CountCatalogStats(c *po.Catalog) *CatalogStats {
	stats := &CatalogStats{Messages: len(c.Messages)}
	for _, m := range c.Messages {
		stats.Comments += len(m.Comments)
		if m.IDPlural != nil {
			stats.Plural++
		}
		if m.Context != nil {
			stats.WithContext++
		}
		if m.ID == nil || *m.ID == "" {
			continue
		}
		translated := false
		for _, s := range m.Strs {
			if s != "" {
				translated = true
				break
			}
		}
		if translated {
			stats.Translated++
		} else {
			stats.Untranslated++
		}
	}
	return stats
}
