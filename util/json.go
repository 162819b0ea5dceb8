// Package util provides gettext JSON format support for the catalog
// model (cat --json).
package util

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/l10n-kit/potcat/po"
	"github.com/tidwall/gjson"
)

// CatalogJSON is the top-level structure for `cat --json` output.
type CatalogJSON struct {
	Messages []MessageJSON `json:"messages"`
}

// MessageJSON represents one PO message in the JSON format. Pointer
// fields keep the distinction between an absent field and `msgid ""`.
type MessageJSON struct {
	Comments    []CommentJSON `json:"comments,omitempty"`
	Msgctxt     *string       `json:"msgctxt,omitempty"`
	Msgid       *string       `json:"msgid,omitempty"`
	MsgidPlural *string       `json:"msgid_plural,omitempty"`
	Msgstr      []string      `json:"msgstr,omitempty"`
}

// CommentJSON carries one comment line with its marker kind.
type CommentJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

var commentKindNames = map[po.CommentKind]string{
	po.TranslatorComment: "translator",
	po.ReferenceComment:  "reference",
	po.ExtractedComment:  "extracted",
	po.FlagComment:       "flag",
	po.PreviousComment:   "previous",
}

var commentKindByName = map[string]po.CommentKind{
	"translator": po.TranslatorComment,
	"reference":  po.ReferenceComment,
	"extracted":  po.ExtractedComment,
	"flag":       po.FlagComment,
	"previous":   po.PreviousComment,
}

// NewCatalogJSON converts a parsed catalog to its JSON form.
func NewCatalogJSON(c *po.Catalog) *CatalogJSON {
	out := &CatalogJSON{Messages: make([]MessageJSON, 0, len(c.Messages))}
	for _, m := range c.Messages {
		jm := MessageJSON{
			Msgctxt:     m.Context,
			Msgid:       m.ID,
			MsgidPlural: m.IDPlural,
			Msgstr:      m.Strs,
		}
		for _, cm := range m.Comments {
			jm.Comments = append(jm.Comments, CommentJSON{
				Kind: commentKindNames[cm.Kind],
				Text: cm.Text,
			})
		}
		out.Messages = append(out.Messages, jm)
	}
	return out
}

// WriteJSONCatalog writes the catalog as indented gettext JSON.
func WriteJSONCatalog(w io.Writer, c *po.Catalog, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(NewCatalogJSON(c)); err != nil {
		return fmt.Errorf("failed to write JSON catalog: %w", err)
	}
	return nil
}

// LooksLikeJSON reports whether data starts with '{', the content
// check used to auto-detect gettext JSON input.
func LooksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// ReadJSONCatalog converts gettext JSON, as written by `cat --json`,
// back into a catalog.
func ReadJSONCatalog(data []byte) (*po.Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON input")
	}
	catalog := &po.Catalog{}
	messages := gjson.GetBytes(data, "messages")
	if !messages.Exists() {
		return nil, fmt.Errorf("JSON input has no \"messages\" array")
	}
	messages.ForEach(func(_, jm gjson.Result) bool {
		m := &po.Message{}
		if v := jm.Get("msgctxt"); v.Exists() {
			s := v.String()
			m.Context = &s
		}
		if v := jm.Get("msgid"); v.Exists() {
			s := v.String()
			m.ID = &s
		}
		if v := jm.Get("msgid_plural"); v.Exists() {
			s := v.String()
			m.IDPlural = &s
		}
		jm.Get("msgstr").ForEach(func(_, v gjson.Result) bool {
			m.Strs = append(m.Strs, v.String())
			return true
		})
		jm.Get("comments").ForEach(func(_, v gjson.Result) bool {
			m.Comments = append(m.Comments, po.Comment{
				Kind: commentKindByName[v.Get("kind").String()],
				Text: v.Get("text").String(),
			})
			return true
		})
		catalog.Messages = append(catalog.Messages, m)
		return true
	})
	return catalog, nil
}
