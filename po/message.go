package po

import (
	"fmt"
	"io"
)

// Message is a single translation unit: its comments, optional
// context, source strings, and positional translations. Nil pointer
// fields have not been seen in the input; `msgid ""` yields a non-nil
// empty string (the catalog header entry).
type Message struct {
	Comments []Comment
	Context  *string
	ID       *string
	IDPlural *string
	Strs     []string
}

// IsValid reports whether the message can be closed: msgid seen, and
// either exactly one msgstr (singular entry) or msgid_plural with
// more than one msgstr (plural entry).
func (m *Message) IsValid() bool {
	if m.ID == nil {
		return false
	}
	return len(m.Strs) == 1 || (m.IDPlural != nil && len(m.Strs) > 1)
}

// writeTo serializes the message as PO lines: comments first, then
// msgctxt, msgid, msgid_plural, and the msgstr lines (indexed when
// the message has a plural form).
func (m *Message) writeTo(w io.Writer) error {
	for _, c := range m.Comments {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	if m.Context != nil {
		if _, err := fmt.Fprintf(w, "msgctxt \"%s\"\n", escape(*m.Context)); err != nil {
			return err
		}
	}
	if m.ID != nil {
		if _, err := fmt.Fprintf(w, "msgid \"%s\"\n", escape(*m.ID)); err != nil {
			return err
		}
	}
	if m.IDPlural != nil {
		if _, err := fmt.Fprintf(w, "msgid_plural \"%s\"\n", escape(*m.IDPlural)); err != nil {
			return err
		}
	}
	for i, s := range m.Strs {
		var err error
		if m.IDPlural != nil {
			_, err = fmt.Fprintf(w, "msgstr[%d] \"%s\"\n", i, escape(s))
		} else {
			_, err = fmt.Fprintf(w, "msgstr \"%s\"\n", escape(s))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
