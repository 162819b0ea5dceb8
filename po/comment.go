package po

import (
	"strings"
	"unicode"
)

// CommentKind classifies a PO comment line by the character that
// follows the leading '#'.
type CommentKind int

const (
	// TranslatorComment is a plain "# ..." comment.
	TranslatorComment CommentKind = iota
	// ReferenceComment is a "#: file:line" source reference.
	ReferenceComment
	// ExtractedComment is a "#. ..." comment extracted from source code.
	ExtractedComment
	// FlagComment is a "#, fuzzy" style flag list.
	FlagComment
	// PreviousComment is a "#| msgid ..." previous-value comment.
	PreviousComment
)

// Marker returns the marker character for the kind, empty for
// translator comments.
func (k CommentKind) Marker() string {
	switch k {
	case ReferenceComment:
		return ":"
	case ExtractedComment:
		return "."
	case FlagComment:
		return ","
	case PreviousComment:
		return "|"
	}
	return ""
}

// Comment is one comment line attached to a message.
type Comment struct {
	Kind CommentKind
	Text string
}

// parseComment classifies a comment line. ok is false unless the line
// starts with '#'. A bare "#" is a translator comment with empty text.
func parseComment(line string) (Comment, bool) {
	if len(line) == 0 || line[0] != '#' {
		return Comment{}, false
	}
	kind := TranslatorComment
	rest := line[1:]
	if len(line) > 1 {
		switch line[1] {
		case ':':
			kind = ReferenceComment
		case '.':
			kind = ExtractedComment
		case ',':
			kind = FlagComment
		case '|':
			kind = PreviousComment
		}
	}
	if kind != TranslatorComment {
		rest = line[2:]
	}
	return Comment{Kind: kind, Text: strings.TrimLeftFunc(rest, unicode.IsSpace)}, true
}

// String formats the comment as a PO line, "#<marker> <text>".
func (c Comment) String() string {
	return "#" + c.Kind.Marker() + " " + c.Text
}
