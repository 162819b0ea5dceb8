package po

import "testing"

func TestParseCommentKinds(t *testing.T) {
	for _, tc := range []struct {
		line string
		kind CommentKind
		text string
	}{
		{"#: src/main.c:42", ReferenceComment, "src/main.c:42"},
		{"#. extracted note", ExtractedComment, "extracted note"},
		{"#, fuzzy, c-format", FlagComment, "fuzzy, c-format"},
		{"#| msgid \"old\"", PreviousComment, "msgid \"old\""},
		{"# translator note", TranslatorComment, "translator note"},
		{"#translator without space", TranslatorComment, "translator without space"},
		{"#", TranslatorComment, ""},
		{"#:no-space", ReferenceComment, "no-space"},
		{"#:\u00a0unicode space", ReferenceComment, "unicode space"},
	} {
		c, ok := parseComment(tc.line)
		if !ok {
			t.Errorf("parseComment(%q): not recognized as comment", tc.line)
			continue
		}
		if c.Kind != tc.kind {
			t.Errorf("parseComment(%q): kind = %v, want %v", tc.line, c.Kind, tc.kind)
		}
		if c.Text != tc.text {
			t.Errorf("parseComment(%q): text = %q, want %q", tc.line, c.Text, tc.text)
		}
	}
}

func TestParseCommentRejectsNonComments(t *testing.T) {
	for _, line := range []string{"", "msgid \"a\"", " # indented", "\"x\""} {
		if _, ok := parseComment(line); ok {
			t.Errorf("parseComment(%q): recognized as comment", line)
		}
	}
}

func TestCommentString(t *testing.T) {
	for _, tc := range []struct {
		comment Comment
		want    string
	}{
		{Comment{Kind: ReferenceComment, Text: "src/main.c:42"}, "#: src/main.c:42"},
		{Comment{Kind: ExtractedComment, Text: "note"}, "#. note"},
		{Comment{Kind: FlagComment, Text: "fuzzy"}, "#, fuzzy"},
		{Comment{Kind: PreviousComment, Text: "msgid \"old\""}, "#| msgid \"old\""},
		{Comment{Kind: TranslatorComment, Text: "note"}, "# note"},
	} {
		if got := tc.comment.String(); got != tc.want {
			t.Errorf("Comment.String() = %q, want %q", got, tc.want)
		}
	}
}
