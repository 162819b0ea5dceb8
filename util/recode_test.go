package util

import (
	"bytes"
	"testing"
)

func TestSameEncoding(t *testing.T) {
	for _, tc := range []struct {
		enc1, enc2 string
		want       bool
	}{
		{"utf-8", "UTF-8", true},
		{"utf8", "UTF-8", true},
		{"iso-8859-1", "ISO8859-1", true},
		{"utf-8", "gbk", false},
	} {
		if got := sameEncoding(tc.enc1, tc.enc2); got != tc.want {
			t.Errorf("sameEncoding(%q, %q) = %v, want %v", tc.enc1, tc.enc2, got, tc.want)
		}
	}
}

func TestRecodeToUTF8NoOp(t *testing.T) {
	data := []byte("msgid \"Hello\"\n")
	for _, fromCode := range []string{"", "utf-8", "UTF8"} {
		got, err := RecodeToUTF8(data, fromCode)
		if err != nil {
			t.Fatalf("RecodeToUTF8(%q) failed: %v", fromCode, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("RecodeToUTF8(%q) modified data", fromCode)
		}
	}
}
