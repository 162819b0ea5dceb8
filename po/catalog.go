package po

import (
	"bufio"
	"io"
	"strings"
)

// Catalog is an ordered PO message catalog. Message order reflects
// the source file and is preserved on write.
type Catalog struct {
	Messages []*Message
}

// Read parses PO/POT text into a catalog. Unrecognized lines are
// skipped silently; a malformed escape sequence in any quoted string
// aborts with an error carrying the line number. Lines may be of any
// length.
func Read(r io.Reader) (*Catalog, error) {
	p := newParser()
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if ferr := p.feed(line); ferr != nil {
				return nil, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return p.finish(), nil
}

// Write serializes the catalog as PO text, with one blank line
// between consecutive messages and none after the last.
func (c *Catalog) Write(w io.Writer) error {
	for i, m := range c.Messages {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := m.writeTo(w); err != nil {
			return err
		}
	}
	return nil
}
