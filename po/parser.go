package po

import (
	"fmt"
	"regexp"
)

// continuationRe matches a bare quoted string line that extends the
// value of the most recently parsed command.
var continuationRe = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"$`)

// parser assembles messages from a flat stream of lines. lastCmd is
// the target of continuation lines; it is tracked independently of
// whether the command actually applied to the current message, so a
// continuation after a message boundary still extends the right field.
// It stays nil until the first command is parsed, so continuation
// lines before any command have nothing to extend.
type parser struct {
	catalog *Catalog
	msg     *Message
	lastCmd *command
	lineno  int
}

func newParser() *parser {
	return &parser{catalog: &Catalog{}, msg: &Message{}}
}

// feed consumes one input line without its trailing newline.
// Lines that are neither comment, command nor continuation are
// skipped, including blank separator lines.
func (p *parser) feed(line string) error {
	p.lineno++
	if c, ok := parseComment(line); ok {
		// A comment arriving after a complete message opens the next one.
		if p.msg.IsValid() {
			p.close()
		}
		p.msg.Comments = append(p.msg.Comments, c)
		return nil
	}
	cmd, ok, err := parseCommand(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", p.lineno, err)
	}
	if ok {
		if !cmd.canApply(p.msg) {
			p.close()
		}
		cmd.apply(p.msg)
		p.lastCmd = &cmd
		return nil
	}
	if m := continuationRe.FindStringSubmatch(line); m != nil {
		text, err := unescape(m[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", p.lineno, err)
		}
		if p.lastCmd != nil {
			p.lastCmd.value += text
			p.lastCmd.forceApply(p.msg)
		}
		return nil
	}
	return nil
}

// close pushes the message under construction and starts a fresh one.
func (p *parser) close() {
	p.catalog.Messages = append(p.catalog.Messages, p.msg)
	p.msg = &Message{}
}

// finish pushes the trailing message unless it repeats the msgid of
// the last pushed one, and returns the catalog.
func (p *parser) finish() *Catalog {
	n := len(p.catalog.Messages)
	if n == 0 || !sameID(p.catalog.Messages[n-1].ID, p.msg.ID) {
		p.catalog.Messages = append(p.catalog.Messages, p.msg)
	}
	return p.catalog
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
