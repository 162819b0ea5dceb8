package po

import (
	"regexp"
	"strconv"
)

// commandKind enumerates the four PO keyword commands.
type commandKind int

const (
	cmdMsgctxt commandKind = iota
	cmdMsgid
	cmdMsgidPlural
	cmdMsgstr
)

// command is a decoded keyword line such as `msgstr[1] "value"`.
// Commands exist only while parsing: each one is applied to the
// message under construction and then discarded, except that the most
// recently parsed command stays around as the target of continuation
// lines.
type command struct {
	kind  commandKind
	index int // plural index for msgstr[n], 0 for bare msgstr
	value string
}

// commandRe matches `keyword[idx] "body"` where the body may contain
// escaped quotes and backslashes but no unescaped quote.
var commandRe = regexp.MustCompile(`^([a-z_]+)(?:\[([0-9]+)\])? "((?:[^"\\]|\\.)*)"$`)

// parseCommand decodes a keyword line. ok is false when the line does
// not have command shape, or when the keyword is not one of the four
// PO keywords. A malformed escape in the body is a fatal error.
func parseCommand(line string) (cmd command, ok bool, err error) {
	m := commandRe.FindStringSubmatch(line)
	if m == nil {
		return command{}, false, nil
	}
	switch m[1] {
	case "msgctxt":
		cmd.kind = cmdMsgctxt
	case "msgid":
		cmd.kind = cmdMsgid
	case "msgid_plural":
		cmd.kind = cmdMsgidPlural
	case "msgstr":
		cmd.kind = cmdMsgstr
	default:
		return command{}, false, nil
	}
	if m[2] != "" {
		// The digits matched the pattern, but may still overflow int.
		if cmd.index, err = strconv.Atoi(m[2]); err != nil {
			return command{}, false, nil
		}
	}
	if cmd.value, err = unescape(m[3]); err != nil {
		return command{}, false, err
	}
	return cmd, true, nil
}

// canApply reports whether the message's current shape permits this
// command, enforcing the msgctxt, msgid, msgid_plural, msgstr field
// order. A msgstr is allowed as long as its slot is not filled yet.
func (c command) canApply(m *Message) bool {
	switch c.kind {
	case cmdMsgctxt:
		return m.Context == nil && m.ID == nil && m.IDPlural == nil && len(m.Strs) == 0
	case cmdMsgid:
		return m.ID == nil && m.IDPlural == nil && len(m.Strs) == 0
	case cmdMsgidPlural:
		return m.IDPlural == nil && len(m.Strs) == 0
	case cmdMsgstr:
		return c.index+1 > len(m.Strs)
	}
	return false
}

// apply sets the command's field if the message permits it, and
// reports whether it did. The assembler uses a failed apply as a
// message boundary.
func (c command) apply(m *Message) bool {
	if !c.canApply(m) {
		return false
	}
	c.forceApply(m)
	return true
}

// forceApply sets the field unconditionally. Continuation lines use
// this to extend whatever command was parsed last: singular fields
// are overwritten, msgstr slots are grown up to index+1 and written
// in place.
func (c command) forceApply(m *Message) {
	v := c.value
	switch c.kind {
	case cmdMsgctxt:
		m.Context = &v
	case cmdMsgid:
		m.ID = &v
	case cmdMsgidPlural:
		m.IDPlural = &v
	case cmdMsgstr:
		for c.index >= len(m.Strs) {
			m.Strs = append(m.Strs, "")
		}
		m.Strs[c.index] = v
	}
}
