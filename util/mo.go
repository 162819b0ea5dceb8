package util

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gorilla/i18n/gettext"
	"github.com/l10n-kit/potcat/po"
)

// The MO magic number 0x950412de in both byte orders.
var (
	moMagicLittle = []byte{0xde, 0x12, 0x04, 0x95}
	moMagicBig    = []byte{0x95, 0x04, 0x12, 0xde}
)

// LooksLikeMo reports whether data starts with the MO magic number.
func LooksLikeMo(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return bytes.Equal(data[:4], moMagicLittle) || bytes.Equal(data[:4], moMagicBig)
}

// ReadMoCatalog loads a compiled MO file and converts it to a PO
// catalog. MO files carry no comments; messages come out in the MO
// catalog's sorted key order, with the header entry (empty msgid)
// first.
func ReadMoCatalog(data []byte) (*po.Catalog, error) {
	mo := gettext.NewCatalog()
	if err := mo.ReadMo(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read mo file: %w", err)
	}
	catalog := &po.Catalog{}
	iter := mo.Iter()
	for {
		msg, err := iter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate mo file: %w", err)
		}
		m := &po.Message{}
		if msg.Ctxt != nil {
			s := string(msg.Ctxt)
			m.Context = &s
		}
		if msg.Id != nil {
			s := string(msg.Id)
			m.ID = &s
		}
		if msg.IdPlural != nil {
			s := string(msg.IdPlural)
			m.IDPlural = &s
		}
		if len(msg.StrPlural) > 0 {
			for _, v := range msg.StrPlural {
				m.Strs = append(m.Strs, string(v))
			}
		} else if msg.Str != nil {
			m.Strs = append(m.Strs, string(msg.Str))
		}
		catalog.Messages = append(catalog.Messages, m)
	}
	return catalog, nil
}
