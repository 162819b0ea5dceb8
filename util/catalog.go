package util

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/l10n-kit/potcat/po"
	log "github.com/sirupsen/logrus"
)

// ReadCatalog parses catalog content in any supported input format:
// compiled MO (detected by its magic number), gettext JSON (content
// starts with '{'), or PO/POT text. fromCode, when set, recodes PO
// text input to UTF-8 before parsing.
func ReadCatalog(data []byte, fromCode string) (*po.Catalog, error) {
	switch {
	case LooksLikeMo(data):
		log.Debug("input detected as mo format")
		return ReadMoCatalog(data)
	case LooksLikeJSON(data):
		log.Debug("input detected as gettext JSON format")
		return ReadJSONCatalog(data)
	}
	data, err := RecodeToUTF8(data, fromCode)
	if err != nil {
		return nil, err
	}
	return po.Read(bytes.NewReader(data))
}

// ReadCatalogFile reads and parses one catalog file. The name "-"
// means stdin.
func ReadCatalogFile(name, fromCode string) (*po.Catalog, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	catalog, err := ReadCatalog(data, fromCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return catalog, nil
}
