package util

import (
	"fmt"
	"strings"

	"github.com/qiniu/iconv"
)

const defaultEncoding = "utf-8"

// sameEncoding compares two encoding names, ignoring case and dashes,
// so "UTF-8", "utf8" and "utf-8" are all the same.
func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

// RecodeToUTF8 converts data from the given charset to UTF-8 using
// iconv. It is a no-op when fromCode is empty or already names UTF-8.
func RecodeToUTF8(data []byte, fromCode string) ([]byte, error) {
	if fromCode == "" || sameEncoding(fromCode, defaultEncoding) {
		return data, nil
	}
	cd, err := iconv.Open(defaultEncoding, fromCode)
	if err != nil {
		return nil, fmt.Errorf("iconv.Open failed: %w", err)
	}
	defer cd.Close()

	var (
		converted []byte
		out       = make([]byte, 4096)
		nLeft     = len(data)
	)
	for nLeft > 0 {
		chunk, left, err := cd.Do(data[len(data)-nLeft:], nLeft, out)
		if err != nil {
			return nil, fmt.Errorf("bad %s characters in input: %w", fromCode, err)
		}
		converted = append(converted, out[:chunk]...)
		nLeft = left
	}
	return converted, nil
}
