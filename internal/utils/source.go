package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/funvibe/funlang/internal/config"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LookupEncoding returns the decoder-capable encoding for a configured name.
// utf-8 maps to nil: the bytes are used as they are.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch config.CanonicalEncoding(name) {
	case "", config.EncodingUTF8:
		return nil, nil
	case config.EncodingUTF16:
		// Little endian unless a BOM says otherwise.
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case config.EncodingShiftJIS:
		return japanese.ShiftJIS, nil
	case config.EncodingEUCJP:
		return japanese.EUCJP, nil
	case config.EncodingISO88591:
		return charmap.ISO8859_1, nil
	case config.EncodingWindows1252:
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// DecodeSource converts raw file contents in the named encoding to UTF-8 text.
// A leading UTF-8 byte order mark is dropped.
func DecodeSource(data []byte, encodingName string) (string, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return "", err
	}
	if enc != nil {
		data, err = io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", encodingName, err)
		}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("source is not valid UTF-8; set encoding to match the file")
	}
	return string(data), nil
}

// ReadSource reads a program file and decodes it to UTF-8.
func ReadSource(path, encodingName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src, err := DecodeSource(data, encodingName)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
