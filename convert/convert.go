package convert

import (
	"bytes"
	"fmt"

	"github.com/lsforge/go-lskit/format"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/lsj"
	"github.com/lsforge/go-lskit/lsx"
)

// XMLToJSON converts LSX text to LSJ text through the document
// representation. Pure and safe to call concurrently.
func XMLToJSON(in string) (string, error) {
	out, err := Convert([]byte(in), format.LSXFormat, format.LSJFormat)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// JSONToXML converts LSJ text to LSX text through the document
// representation. Pure and safe to call concurrently.
func JSONToXML(in string) (string, error) {
	out, err := Convert([]byte(in), format.LSJFormat, format.LSXFormat)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Convert decodes d as the from format and encodes the result as the to
// format. The binary format is refused in either position: it needs the
// external converter.
func Convert(d []byte, from, to format.Format) ([]byte, error) {
	doc, err := Decode(d, from)
	if err != nil {
		return nil, err
	}
	return Encode(doc, to)
}

// Decode decodes d as the given format.
func Decode(d []byte, f format.Format) (*ir.Document, error) {
	switch f {
	case format.LSXFormat:
		return lsx.Decode(d)
	case format.LSJFormat:
		return lsj.Decode(d)
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", format.ErrBadFormat, f)
	}
}

// Encode encodes doc as the given format.
func Encode(doc *ir.Document, f format.Format) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	switch f {
	case format.LSXFormat:
		if err := lsx.Encode(doc, buf); err != nil {
			return nil, err
		}
	case format.LSJFormat:
		if err := lsj.Encode(doc, buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, f)
	}
	return buf.Bytes(), nil
}

// lsfMagic starts every binary-format file.
var lsfMagic = []byte("LSOF")

// Sniff guesses the format of raw file content: LSX starts with '<'
// after optional BOM and whitespace, LSJ with '{', and the binary
// format with its magic.
func Sniff(d []byte) (format.Format, error) {
	if bytes.HasPrefix(d, lsfMagic) {
		return format.LSFFormat, nil
	}
	d = bytes.TrimPrefix(d, []byte{0xef, 0xbb, 0xbf})
	d = bytes.TrimLeft(d, " \t\r\n")
	if len(d) == 0 {
		return 0, fmt.Errorf("%w: empty input", format.ErrBadFormat)
	}
	switch d[0] {
	case '<':
		return format.LSXFormat, nil
	case '{':
		return format.LSJFormat, nil
	}
	return 0, fmt.Errorf("%w: unrecognized input starting %q", format.ErrBadFormat, d[0])
}
