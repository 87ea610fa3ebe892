package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	LSXFormat Format = iota
	LSJFormat
	LSFFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":   LSXFormat,
		"lsx": LSXFormat,
		"xml": LSXFormat,
		"j":   LSJFormat,
		"lsj": LSJFormat,
		"f":   LSFFormat,
		"lsf": LSFFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case LSXFormat:
		return []byte("lsx"), nil
	case LSJFormat:
		return []byte("lsj"), nil
	case LSFFormat:
		return []byte("lsf"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsLSX() bool { return f == LSXFormat }
func (f Format) IsLSJ() bool { return f == LSJFormat }

// IsBinary reports whether f is the binary encoding, which this module
// recognizes for suffix and sniffing purposes but cannot decode or encode.
func (f Format) IsBinary() bool { return f == LSFFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case LSXFormat:
		return ".lsx"
	case LSJFormat:
		return ".lsj"
	case LSFFormat:
		return ".lsf"
	default:
		return ""
	}
}

// FormatForPath guesses the format from a file name suffix.
func FormatForPath(path string) (Format, error) {
	for _, f := range AllFormats() {
		n := len(path) - len(f.Suffix())
		if n >= 0 && path[n:] == f.Suffix() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: no known suffix on %q", ErrBadFormat, path)
}

// AllFormats returns all recognized formats in preference order.
func AllFormats() []Format {
	return []Format{LSXFormat, LSJFormat, LSFFormat}
}
