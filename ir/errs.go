package ir

import (
	"errors"

	"github.com/lsforge/go-lskit/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrStructure = errors.New("structural error")
	ErrBadFormat = format.ErrBadFormat
)
