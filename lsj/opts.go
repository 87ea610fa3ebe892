package lsj

import (
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/pos"
)

type EncodeOption func(*EncState)

// EncodeIndent replaces the default tab indent unit.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

type decodeOpts struct {
	positions map[*ir.Node]*pos.Pos
}

type DecodeOption func(*decodeOpts)

// DecodePositions records the source position of every decoded node in
// m, for consumers that report locations.
func DecodePositions(m map[*ir.Node]*pos.Pos) DecodeOption {
	return func(o *decodeOpts) { o.positions = m }
}
