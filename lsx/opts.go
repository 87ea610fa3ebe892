package lsx

import (
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/pos"
)

type EncodeOption func(*EncState)

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeProlog controls the xml declaration line (on by default).
func EncodeProlog(v bool) EncodeOption {
	return func(es *EncState) { es.prolog = v }
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
