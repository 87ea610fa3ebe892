package lspatch

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/lsforge/go-lskit/debug"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/lsj"
)

// Apply applies an RFC 6902 patch to the LSJ projection of doc and
// decodes the result back. Patch paths address the LSJ shape, e.g.
// /save/regions/Config/Name/value. The input document is not modified.
// The patch library re-marshals objects with sorted keys, so member
// order after a patch is alphabetical rather than the input's.
func Apply(doc *ir.Document, patch []byte) (*ir.Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := lsj.Encode(doc, buf); err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("lspatch: applying %d ops\n", len(ops))
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return lsj.Decode(out)
}
