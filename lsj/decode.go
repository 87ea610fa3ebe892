package lsj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/lsforge/go-lskit/debug"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/pos"
	"github.com/lsforge/go-lskit/typetag"
)

// Decode parses LSJ text into a document. Object member order is
// authoritative for attribute and child-group ordering, so decoding
// walks the token stream rather than unmarshalling into maps. Each node
// member is discriminated once: an object is an attribute, an array is
// a child group.
func Decode(d []byte, opts ...DecodeOption) (*ir.Document, error) {
	dOpts := &decodeOpts{}
	for _, f := range opts {
		f(dOpts)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	dc := &decoder{dec: dec, doc: pos.NewDoc(d), opts: dOpts}
	res, err := dc.document()
	if err != nil {
		return nil, err
	}
	if debug.Decode() {
		debug.Logf("lsj: decoded %d regions, version %s\n", len(res.Regions), res.Version)
	}
	return res, nil
}

type decoder struct {
	dec  *json.Decoder
	doc  *pos.Doc
	opts *decodeOpts
}

func (dc *decoder) pos() *pos.Pos {
	return dc.doc.At(int(dc.dec.InputOffset()))
}

func (dc *decoder) next() (json.Token, error) {
	tok, err := dc.dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: unexpected end of input %s", ir.ErrParse, dc.pos())
	}
	if err != nil {
		if se, ok := err.(*json.SyntaxError); ok {
			return nil, fmt.Errorf("%w: %s %s", ir.ErrParse, se.Error(), dc.doc.At(int(se.Offset)))
		}
		return nil, fmt.Errorf("%w: %v %s", ir.ErrParse, err, dc.pos())
	}
	return tok, nil
}

func (dc *decoder) expectDelim(d json.Delim) error {
	tok, err := dc.next()
	if err != nil {
		return err
	}
	if got, ok := tok.(json.Delim); !ok || got != d {
		return fmt.Errorf("%w: expected %q, got %v %s", ir.ErrParse, d.String(), tok, dc.pos())
	}
	return nil
}

// key returns the next object key; the caller has checked More.
func (dc *decoder) key() (string, error) {
	tok, err := dc.next()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v %s", ir.ErrParse, tok, dc.pos())
	}
	return s, nil
}

func (dc *decoder) document() (*ir.Document, error) {
	if err := dc.expectDelim('{'); err != nil {
		return nil, err
	}
	res := &ir.Document{Version: ir.DefaultVersion()}
	haveSave := false
	for dc.dec.More() {
		k, err := dc.key()
		if err != nil {
			return nil, err
		}
		if k != "save" {
			if err := dc.skipValue(); err != nil {
				return nil, err
			}
			continue
		}
		haveSave = true
		if err := dc.save(res); err != nil {
			return nil, err
		}
	}
	if err := dc.expectDelim('}'); err != nil {
		return nil, err
	}
	if !haveSave {
		return nil, fmt.Errorf("%w: no save member %s", ir.ErrParse, dc.pos())
	}
	return res, nil
}

func (dc *decoder) save(res *ir.Document) error {
	if err := dc.expectDelim('{'); err != nil {
		return err
	}
	for dc.dec.More() {
		k, err := dc.key()
		if err != nil {
			return err
		}
		switch k {
		case "header":
			if err := dc.header(res); err != nil {
				return err
			}
		case "regions":
			if err := dc.regions(res); err != nil {
				return err
			}
		default:
			if err := dc.skipValue(); err != nil {
				return err
			}
		}
	}
	return dc.expectDelim('}')
}

func (dc *decoder) header(res *ir.Document) error {
	if err := dc.expectDelim('{'); err != nil {
		return err
	}
	for dc.dec.More() {
		k, err := dc.key()
		if err != nil {
			return err
		}
		if k != "version" {
			if err := dc.skipValue(); err != nil {
				return err
			}
			continue
		}
		tok, err := dc.next()
		if err != nil {
			return err
		}
		s, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: header version is not a string %s", ir.ErrParse, dc.pos())
		}
		res.Version = ir.ParseVersion(s)
	}
	return dc.expectDelim('}')
}

func (dc *decoder) regions(res *ir.Document) error {
	if err := dc.expectDelim('{'); err != nil {
		return err
	}
	for dc.dec.More() {
		id, err := dc.key()
		if err != nil {
			return err
		}
		if err := dc.expectDelim('{'); err != nil {
			return err
		}
		// the LSJ form carries no separate root node id, so the
		// region id doubles as the root node id
		root, err := dc.nodeBody(id)
		if err != nil {
			return err
		}
		if err := res.AddRegion(id, root); err != nil {
			return fmt.Errorf("%w %s", err, dc.pos())
		}
	}
	return dc.expectDelim('}')
}

// nodeBody reads the members of a node object whose opening brace has
// been consumed.
func (dc *decoder) nodeBody(id string) (*ir.Node, error) {
	node := &ir.Node{ID: id}
	if dc.opts.positions != nil {
		dc.opts.positions[node] = dc.pos()
	}
	for dc.dec.More() {
		k, err := dc.key()
		if err != nil {
			return nil, err
		}
		tok, err := dc.next()
		if err != nil {
			return nil, err
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			return nil, fmt.Errorf("%w: member %q of node %q is a bare scalar %s", ir.ErrParse, k, id, dc.pos())
		}
		switch delim {
		case '{':
			attr, err := dc.attribute(k, id)
			if err != nil {
				return nil, err
			}
			if err := node.AddAttr(k, attr); err != nil {
				return nil, fmt.Errorf("%w %s", err, dc.pos())
			}
		case '[':
			for dc.dec.More() {
				if err := dc.expectDelim('{'); err != nil {
					return nil, err
				}
				// nodeBody consumes its own closing brace
				child, err := dc.nodeBody(k)
				if err != nil {
					return nil, err
				}
				if err := node.AddChild(k, child); err != nil {
					return nil, fmt.Errorf("%w %s", err, dc.pos())
				}
			}
			if err := dc.expectDelim(']'); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q %s", ir.ErrParse, delim.String(), dc.pos())
		}
	}
	if err := dc.expectDelim('}'); err != nil {
		return nil, err
	}
	return node, nil
}

// attribute reads an attribute object whose opening brace has been
// consumed. A missing type member falls back to LSString rather than
// failing the decode.
func (dc *decoder) attribute(id, nodeID string) (*ir.Attribute, error) {
	attr := &ir.Attribute{}
	haveType := false
	for dc.dec.More() {
		k, err := dc.key()
		if err != nil {
			return nil, err
		}
		switch k {
		case "type":
			tok, err := dc.next()
			if err != nil {
				return nil, err
			}
			s, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %q type is not a string %s", ir.ErrParse, id, dc.pos())
			}
			attr.Type = s
			haveType = true
		case "value":
			tok, err := dc.next()
			if err != nil {
				return nil, err
			}
			if tok == nil {
				// null: declared without a value
				continue
			}
			if _, ok := tok.(json.Delim); ok {
				return nil, fmt.Errorf("%w: attribute %q value is not a scalar %s", ir.ErrParse, id, dc.pos())
			}
			raw, ok := typetag.Format(tok)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %q value %v %s", ir.ErrParse, id, tok, dc.pos())
			}
			attr.Value = &raw
		case "handle":
			tok, err := dc.next()
			if err != nil {
				return nil, err
			}
			if tok == nil {
				continue
			}
			s, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %q handle is not a string %s", ir.ErrParse, id, dc.pos())
			}
			attr.Handle = &s
		case "version":
			tok, err := dc.next()
			if err != nil {
				return nil, err
			}
			num, ok := tok.(json.Number)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %q version is not a number %s", ir.ErrParse, id, dc.pos())
			}
			u, err := num.Int64()
			if err != nil || u < 0 || u > math.MaxUint32 {
				return nil, fmt.Errorf("%w: attribute %q version %s %s", ir.ErrParse, id, num, dc.pos())
			}
			attr.Version = uint32(u)
		default:
			if err := dc.skipValue(); err != nil {
				return nil, err
			}
		}
	}
	if err := dc.expectDelim('}'); err != nil {
		return nil, err
	}
	if !haveType {
		attr.Type = "LSString"
	}
	return attr, nil
}

// skipValue consumes one value of any shape.
func (dc *decoder) skipValue() error {
	tok, err := dc.next()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{', '[':
		depth := 1
		for depth > 0 {
			tok, err := dc.next()
			if err != nil {
				return err
			}
			switch tok {
			case json.Delim('{'), json.Delim('['):
				depth++
			case json.Delim('}'), json.Delim(']'):
				depth--
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected %q %s", ir.ErrParse, delim.String(), dc.pos())
	}
}
