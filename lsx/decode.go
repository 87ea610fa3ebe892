package lsx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lsforge/go-lskit/debug"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/pos"
)

// Decode parses LSX text into a document. Element encounter order
// becomes member order; nested node elements under a children element
// are grouped by their id, preserving first-seen group order.
func Decode(d []byte, opts ...DecodeOption) (*ir.Document, error) {
	dOpts := &decodeOpts{}
	for _, f := range opts {
		f(dOpts)
	}
	dc := &decoder{
		dec:  xml.NewDecoder(bytes.NewReader(d)),
		doc:  pos.NewDoc(d),
		opts: dOpts,
	}
	res, err := dc.document()
	if err != nil {
		return nil, err
	}
	if debug.Decode() {
		debug.Logf("lsx: decoded %d regions, version %s\n", len(res.Regions), res.Version)
	}
	return res, nil
}

type decoder struct {
	dec  *xml.Decoder
	doc  *pos.Doc
	opts *decodeOpts
}

func (dc *decoder) pos() *pos.Pos {
	return dc.doc.At(int(dc.dec.InputOffset()))
}

// next returns the next token, folding syntax errors into ErrParse with
// a position. io.EOF passes through for the caller to interpret.
func (dc *decoder) next() (xml.Token, error) {
	tok, err := dc.dec.Token()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		if se, ok := err.(*xml.SyntaxError); ok {
			return nil, fmt.Errorf("%w: %s %s", ir.ErrParse, se.Msg, dc.doc.At(int(dc.dec.InputOffset())))
		}
		return nil, fmt.Errorf("%w: %v %s", ir.ErrParse, err, dc.pos())
	}
	return tok, nil
}

func (dc *decoder) document() (*ir.Document, error) {
	root, err := dc.rootElement()
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "save" {
		return nil, fmt.Errorf("%w: expected save element, got %q %s", ir.ErrParse, root.Name.Local, dc.pos())
	}
	res := &ir.Document{Version: ir.DefaultVersion()}
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: unterminated save element %s", ir.ErrParse, dc.pos())
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "version":
				if err := dc.versionElement(t, &res.Version); err != nil {
					return nil, err
				}
			case "region":
				if err := dc.regionElement(t, res); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: unexpected element %q in save %s", ir.ErrParse, t.Name.Local, dc.pos())
			}
		case xml.EndElement:
			return res, dc.trailer()
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return nil, err
			}
		}
	}
}

// rootElement skips the prolog (xml declaration, comments, whitespace)
// and returns the document element.
func (dc *decoder) rootElement() (xml.StartElement, error) {
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return xml.StartElement{}, fmt.Errorf("%w: no document element %s", ir.ErrParse, dc.pos())
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return xml.StartElement{}, err
			}
		}
	}
}

// trailer consumes everything after the save element; only whitespace
// and comments may remain.
func (dc *decoder) trailer() error {
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return err
			}
		case xml.Comment, xml.ProcInst:
		default:
			return fmt.Errorf("%w: content after save element %s", ir.ErrParse, dc.pos())
		}
	}
}

func (dc *decoder) whitespace(t xml.CharData) error {
	if strings.TrimSpace(string(t)) != "" {
		return fmt.Errorf("%w: unexpected character data %s", ir.ErrParse, dc.pos())
	}
	return nil
}

func (dc *decoder) versionElement(se xml.StartElement, v *ir.Version) error {
	dst := map[string]*uint32{
		"major":    &v.Major,
		"minor":    &v.Minor,
		"revision": &v.Revision,
		"build":    &v.Build,
	}
	for _, attr := range se.Attr {
		p, ok := dst[attr.Name.Local]
		if !ok {
			continue
		}
		u, err := strconv.ParseUint(attr.Value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: bad version %s=%q %s", ir.ErrParse, attr.Name.Local, attr.Value, dc.pos())
		}
		*p = uint32(u)
	}
	return dc.closeElement(se.Name.Local)
}

func (dc *decoder) regionElement(se xml.StartElement, doc *ir.Document) error {
	id, ok := attrValue(se, "id")
	if !ok {
		return fmt.Errorf("%w: region without id %s", ir.ErrParse, dc.pos())
	}
	var root *ir.Node
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return fmt.Errorf("%w: unterminated region %q %s", ir.ErrParse, id, dc.pos())
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "node" {
				return fmt.Errorf("%w: unexpected element %q in region %q %s", ir.ErrParse, t.Name.Local, id, dc.pos())
			}
			if root != nil {
				return fmt.Errorf("%w: region %q has more than one root node %s", ir.ErrParse, id, dc.pos())
			}
			root, err = dc.nodeElement(t)
			if err != nil {
				return err
			}
		case xml.EndElement:
			if root == nil {
				return fmt.Errorf("%w: region %q has no root node %s", ir.ErrParse, id, dc.pos())
			}
			if err := doc.AddRegion(id, root); err != nil {
				return fmt.Errorf("%w %s", err, dc.pos())
			}
			return nil
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return err
			}
		}
	}
}

func (dc *decoder) nodeElement(se xml.StartElement) (*ir.Node, error) {
	id, ok := attrValue(se, "id")
	if !ok {
		return nil, fmt.Errorf("%w: node without id %s", ir.ErrParse, dc.pos())
	}
	node := &ir.Node{ID: id}
	if dc.opts.positions != nil {
		dc.opts.positions[node] = dc.pos()
	}
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: unterminated node %q %s", ir.ErrParse, id, dc.pos())
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "attribute":
				if err := dc.attributeElement(t, node); err != nil {
					return nil, err
				}
			case "children":
				if err := dc.childrenElement(node); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: unexpected element %q in node %q %s", ir.ErrParse, t.Name.Local, id, dc.pos())
			}
		case xml.EndElement:
			return node, nil
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return nil, err
			}
		}
	}
}

func (dc *decoder) attributeElement(se xml.StartElement, node *ir.Node) error {
	var id string
	attr := &ir.Attribute{}
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "id":
			id = a.Value
		case "type":
			attr.Type = a.Value
		case "value":
			v := a.Value
			attr.Value = &v
		case "handle":
			h := a.Value
			attr.Handle = &h
		case "version":
			u, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: bad attribute version %q %s", ir.ErrParse, a.Value, dc.pos())
			}
			attr.Version = uint32(u)
		}
	}
	if id == "" {
		return fmt.Errorf("%w: attribute without id on node %q %s", ir.ErrParse, node.ID, dc.pos())
	}
	if err := node.AddAttr(id, attr); err != nil {
		return fmt.Errorf("%w %s", err, dc.pos())
	}
	return dc.closeElement(se.Name.Local)
}

func (dc *decoder) childrenElement(node *ir.Node) error {
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return fmt.Errorf("%w: unterminated children of node %q %s", ir.ErrParse, node.ID, dc.pos())
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "node" {
				return fmt.Errorf("%w: unexpected element %q in children of %q %s", ir.ErrParse, t.Name.Local, node.ID, dc.pos())
			}
			child, err := dc.nodeElement(t)
			if err != nil {
				return err
			}
			if err := node.AddChild(child.ID, child); err != nil {
				return fmt.Errorf("%w %s", err, dc.pos())
			}
		case xml.EndElement:
			return nil
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return err
			}
		}
	}
}

// closeElement consumes up to the end of an element that should carry
// no content.
func (dc *decoder) closeElement(name string) error {
	for {
		tok, err := dc.next()
		if err == io.EOF {
			return fmt.Errorf("%w: unterminated %s element %s", ir.ErrParse, name, dc.pos())
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.CharData:
			if err := dc.whitespace(t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unexpected content in %s element %s", ir.ErrParse, name, dc.pos())
		}
	}
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
