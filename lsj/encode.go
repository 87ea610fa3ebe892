package lsj

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/lsforge/go-lskit/debug"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/typetag"
)

type EncState struct {
	indent string
	depth  int

	colors *Colors
}

// Encode writes the document as LSJ. Attribute values cross to native
// JSON scalars here, directed by their type tags; everything else keeps
// the document's recorded member order. The fixed tab indent keeps
// output byte-stable for diffing.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	es.open(bw, "")
	es.open(bw, "save")
	es.open(bw, "header")
	if err := es.line(bw, "version", es.str(doc.Version.String()), true); err != nil {
		return err
	}
	es.closeBrace(bw, false)
	es.open(bw, "regions")
	for i := range doc.Regions {
		region := &doc.Regions[i]
		if err := es.node(bw, region.ID, region.Root, i == len(doc.Regions)-1); err != nil {
			return err
		}
	}
	es.closeBrace(bw, true)
	es.closeBrace(bw, true)
	es.closeBrace(bw, true)
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("lsj: encoded %d regions\n", len(doc.Regions))
	}
	return nil
}

func (es *EncState) node(bw *bufio.Writer, key string, n *ir.Node, last bool) error {
	if key != "" {
		es.openKeyed(bw, key)
	} else {
		es.writeIndent(bw)
		bw.WriteString("{\n")
		es.depth++
	}
	for i := range n.Members {
		m := &n.Members[i]
		memberLast := i == len(n.Members)-1
		if m.IsAttr() {
			if err := es.attribute(bw, m.ID, m.Attr, memberLast); err != nil {
				return err
			}
			continue
		}
		es.writeIndent(bw)
		bw.WriteString(es.key(m.ID) + ": [\n")
		es.depth++
		for j, child := range m.Group {
			if err := es.node(bw, "", child, j == len(m.Group)-1); err != nil {
				return err
			}
		}
		es.depth--
		es.writeIndent(bw)
		bw.WriteString("]")
		es.comma(bw, memberLast)
	}
	es.closeBrace(bw, last)
	return nil
}

func (es *EncState) attribute(bw *bufio.Writer, id string, a *ir.Attribute, last bool) error {
	es.openKeyed(bw, id)
	n := 1
	if a.Value != nil {
		n++
	}
	if a.Handle != nil {
		n++
	}
	if a.Version != 0 {
		n++
	}
	if err := es.line(bw, "type", es.str(a.Type), n == 1); err != nil {
		return err
	}
	n--
	if a.Value != nil {
		v := typetag.Coerce(typetag.Parse(a.Type), *a.Value)
		if err := es.line(bw, "value", es.scalar(v), n == 1); err != nil {
			return err
		}
		n--
	}
	if a.Handle != nil {
		if err := es.line(bw, "handle", es.str(*a.Handle), n == 1); err != nil {
			return err
		}
		n--
	}
	if a.Version != 0 {
		v := strconv.FormatUint(uint64(a.Version), 10)
		if err := es.line(bw, "version", es.num(v), n == 1); err != nil {
			return err
		}
	}
	es.closeBrace(bw, last)
	return nil
}

func (es *EncState) scalar(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return es.boolean("true")
		}
		return es.boolean("false")
	case json.Number:
		return es.num(x.String())
	case string:
		return es.str(x)
	}
	// typetag.Coerce yields nothing else
	return es.str("")
}

func (es *EncState) open(bw *bufio.Writer, key string) {
	if key == "" {
		bw.WriteString("{\n")
		es.depth++
		return
	}
	es.openKeyed(bw, key)
}

func (es *EncState) openKeyed(bw *bufio.Writer, key string) {
	es.writeIndent(bw)
	bw.WriteString(es.key(key) + ": {\n")
	es.depth++
}

func (es *EncState) closeBrace(bw *bufio.Writer, last bool) {
	es.depth--
	es.writeIndent(bw)
	bw.WriteString("}")
	es.comma(bw, last)
}

func (es *EncState) comma(bw *bufio.Writer, last bool) {
	if es.depth == 0 {
		return
	}
	if last {
		bw.WriteString("\n")
		return
	}
	bw.WriteString(",\n")
}

func (es *EncState) line(bw *bufio.Writer, key, value string, last bool) error {
	es.writeIndent(bw)
	if _, err := bw.WriteString(es.key(key) + ": " + value); err != nil {
		return err
	}
	es.comma(bw, last)
	return nil
}

func (es *EncState) writeIndent(bw *bufio.Writer) {
	bw.WriteString(strings.Repeat(es.indent, es.depth))
}

// quote writes s in JSON string syntax, passing UTF-8 through.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			b.WriteString(`\u00`)
			const hex = "0123456789abcdef"
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
