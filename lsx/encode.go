package lsx

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lsforge/go-lskit/debug"
	"github.com/lsforge/go-lskit/ir"
)

type EncState struct {
	indent int
	depth  int
	prolog bool

	colors *Colors
}

// Encode writes the document as LSX with stable indentation. The
// version element is always emitted; attribute fields appear in fixed
// id, type, value, handle, version order; all child groups of a node
// share one children element, group by group in first-populated order.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, prolog: true}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if es.prolog {
		if _, err := bw.WriteString(xmlProlog); err != nil {
			return err
		}
	}
	if err := es.openLine(bw, "save", nil, false); err != nil {
		return err
	}
	es.depth++
	if err := es.versionLine(bw, doc.Version); err != nil {
		return err
	}
	for i := range doc.Regions {
		region := &doc.Regions[i]
		err := es.openLine(bw, "region", []field{{"id", region.ID}}, false)
		if err != nil {
			return err
		}
		es.depth++
		if err := es.node(bw, region.Root); err != nil {
			return err
		}
		es.depth--
		if err := es.closeLine(bw, "region"); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.closeLine(bw, "save"); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("lsx: encoded %d regions\n", len(doc.Regions))
	}
	return nil
}

// EncodeNode writes a single node subtree, without the save wrapper.
// Useful for showing query results and diffs.
func EncodeNode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if err := es.node(bw, n); err != nil {
		return err
	}
	return bw.Flush()
}

const xmlProlog = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

type field struct {
	name, value string
}

func (es *EncState) node(bw *bufio.Writer, n *ir.Node) error {
	if len(n.Members) == 0 {
		return es.openLine(bw, "node", []field{{"id", n.ID}}, true)
	}
	if err := es.openLine(bw, "node", []field{{"id", n.ID}}, false); err != nil {
		return err
	}
	es.depth++
	haveGroups := false
	for i := range n.Members {
		m := &n.Members[i]
		if !m.IsAttr() {
			haveGroups = true
			continue
		}
		if err := es.attribute(bw, m.ID, m.Attr); err != nil {
			return err
		}
	}
	if haveGroups {
		if err := es.openLine(bw, "children", nil, false); err != nil {
			return err
		}
		es.depth++
		for i := range n.Members {
			m := &n.Members[i]
			if m.IsAttr() {
				continue
			}
			for _, child := range m.Group {
				if err := es.node(bw, child); err != nil {
					return err
				}
			}
		}
		es.depth--
		if err := es.closeLine(bw, "children"); err != nil {
			return err
		}
	}
	es.depth--
	return es.closeLine(bw, "node")
}

func (es *EncState) attribute(bw *bufio.Writer, id string, a *ir.Attribute) error {
	fields := []field{{"id", id}, {"type", a.Type}}
	if a.Value != nil {
		fields = append(fields, field{"value", *a.Value})
	}
	if a.Handle != nil {
		fields = append(fields, field{"handle", *a.Handle})
	}
	if a.Version != 0 {
		fields = append(fields, field{"version", strconv.FormatUint(uint64(a.Version), 10)})
	}
	return es.openLine(bw, "attribute", fields, true)
}

func (es *EncState) versionLine(bw *bufio.Writer, v ir.Version) error {
	return es.openLine(bw, "version", []field{
		{"major", strconv.FormatUint(uint64(v.Major), 10)},
		{"minor", strconv.FormatUint(uint64(v.Minor), 10)},
		{"revision", strconv.FormatUint(uint64(v.Revision), 10)},
		{"build", strconv.FormatUint(uint64(v.Build), 10)},
	}, true)
}

func (es *EncState) openLine(bw *bufio.Writer, name string, fields []field, selfClose bool) error {
	if err := es.writeIndent(bw); err != nil {
		return err
	}
	if _, err := bw.WriteString("<" + es.color(elemColor, name)); err != nil {
		return err
	}
	for _, f := range fields {
		part := " " + es.color(nameColor, f.name) + "=\"" + es.color(valueColor, escapeAttr(f.value)) + "\""
		if _, err := bw.WriteString(part); err != nil {
			return err
		}
	}
	end := ">\n"
	if selfClose {
		end = "/>\n"
	}
	_, err := bw.WriteString(end)
	return err
}

func (es *EncState) closeLine(bw *bufio.Writer, name string) error {
	if err := es.writeIndent(bw); err != nil {
		return err
	}
	_, err := bw.WriteString("</" + es.color(elemColor, name) + ">\n")
	return err
}

func (es *EncState) writeIndent(bw *bufio.Writer) error {
	_, err := bw.WriteString(strings.Repeat(" ", es.indent*es.depth))
	return err
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
