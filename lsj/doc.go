// Package lsj decodes and encodes the JSON-flavored save/resource
// encoding.
//
// LSJ is the natively-typed boundary: where LSX carries every attribute
// value as a string, LSJ exposes booleans, integers and floats, decided
// by the attribute's declared type tag (see the typetag package).
// Coercion is total; values that do not parse as their tag implies stay
// strings in the output.
//
// # Usage
//
//	doc, err := lsj.Decode(data)
//	...
//	err = lsj.Encode(doc, w)
//
// # Related Packages
//
//   - github.com/lsforge/go-lskit/ir - document representation
//   - github.com/lsforge/go-lskit/lsx - LSX codec
//   - github.com/lsforge/go-lskit/typetag - attribute value coercion
package lsj
