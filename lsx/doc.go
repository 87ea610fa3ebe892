// Package lsx decodes and encodes the XML-flavored save/resource
// encoding.
//
// # Usage
//
//	doc, err := lsx.Decode(data)
//	...
//	err = lsx.Encode(doc, w)
//
// Attribute values stay raw strings in the decoded document; see the
// lsj package for the natively-typed boundary.
//
// # Related Packages
//
//   - github.com/lsforge/go-lskit/ir - document representation
//   - github.com/lsforge/go-lskit/lsj - LSJ codec
//   - github.com/lsforge/go-lskit/convert - format-to-format conversion
package lsx
