// Package ir provides the in-memory representation of save/resource
// documents.
//
// # Overview
//
// A Document is a format version plus an ordered list of named regions,
// each holding a tree of nodes. Nodes carry an ordered member list where
// every member is either a typed attribute or a child group: the ordered
// list of sibling nodes sharing one id under the parent. The same
// Document is produced whether the source text was LSX or LSJ, and both
// codecs encode from it, so it is the interchange point for conversion.
//
// # Members
//
// Member is an explicit two-case sum: exactly one of Attr and Group is
// set. Within one node an id denotes at most one member; the
// construction helpers AddAttr and AddChild reject duplicate attribute
// ids and attribute/group collisions with ErrStructure rather than
// letting one silently shadow the other.
//
// # Attribute values
//
// Attribute.Value always holds the raw wire string as it appears in the
// LSX encoding. The LSJ codec coerces values to native scalars at its
// boundary (see the typetag package); nothing in this package interprets
// them. Value and Handle are pointers so that an absent field and a
// present-but-empty field remain distinct, which the wire formats
// require.
//
// # Ordering
//
// Member order within a node, node order within a group, and region
// order within a document are all significant and survive a
// decode/encode round trip of either encoding.
//
// # Thread Safety
//
// Documents are plain data with no synchronization. Clone a document
// before sharing it across goroutines that mutate it.
//
// # Related Packages
//
//   - github.com/lsforge/go-lskit/lsx - LSX codec
//   - github.com/lsforge/go-lskit/lsj - LSJ codec
//   - github.com/lsforge/go-lskit/typetag - attribute value coercion
package ir
