// Package lspatch edits documents with RFC 6902 JSON patches applied
// to their LSJ projection. This gives scripted edits of save/resource
// files (toggling a mod entry, bumping a setting) without hand-editing
// either encoding.
package lspatch
