// Package format names the save/resource file encodings handled by lskit.
//
//	f, err := format.ParseFormat("lsx")
//	f.Suffix() // ".lsx"
//
// LSX and LSJ are the textual encodings this module converts between.
// LSF is the binary encoding; it is named here so callers can detect it
// and hand it to an external converter, but the codecs refuse it.
//
// # Related Packages
//
//   - github.com/lsforge/go-lskit/lsx - LSX codec
//   - github.com/lsforge/go-lskit/lsj - LSJ codec
//   - github.com/lsforge/go-lskit/convert - format-to-format conversion
package format
