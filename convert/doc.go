// Package convert composes the LSX and LSJ codecs into the two public
// conversion entry points.
//
//	out, err := convert.XMLToJSON(in)
//	out, err := convert.JSONToXML(in)
//
// Each call decodes into a fresh document and encodes it back out; no
// state is shared between calls, so callers may convert many files
// concurrently without locking.
package convert
