// Package query selects document nodes with compiled predicate
// expressions.
//
//	q, err := query.Compile(`id == "Module" && has("UUID")`)
//	matches, err := q.Run(doc)
//
// Attribute values reach the expression natively typed, the same way
// the LSJ encoding exposes them.
package query
