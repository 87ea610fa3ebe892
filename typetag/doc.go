// Package typetag implements type-directed value coercion for attribute
// values.
//
// Attribute values travel as strings in the LSX encoding and as native
// scalars in the LSJ encoding. The declared type tag of an attribute
// decides the mapping:
//
//	typetag.Coerce(typetag.Parse("int32"), "42")    // json.Number("42")
//	typetag.Coerce(typetag.Parse("LSString"), "42") // "42"
//	typetag.Coerce(typetag.Parse("int32"), "True")  // true
//
// Coercion never fails: a value that does not parse as its tag implies
// stays a string, so no information is lost and the return trip to LSX
// reproduces it exactly.
package typetag
