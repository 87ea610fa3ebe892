package typetag

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Tag is the closed enumeration of attribute type tags. Unrecognized
// tags map to Unknown, which carries the heuristic coercion rules.
type Tag int

const (
	Unknown Tag = iota
	FixedString
	LSString
	TranslatedString
	GUID
	Int32
	UInt8
	UInt32
	Int64
	UInt64
	Float
	Double
	Bool
)

var tagNames = map[string]Tag{
	"FixedString":      FixedString,
	"LSString":         LSString,
	"TranslatedString": TranslatedString,
	"guid":             GUID,
	"int32":            Int32,
	"uint8":            UInt8,
	"uint32":           UInt32,
	"int64":            Int64,
	"uint64":           UInt64,
	"float":            Float,
	"double":           Double,
	"bool":             Bool,
}

// Parse maps a wire type tag to its Tag. Anything unrecognized,
// including the empty string, is Unknown.
func Parse(v string) Tag {
	return tagNames[v]
}

func (t Tag) String() string {
	for name, tag := range tagNames {
		if tag == t {
			return name
		}
	}
	return "<unknown>"
}

func (t Tag) IsString() bool {
	switch t {
	case FixedString, LSString, TranslatedString, GUID:
		return true
	}
	return false
}

func (t Tag) IsInteger() bool {
	switch t {
	case Int32, UInt8, UInt32, Int64, UInt64:
		return true
	}
	return false
}

func (t Tag) IsFloat() bool {
	return t == Float || t == Double
}

// Coerce maps a raw wire string to the value it takes at the JSON
// boundary: bool, string, or json.Number. It never fails; when the raw
// string does not parse as the tag implies, the string itself is the
// result. Numbers preserve the raw spelling when it is valid JSON
// number syntax, so re-encoding does not reformat them.
func Coerce(t Tag, raw string) any {
	// The source format spells booleans as these literals with no
	// dedicated type tag in all cases, so this applies before any
	// tag dispatch.
	switch raw {
	case "True":
		return true
	case "False":
		return false
	}
	switch {
	case t.IsString():
		return raw
	case t.IsInteger():
		if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return intNumber(raw)
		}
		if _, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return intNumber(raw)
		}
		return raw
	case t.IsFloat():
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return floatNumber(raw, f)
		}
		return raw
	default:
		if strings.Contains(raw, ".") {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				return floatNumber(raw, f)
			}
			return raw
		}
		if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return intNumber(raw)
		}
		return raw
	}
}

// Format maps a native JSON boundary value back to its wire string.
// The second result is false when v is not a representable scalar.
func Format(v any) (string, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return "True", true
		}
		return "False", true
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	default:
		return "", false
	}
}

func intNumber(raw string) json.Number {
	if isJSONNumber(raw) {
		return json.Number(raw)
	}
	// leading zeros or an explicit '+': reformat canonically
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return json.Number(strconv.FormatInt(i, 10))
	}
	u, _ := strconv.ParseUint(raw, 10, 64)
	return json.Number(strconv.FormatUint(u, 10))
}

func floatNumber(raw string, f float64) json.Number {
	if isJSONNumber(raw) {
		return json.Number(raw)
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// isJSONNumber reports whether s matches the JSON number grammar.
// strconv is more permissive (leading zeros, "+5", ".5", "1.", hex
// floats), so raw spellings are only passed through when JSON agrees.
func isJSONNumber(s string) bool {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && s[i] >= '1' && s[i] <= '9':
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < n && s[i] == '.' {
		i++
		if i >= n || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= n || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	return i == n
}
