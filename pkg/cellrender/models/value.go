// Package models defines the data structures shared by cell renderers and the
// table pipeline.
package models

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant a CellValue holds.
type Kind int

const (
	// KindNull is an empty cell.
	KindNull Kind = iota
	// KindText is a text cell.
	KindText
	// KindInteger is a signed integer cell.
	KindInteger
	// KindFloat is a floating point cell.
	KindFloat
	// KindBlob is a binary cell.
	KindBlob
	// KindStructured holds any other host value (booleans, maps, slices).
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBlob:
		return "blob"
	case KindStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// CellValue is a single stored cell value. The zero value is Null.
type CellValue struct {
	kind       Kind
	text       string
	integer    int64
	float      float64
	blob       []byte
	structured interface{}
}

// Null returns an empty cell value.
func Null() CellValue { return CellValue{} }

// Text returns a text cell value.
func Text(s string) CellValue { return CellValue{kind: KindText, text: s} }

// Integer returns an integer cell value.
func Integer(i int64) CellValue { return CellValue{kind: KindInteger, integer: i} }

// Float returns a float cell value.
func Float(f float64) CellValue { return CellValue{kind: KindFloat, float: f} }

// Blob returns a binary cell value. The slice is copied.
func Blob(b []byte) CellValue {
	return CellValue{kind: KindBlob, blob: append([]byte(nil), b...)}
}

// Structured wraps an arbitrary host value.
func Structured(v interface{}) CellValue {
	return CellValue{kind: KindStructured, structured: v}
}

// FromInterface maps a dynamic Go value onto the matching variant.
func FromInterface(v interface{}) CellValue {
	switch x := v.(type) {
	case nil:
		return Null()
	case CellValue:
		return x
	case string:
		return Text(x)
	case []byte:
		return Blob(x)
	case int:
		return Integer(int64(x))
	case int8:
		return Integer(int64(x))
	case int16:
		return Integer(int64(x))
	case int32:
		return Integer(int64(x))
	case int64:
		return Integer(x)
	case uint8:
		return Integer(int64(x))
	case uint16:
		return Integer(int64(x))
	case uint32:
		return Integer(int64(x))
	case uint:
		if uint64(x) <= math.MaxInt64 {
			return Integer(int64(x))
		}
		return Structured(x)
	case uint64:
		if x <= math.MaxInt64 {
			return Integer(int64(x))
		}
		return Structured(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	default:
		return Structured(x)
	}
}

// Kind reports the variant held by v.
func (v CellValue) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null variant.
func (v CellValue) IsNull() bool { return v.kind == KindNull }

// AsText returns the text and true only for the Text variant.
func (v CellValue) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// AsInteger returns the integer and true only for the Integer variant.
func (v CellValue) AsInteger() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.integer, true
}

// AsFloat returns the float and true only for the Float variant.
func (v CellValue) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.float, true
}

// String returns the plain-text display form used by default rendering.
func (v CellValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindBlob:
		return fmt.Sprintf("<Binary: %d bytes>", len(v.blob))
	case KindStructured:
		return fmt.Sprint(v.structured)
	default:
		return ""
	}
}
