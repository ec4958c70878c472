package token

import (
	"math"
	"strconv"
)

// ValueKind tags the payload stored in Value.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueString
	ValueInt
	ValueFloat
	ValueBool
	ValueChar
	ValuePrimitive
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueChar:
		return "char"
	case ValuePrimitive:
		return "primitive"
	default:
		return "none"
	}
}

// PrimitiveType names a built-in type family.
type PrimitiveType uint8

const (
	PrimNone PrimitiveType = iota
	PrimString
	PrimBoolean
	PrimUnsignedInteger
	PrimSignedInteger
	PrimFloat
)

func (p PrimitiveType) String() string {
	switch p {
	case PrimString:
		return "str"
	case PrimBoolean:
		return "bool"
	case PrimUnsignedInteger:
		return "uint"
	case PrimSignedInteger:
		return "int"
	case PrimFloat:
		return "float"
	default:
		return "none"
	}
}

// Value is the literal payload of a token. Only the field selected by Kind is meaningful.
// Bits holds integers, float bits, booleans, runes and primitive tags.
type Value struct {
	Kind ValueKind
	Str  string
	Bits uint64
}

func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

func IntValue(v uint64) Value { return Value{Kind: ValueInt, Bits: v} }

func FloatValue(f float64) Value { return Value{Kind: ValueFloat, Bits: math.Float64bits(f)} }

func BoolValue(b bool) Value {
	v := Value{Kind: ValueBool}
	if b {
		v.Bits = 1
	}
	return v
}

func CharValue(r rune) Value { return Value{Kind: ValueChar, Bits: uint64(r)} } // #nosec G115 -- runes are non-negative here

func PrimitiveValue(p PrimitiveType) Value { return Value{Kind: ValuePrimitive, Bits: uint64(p)} }

// IsNone reports whether the token carries no payload.
func (v Value) IsNone() bool { return v.Kind == ValueNone }

func (v Value) AsString() (string, bool) { return v.Str, v.Kind == ValueString }

func (v Value) AsInt() (uint64, bool) { return v.Bits, v.Kind == ValueInt }

func (v Value) AsFloat() (float64, bool) {
	return math.Float64frombits(v.Bits), v.Kind == ValueFloat
}

func (v Value) AsBool() (b, ok bool) { return v.Bits != 0, v.Kind == ValueBool }

func (v Value) AsChar() (rune, bool) { return rune(v.Bits), v.Kind == ValueChar } // #nosec G115

func (v Value) AsPrimitive() (PrimitiveType, bool) {
	return PrimitiveType(v.Bits), v.Kind == ValuePrimitive // #nosec G115
}

// String renders the payload the way the token dump prints it.
func (v Value) String() string {
	switch v.Kind {
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueInt:
		return strconv.FormatUint(v.Bits, 10)
	case ValueFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case ValueBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case ValueChar:
		r, _ := v.AsChar()
		return strconv.QuoteRune(r)
	case ValuePrimitive:
		p, _ := v.AsPrimitive()
		return p.String()
	default:
		return ""
	}
}
