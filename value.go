package main

import "strconv"

// dataType describes the shape of a stack slot; it is all the compiler
// knows or needs to know about a value.
type dataType int

const (
	dataInt dataType = iota
	dataBool
)

func (dt dataType) String() string {
	switch dt {
	case dataInt:
		return "Int"
	case dataBool:
		return "Bool"
	default:
		return "invalid dataType " + strconv.Itoa(int(dt))
	}
}

// value is a runtime datum: an int64 or a bool, discriminated by typ.
// Values are small and copied freely; access must switch on typ, never
// assume one variant while holding the other.
type value struct {
	typ dataType
	n   int64
	b   bool
}

func intValue(n int64) value { return value{typ: dataInt, n: n} }
func boolValue(b bool) value { return value{typ: dataBool, b: b} }

func (v value) String() string {
	switch v.typ {
	case dataInt:
		return strconv.FormatInt(v.n, 10)
	case dataBool:
		return strconv.FormatBool(v.b)
	default:
		return "invalid value"
	}
}
