package config

import "fmt"

// FieldType is the numeric kind a field is coerced to during validation.
type FieldType int

const (
	Integer FieldType = iota
	Float
)

func (t FieldType) String() string {
	if t == Integer {
		return "integer"
	}
	return "float"
}

// Field names one of the six required scalars.
type Field struct {
	Name string
	Type FieldType
}

// Fields lists the required fields in evaluator argument order.
var Fields = []Field{
	{Name: "n0", Type: Integer},
	{Name: "h", Type: Integer},
	{Name: "nk", Type: Integer},
	{Name: "a", Type: Float},
	{Name: "b", Type: Float},
	{Name: "c", Type: Float},
}

// RawFieldMap is the untyped output of a decoder, keyed by field name. Values
// may be strings, integers, floats, json.Number or cty.Value depending on the
// source format.
type RawFieldMap map[string]any

// Record is the validated configuration. It is immutable once constructed.
type Record struct {
	n0, h, nk int
	a, b, c   float64
}

// NewRecord builds a Record. No relation between n0, h and nk is enforced.
func NewRecord(n0, h, nk int, a, b, c float64) Record {
	return Record{n0: n0, h: h, nk: nk, a: a, b: b, c: c}
}

func (r Record) N0() int { return r.n0 }
func (r Record) H() int { return r.h }
func (r Record) NK() int { return r.nk }
func (r Record) A() float64 { return r.a }
func (r Record) B() float64 { return r.b }
func (r Record) C() float64 { return r.c }

// Args returns the fields in the order the evaluator expects them:
// n0, h, nk, a, b, c.
func (r Record) Args() (int, int, int, float64, float64, float64) {
	return r.n0, r.h, r.nk, r.a, r.b, r.c
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return fmt.Sprintf("Record(n0=%d, h=%d, nk=%d, a=%g, b=%g, c=%g)", r.n0, r.h, r.nk, r.a, r.b, r.c)
}
