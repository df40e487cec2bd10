package docstore

import "math"

// Op is a condition operator.
type Op int

const (
	// OpEq matches string fields equal to the value.
	OpEq Op = iota
	// OpGte matches numeric fields >= the value.
	OpGte
	// OpLte matches numeric fields <= the value.
	OpLte
	// OpAnyOf matches fields holding at least one of the given strings,
	// either as an array element or as the scalar value itself.
	OpAnyOf
)

// Condition is one predicate on a top-level document field.
type Condition struct {
	Field  string
	Op     Op
	Text   string
	Number float64
	Set    []string
}

func Eq(field, value string) Condition {
	return Condition{Field: field, Op: OpEq, Text: value}
}

func Gte(field string, value float64) Condition {
	return Condition{Field: field, Op: OpGte, Number: value}
}

func Lte(field string, value float64) Condition {
	return Condition{Field: field, Op: OpLte, Number: value}
}

func AnyOf(field string, values ...string) Condition {
	return Condition{Field: field, Op: OpAnyOf, Set: values}
}

// Filter is a conjunction of conditions. The zero Filter matches everything.
type Filter struct {
	Conditions []Condition
}

// Where builds a filter from conditions.
func Where(conds ...Condition) Filter {
	return Filter{Conditions: conds}
}

// Match evaluates f against doc.
func (f Filter) Match(doc Document) bool {
	for _, c := range f.Conditions {
		if !c.match(doc) {
			return false
		}
	}
	return true
}

func (c Condition) match(doc Document) bool {
	switch c.Op {
	case OpEq:
		s, ok := doc.String(c.Field)
		return ok && s == c.Text
	case OpGte:
		n, ok := doc.Float(c.Field)
		return ok && n >= c.Number
	case OpLte:
		n, ok := doc.Float(c.Field)
		return ok && n <= c.Number
	case OpAnyOf:
		for _, have := range doc.Strings(c.Field) {
			for _, want := range c.Set {
				if have == want {
					return true
				}
			}
		}
		return false
	}
	return false
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
