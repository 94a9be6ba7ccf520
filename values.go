package tmpl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

//operand is a decoded conditional operand. eval reports the value and
//whether it is defined; only a deferred path lookup can come back undefined.
type operand interface {
	fmt.Stringer
	eval(*scope) (interface{}, bool)
}

// *******************
// * Operand Decoder *
// *******************

//decodeOperand turns the literal operand of a condition into its value.
//Order matters: keywords, then quotes, then numerals, then the path
//fallback, so '5' stays the string "5" while a bare 5 is the number 5.
func decodeOperand(tok string) operand {
	switch tok {
	case "null":
		return nullOperand{}
	case "undefined":
		return undefinedOperand{}
	case "true":
		return boolOperand(true)
	case "false":
		return boolOperand(false)
	}
	if quoted(tok) {
		return stringOperand(tok[1 : len(tok)-1])
	}
	if f, ok := parseNumeric(tok); ok {
		return numberOperand(f)
	}
	return pathOperand(tok)
}

func quoted(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	switch tok[0] {
	case '\'', '"', '`':
		return tok[len(tok)-1] == tok[0]
	}
	return false
}

//parseNumeric pins the numeric operand grammar: decimal digits with optional
//sign, fraction, and exponent. The hex, Inf, NaN, and underscore forms that
//ParseFloat would take are not numerals here.
func parseNumeric(tok string) (float64, bool) {
	if tok == "" || strings.ContainsFunc(tok, func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
			return false
		case r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-':
			return false
		}
		return true
	}) {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

type nullOperand struct{}

func (nullOperand) eval(*scope) (interface{}, bool) { return nil, true }
func (nullOperand) String() string                  { return "[null]" }

type undefinedOperand struct{}

func (undefinedOperand) eval(*scope) (interface{}, bool) { return nil, false }
func (undefinedOperand) String() string                  { return "[undefined]" }

type boolOperand bool

func (b boolOperand) eval(*scope) (interface{}, bool) { return bool(b), true }
func (b boolOperand) String() string                  { return fmt.Sprintf("[bool %v]", bool(b)) }

type numberOperand float64

func (n numberOperand) eval(*scope) (interface{}, bool) { return float64(n), true }
func (n numberOperand) String() string                  { return fmt.Sprintf("[number %v]", float64(n)) }

type stringOperand string

func (s stringOperand) eval(*scope) (interface{}, bool) { return string(s), true }
func (s stringOperand) String() string                  { return fmt.Sprintf("[string %q]", string(s)) }

//pathOperand defers resolution until render time.
type pathOperand string

func (p pathOperand) eval(c *scope) (interface{}, bool) { return resolve(c, string(p)) }
func (p pathOperand) String() string                    { return fmt.Sprintf("[path %s]", string(p)) }

// ***************
// * Comparisons *
// ***************

type compareFunc func(l interface{}, lok bool, r interface{}, rok bool) bool

var compareFuncs = map[string]compareFunc{
	"===": strictEqual,
	"==":  strictEqual,
	"!==": strictNotEqual,
	"!=":  strictNotEqual,
	"<": func(l interface{}, lok bool, r interface{}, rok bool) bool {
		n, ok := orderCompare(l, lok, r, rok)
		return ok && n < 0
	},
	">": func(l interface{}, lok bool, r interface{}, rok bool) bool {
		n, ok := orderCompare(l, lok, r, rok)
		return ok && n > 0
	},
	"<=": func(l interface{}, lok bool, r interface{}, rok bool) bool {
		n, ok := orderCompare(l, lok, r, rok)
		return ok && n <= 0
	},
	">=": func(l interface{}, lok bool, r interface{}, rok bool) bool {
		n, ok := orderCompare(l, lok, r, rok)
		return ok && n >= 0
	},
}

//strictEqual matches values the way === does: undefined only equals
//undefined, null only null, and mixed types never match. Numbers of any
//width compare by value.
func strictEqual(l interface{}, lok bool, r interface{}, rok bool) bool {
	if !lok || !rok {
		return lok == rok
	}
	if l == nil || r == nil {
		return l == nil && r == nil
	}
	lv, rv := reflect.ValueOf(l), reflect.ValueOf(r)
	switch {
	case numberKind(lv.Kind()) && numberKind(rv.Kind()):
		lf, le := cast.ToFloat64E(l)
		rf, re := cast.ToFloat64E(r)
		return le == nil && re == nil && lf == rf
	case lv.Kind() == reflect.String && rv.Kind() == reflect.String:
		return lv.String() == rv.String()
	case lv.Kind() == reflect.Bool && rv.Kind() == reflect.Bool:
		return lv.Bool() == rv.Bool()
	case lv.Type() == rv.Type():
		return reflect.DeepEqual(l, r)
	}
	return false
}

func strictNotEqual(l interface{}, lok bool, r interface{}, rok bool) bool {
	return !strictEqual(l, lok, r, rok)
}

//orderCompare supports the relational operators: two strings compare
//lexicographically, everything else is coerced to float64. An undefined side
//or a failed coercion makes the comparison false.
func orderCompare(l interface{}, lok bool, r interface{}, rok bool) (int, bool) {
	if !lok || !rok {
		return 0, false
	}
	if ls, lIsStr := l.(string); lIsStr {
		if rs, rIsStr := r.(string); rIsStr {
			return strings.Compare(ls, rs), true
		}
	}
	lf, le := cast.ToFloat64E(l)
	rf, re := cast.ToFloat64E(r)
	if le != nil || re != nil {
		return 0, false
	}
	switch {
	case lf < rf:
		return -1, true
	case lf > rf:
		return 1, true
	}
	return 0, true
}

func numberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
