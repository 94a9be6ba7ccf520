package tmpl

import (
	"testing"
)

func TestDecodeOperand(t *testing.T) {
	sc := newScope(d{"foo": d{"bar": 9}})

	cases := []struct {
		tok    string
		expect interface{}
		ok     bool
	}{
		{`null`, nil, true},
		{`undefined`, nil, false},
		{`true`, true, true},
		{`false`, false, true},

		{`'hi'`, "hi", true},
		{`"hi"`, "hi", true},
		{"`hi`", "hi", true},
		{`'a b c'`, "a b c", true},
		{`''`, "", true},
		//quotes win over numerals: '5' is the string "5"
		{`'5'`, "5", true},
		{`"1.5"`, "1.5", true},

		{`5`, float64(5), true},
		{`-3`, float64(-3), true},
		{`+2`, float64(2), true},
		{`1.25`, float64(1.25), true},
		{`1e3`, float64(1000), true},
		{`2E-2`, float64(0.02), true},

		//deferred paths resolve at eval time
		{`foo.bar`, 9, true},
		{`foo.baz`, nil, false},
	}
	for id, c := range cases {
		v, ok := decodeOperand(c.tok).eval(sc)
		if ok != c.ok || v != c.expect {
			t.Errorf("%d: decode(%q) = (%v, %v), expected (%v, %v)",
				id, c.tok, v, ok, c.expect, c.ok)
		}
	}
}

func TestDecodeOperandPathFallbacks(t *testing.T) {
	//tokens that look nearly numeric still fall back to paths
	for _, tok := range []string{`0x10`, `Inf`, `NaN`, `1_000`, `12abc`, `'open`, `e5`} {
		if _, ok := decodeOperand(tok).(pathOperand); !ok {
			t.Errorf("decode(%q) should be a deferred path, got %s", tok, decodeOperand(tok))
		}
	}
}

func TestParseNumeric(t *testing.T) {
	pass := map[string]float64{
		`0`: 0, `7`: 7, `-7`: -7, `+7`: 7,
		`1.5`: 1.5, `.5`: 0.5, `5.`: 5,
		`1e2`: 100, `1.5e-1`: 0.15, `2E3`: 2000,
	}
	for tok, expect := range pass {
		f, ok := parseNumeric(tok)
		if !ok || f != expect {
			t.Errorf("parseNumeric(%q) = (%v, %v), expected (%v, true)", tok, f, ok, expect)
		}
	}

	fail := []string{``, ` 5`, `5 `, `0x10`, `Inf`, `-Inf`, `NaN`, `1_000`, `12abc`, `.`, `-`, `e5`, `--5`}
	for _, tok := range fail {
		if _, ok := parseNumeric(tok); ok {
			t.Errorf("parseNumeric(%q) should not parse", tok)
		}
	}
}

func TestStrictEqual(t *testing.T) {
	cases := []struct {
		l      interface{}
		lok    bool
		r      interface{}
		rok    bool
		expect bool
	}{
		{5, true, float64(5), true, true}, //numeric widths don't matter
		{5, true, "5", true, false},       //types do
		{"a", true, "a", true, true},
		{true, true, true, true, true},
		{true, true, 1, true, false},
		{nil, true, nil, true, true},   //null === null
		{nil, false, nil, false, true}, //undefined === undefined
		{nil, true, nil, false, false}, //null !== undefined
		{[]int{1}, true, []int{1}, true, true},
	}
	for id, c := range cases {
		if got := strictEqual(c.l, c.lok, c.r, c.rok); got != c.expect {
			t.Errorf("%d: strictEqual(%v, %v) = %v, expected %v", id, c.l, c.r, got, c.expect)
		}
	}
}

func TestOrderCompare(t *testing.T) {
	if n, ok := orderCompare(3, true, float64(5), true); !ok || n >= 0 {
		t.Errorf("3 < 5 failed: (%d, %v)", n, ok)
	}
	if n, ok := orderCompare("b", true, "a", true); !ok || n <= 0 {
		t.Errorf("\"b\" > \"a\" failed: (%d, %v)", n, ok)
	}
	if _, ok := orderCompare(nil, false, 5, true); ok {
		t.Error("undefined should not order")
	}
	if _, ok := orderCompare([]int{1}, true, 5, true); ok {
		t.Error("a slice should not order")
	}
}
