package tmpl

import (
	"strings"
	"unicode"
)

//kinds that may open a branch; the set is closed
const (
	kindIf   = "if"
	kindEach = "each"
)

//openBranch is one entry of the builder's stack: the kind that opened it and
//the child list new branches append to.
type openBranch struct {
	kind string
	body *executeList
}

//parse assembles the marker stream into a tree. The stack replaces the usual
//mutable current-branch pointer: push on open, pop on close. A template that
//runs out of tokens with branches still open is returned anyway, with the
//open kind reported, so that rendering it can fail.
func parse(toks chan token) (root *executeList, open string, err error) {
	root = &executeList{}
	stack := []*openBranch{{body: root}}

	for tok := range toks {
		if err != nil {
			continue //drain the lexer after a failure
		}
		switch tok.typ {
		case tokenLiteral:
			stack[len(stack)-1].body.Push(executeText(tok.dat))
		case tokenMarker:
			stack, err = parseMarker(stack, tok.dat)
		case tokenEOF:
		}
	}
	if err != nil {
		return nil, "", err
	}

	if len(stack) > 1 {
		open = stack[len(stack)-1].kind
	}
	return root, open, nil
}

func parseMarker(stack []*openBranch, dat []byte) ([]*openBranch, error) {
	//an escaped marker is literal text with the backslash stripped
	if dat[0] == escapeChar {
		stack[len(stack)-1].body.Push(executeText(dat[1:]))
		return stack, nil
	}

	//strip ${# and }
	body := strings.TrimSpace(string(dat[len(markerOpen) : len(dat)-1]))
	kind, spec := splitToken(body)

	switch kind {
	case kindIf:
		e, err := parseCondition(body, spec)
		if err != nil {
			return stack, err
		}
		stack[len(stack)-1].body.Push(e)
		return append(stack, &openBranch{kind: kindIf, body: &e.body}), nil

	case kindEach:
		e, err := parseIteration(body, spec)
		if err != nil {
			return stack, err
		}
		stack[len(stack)-1].body.Push(e)
		return append(stack, &openBranch{kind: kindEach, body: &e.body}), nil

	case "end":
		endKind, extra := splitToken(spec)
		if endKind == "" || extra != "" {
			return stack, &SyntaxError{Marker: string(dat), Reason: "end needs exactly one kind"}
		}
		cur := stack[len(stack)-1]
		if cur.kind != endKind {
			return stack, &MismatchedCloseError{Got: endKind, Want: cur.kind}
		}
		return stack[:len(stack)-1], nil
	}

	return stack, &UnknownKindError{Kind: kind}
}

//parseCondition reads "[!]path [op operand]" out of an if marker.
func parseCondition(body, spec string) (*executeIf, error) {
	e := &executeIf{}

	if strings.HasPrefix(spec, "!") {
		e.negate = true
		spec = strings.TrimSpace(spec[1:])
	}

	e.path, spec = splitToken(spec)
	if e.path == "" {
		return nil, &SyntaxError{Marker: body, Reason: "if needs a path"}
	}
	if spec == "" {
		return e, nil
	}

	e.op, spec = splitToken(spec)
	if _, ok := compareFuncs[e.op]; !ok {
		return nil, &SyntaxError{Marker: body, Reason: "unsupported operator " + e.op}
	}
	if spec == "" {
		return nil, &SyntaxError{Marker: body, Reason: "operator " + e.op + " needs an operand"}
	}
	e.operand = decodeOperand(spec)
	return e, nil
}

//parseIteration reads "path as [key to] value" out of an each marker.
func parseIteration(body, spec string) (*executeEach, error) {
	e := &executeEach{}

	var as string
	e.path, spec = splitToken(spec)
	as, spec = splitToken(spec)
	if e.path == "" || as != "as" || spec == "" {
		return nil, &SyntaxError{Marker: body, Reason: "each needs 'path as value'"}
	}

	first, rest := splitToken(spec)
	if rest == "" {
		e.val = first
		return e, nil
	}

	to, val := splitToken(rest)
	more := ""
	if to == "to" {
		e.key = first
		e.val, more = splitToken(val)
	}
	if to != "to" || e.val == "" || more != "" {
		return nil, &SyntaxError{Marker: body, Reason: "each bindings are 'value' or 'key to value'"}
	}
	return e, nil
}

//splitToken peels the first whitespace delimited token off s and returns it
//with the trimmed remainder.
func splitToken(s string) (tok, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
