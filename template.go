package tmpl

import (
	"bytes"
	"io"
)

//Template is a compiled template. It is immutable once Compile returns and
//safe to render concurrently: rendering never writes to the tree, and every
//iteration derives its own scope copy.
type Template struct {
	root *executeList
	open string //still-open branch kind, "" when well formed
}

//Compile tokenizes and assembles the template source. Unknown branch kinds,
//mismatched closes, and malformed marker bodies fail here. A source with an
//unclosed branch still compiles; rendering it returns UnclosedBranchError.
func Compile(source string) (*Template, error) {
	root, open, err := parse(lex([]byte(source)))
	if err != nil {
		return nil, err
	}
	return &Template{root: root, open: open}, nil
}

//Must panics on a compile error. For templates known at program start.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

//Execute renders the tree against data, writing the output to w.
func (t *Template) Execute(w io.Writer, data interface{}) error {
	if t.open != "" {
		return &UnclosedBranchError{Kind: t.open}
	}
	return t.root.Execute(w, newScope(data))
}

//Render renders the tree against data and returns the whole output.
func (t *Template) Render(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (t *Template) String() string {
	return t.root.String()
}
