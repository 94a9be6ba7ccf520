package tmpl

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

type executer interface {
	fmt.Stringer
	Execute(io.Writer, *scope) error
}

// ****************
// * Execute List *
// ****************

//executeList is the container variant: it renders its children in order and
//concatenates. The root of every compiled tree is one of these, as is the
//body of every if and each branch.
type executeList []executer

func (e executeList) Execute(w io.Writer, c *scope) (err error) {
	for _, ex := range e {
		if ex == nil {
			return fmt.Errorf("unexpected nil in execute list")
		}
		err = ex.Execute(w, c)
		if err != nil {
			return
		}
	}
	return
}

func (e executeList) String() string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "[list")
	for _, ex := range e {
		if ex != nil {
			fmt.Fprintf(&buf, "\t%s\n", strings.Replace(ex.String(), "\n", "\n\t", -1))
		} else {
			fmt.Fprint(&buf, "\tnil\n")
		}
	}
	fmt.Fprint(&buf, "]")
	return buf.String()
}

func (e *executeList) Push(ex executer) {
	*e = append(*e, ex)
}

// ****************
// * Execute Text *
// ****************

//executeText is a literal segment. Placeholders inside it are substituted
//at render time.
type executeText []byte

func (e executeText) Execute(w io.Writer, c *scope) (err error) {
	_, err = w.Write(substitute(e, c))
	return
}

func (e executeText) String() string {
	return fmt.Sprintf("[text %q]", string(e))
}

// **************
// * Execute If *
// **************

type executeIf struct {
	negate  bool
	path    string
	op      string //empty means a bare truthiness test
	operand operand
	body    executeList
}

func (e *executeIf) Execute(w io.Writer, c *scope) (err error) {
	v, ok := resolve(c, e.path)
	if e.negate {
		v, ok = !truthy(v, ok), true
	}

	var cond bool
	if e.op == "" {
		cond = truthy(v, ok)
	} else {
		rv, rok := e.operand.eval(c)
		cond = compareFuncs[e.op](v, ok, rv, rok)
	}

	if !cond {
		return nil
	}
	return e.body.Execute(w, c)
}

func (e *executeIf) String() string {
	neg := ""
	if e.negate {
		neg = "!"
	}
	if e.op == "" {
		return fmt.Sprintf("[if %s%s] %s", neg, e.path, e.body)
	}
	return fmt.Sprintf("[if %s%s %s %s] %s", neg, e.path, e.op, e.operand, e.body)
}

// ****************
// * Execute Each *
// ****************

type executeEach struct {
	path string
	key  string //optional binding for the pair key
	val  string
	body executeList
}

func (e *executeEach) Execute(w io.Writer, c *scope) (err error) {
	it, ok := resolve(c, e.path)
	if !ok {
		return nil
	}

	rv := indirect(reflect.ValueOf(it))
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return e.rangeSlice(w, c, rv)
	case reflect.String:
		return e.rangeString(w, c, rv.String())
	case reflect.Map:
		return e.rangeMap(w, c, rv)
	case reflect.Struct:
		return e.rangeStruct(w, c, rv)
	}
	//scalars have nothing to iterate
	return nil
}

//iterate renders the body once against a derived scope with the value (and
//optionally the key) bound.
func (e *executeEach) iterate(w io.Writer, c *scope, key, val interface{}) error {
	cc := c.child()
	cc.bind(e.val, val)
	if e.key != "" {
		cc.bind(e.key, key)
	}
	return e.body.Execute(w, cc)
}

func (e *executeEach) rangeSlice(w io.Writer, c *scope, v reflect.Value) (err error) {
	for i := 0; i < v.Len(); i++ {
		if err = e.iterate(w, c, i, v.Index(i).Interface()); err != nil {
			return
		}
	}
	return
}

//strings are array-like: one iteration per rune, keyed 0..n-1
func (e *executeEach) rangeString(w io.Writer, c *scope, s string) (err error) {
	i := 0
	for _, r := range s {
		if err = e.iterate(w, c, i, string(r)); err != nil {
			return
		}
		i++
	}
	return
}

func (e *executeEach) rangeMap(w io.Writer, c *scope, v reflect.Value) (err error) {
	//map order is not defined; sort by the key's string form so output is
	//reproducible
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	for _, key := range keys {
		if err = e.iterate(w, c, key.Interface(), v.MapIndex(key).Interface()); err != nil {
			return
		}
	}
	return
}

func (e *executeEach) rangeStruct(w io.Writer, c *scope, v reflect.Value) (err error) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if err = e.iterate(w, c, t.Field(i).Name, v.Field(i).Interface()); err != nil {
			return
		}
	}
	return
}

func (e *executeEach) String() string {
	if e.key != "" {
		return fmt.Sprintf("[each %s as %s to %s] %s", e.path, e.key, e.val, e.body)
	}
	return fmt.Sprintf("[each %s as %s] %s", e.path, e.val, e.body)
}

// ************
// * Truthiness *
// ************

//truthy reports whether the value is 'true', in the sense of not the zero of
//its type. An undefined value is never truthy.
func truthy(i interface{}, ok bool) (truth bool) {
	if !ok {
		return false
	}
	val := reflect.ValueOf(i)
	if !val.IsValid() {
		// Something like var x interface{}, never set. It's a form of nil.
		return false
	}
	switch val.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		truth = val.Len() > 0
	case reflect.Bool:
		truth = val.Bool()
	case reflect.Complex64, reflect.Complex128:
		truth = val.Complex() != 0
	case reflect.Chan, reflect.Func, reflect.Ptr, reflect.Interface:
		truth = !val.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		truth = val.Int() != 0
	case reflect.Float32, reflect.Float64:
		truth = val.Float() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		truth = val.Uint() != 0
	case reflect.Struct:
		truth = true // Struct values are always true.
	}
	return
}
