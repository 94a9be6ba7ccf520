package tmpl

import (
	"bytes"
	"reflect"
	"regexp"

	"github.com/spf13/cast"
)

//the pattern grabs one optional byte of context before the placeholder so a
//leading backslash can be seen; the inner path never starts with # (that is
//marker syntax) and never contains a closing brace
var placeholderPattern = regexp.MustCompile(`([\s\S]?)\$\{([^#}][^}]*)\}`)

//substitute replaces every ${path} in text with the value resolved against
//the scope. A backslash prefix suppresses substitution and is dropped; a
//path that resolves to anything but a string or number leaves the
//placeholder verbatim. One left-to-right pass, computed over match spans.
func substitute(text []byte, c *scope) []byte {
	ms := placeholderPattern.FindAllSubmatchIndex(text, -1)
	if ms == nil {
		return text
	}

	var buf bytes.Buffer
	last := 0
	for _, m := range ms {
		buf.Write(text[last:m[0]])
		last = m[1]

		prefix := text[m[2]:m[3]]
		if len(prefix) == 1 && prefix[0] == escapeChar {
			//escaped: emit ${path} without the backslash
			buf.Write(text[m[3]:m[1]])
			continue
		}
		buf.Write(prefix)

		v, ok := resolve(c, string(text[m[4]:m[5]]))
		if s, spliced := splice(v); ok && spliced {
			buf.WriteString(s)
		} else {
			buf.Write(text[m[3]:m[1]])
		}
	}
	buf.Write(text[last:])
	return buf.Bytes()
}

//only strings and numbers are spliced into literal text
func splice(v interface{}) (string, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "", false
	}
	if rv.Kind() == reflect.String || numberKind(rv.Kind()) {
		return cast.ToString(rv.Interface()), true
	}
	return "", false
}
