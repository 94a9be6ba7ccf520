package tmpl

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

//bracketed index keys are rewritten into dot form before splitting, so
//a['b'] and a[0] become a.b and a.0
var bracketKey = regexp.MustCompile(`\[(?:(\d+)|'([^']*)'|"([^"]*)")\]`)

//splitPath breaks a path expression into its property keys. A leading dot
//yields an empty first key.
func splitPath(path string) []string {
	return strings.Split(bracketKey.ReplaceAllString(path, ".$1$2$3"), ".")
}

//resolve walks a path through the scope one key at a time. The second return
//reports whether the path was present at all: a missing key gives (nil,
//false), a present-but-nil value gives (nil, true).
func resolve(c *scope, path string) (interface{}, bool) {
	keys := splitPath(path)
	v, ok := c.lookup(keys[0])
	for _, key := range keys[1:] {
		if !ok {
			return nil, false
		}
		v, ok = access(v, key)
	}
	return v, ok
}

//access reads a single key out of a value. Maps are indexed by key,
//slices and arrays by numeric index (with a virtual length key), structs by
//exported field name. Anything else does not own keys.
func access(v interface{}, key string) (interface{}, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		return accessMap(rv, key)
	case reflect.Slice, reflect.Array:
		if key == "length" {
			return rv.Len(), true
		}
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n >= rv.Len() {
			return nil, false
		}
		return rv.Index(n).Interface(), true
	case reflect.String:
		if key == "length" {
			return rv.Len(), true
		}
		return nil, false
	case reflect.Struct:
		f := rv.FieldByName(key)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

func accessMap(rv reflect.Value, key string) (interface{}, bool) {
	var kv reflect.Value
	switch kt := rv.Type().Key(); kt.Kind() {
	case reflect.String:
		kv = reflect.ValueOf(key).Convert(kt)
	case reflect.Interface:
		kv = reflect.ValueOf(key)
	default:
		return nil, false
	}

	mv := rv.MapIndex(kv)
	if !mv.IsValid() && rv.Type().Key().Kind() == reflect.Interface {
		//decoders like yaml.v2 key nested maps by interface{}; retry
		//numeric-looking keys as ints
		if n, err := strconv.Atoi(key); err == nil {
			mv = rv.MapIndex(reflect.ValueOf(n))
		}
	}
	if !mv.IsValid() {
		return nil, false
	}
	return mv.Interface(), true
}

//indirect chases pointers and interfaces down to the value they carry. A nil
//along the way gives the zero Value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
