package tmpl

import (
	"io"
	"testing"
)

var benchSource = `
	<ul>
	${#if items.length}
	${#each items as i to item}
		<li id="item-${i}">${item.name}: ${item.count}</li>
	${#end each}
	${#end if}
	</ul>
	${#if user.admin}${user.name} can edit${#end if}
	\${literal} stays put
`

var benchContext = d{
	"user": d{"name": "zeebo", "admin": true},
	"items": []interface{}{
		d{"name": "one", "count": 1},
		d{"name": "two", "count": 2},
		d{"name": "three", "count": 3},
	},
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Compile(benchSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExecute(b *testing.B) {
	tpl := Must(Compile(benchSource))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tpl.Execute(io.Discard, benchContext); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	sc := newScope(d{"foo": d{"bar": d{"baz": "baz"}}})
	for i := 0; i < b.N; i++ {
		resolve(sc, "foo.bar.baz")
	}
}

func BenchmarkSubstitute(b *testing.B) {
	sc := newScope(d{"a": "x", "b": 2})
	text := []byte(`one ${a} two ${b} three ${missing}`)
	for i := 0; i < b.N; i++ {
		substitute(text, sc)
	}
}
