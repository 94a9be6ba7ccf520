package tmpl

import (
	"bytes"
	"fmt"
)

type tokenType int

const (
	tokenLiteral tokenType = iota // raw text between markers
	tokenMarker                   // ${#...} incl. a leading escape backslash
	tokenEOF                      // sent when no data is left
)

func (t tokenType) String() string {
	switch t {
	case tokenLiteral:
		return "literal"
	case tokenMarker:
		return "marker"
	case tokenEOF:
		return "eof"
	}
	return "unknown"
}

var (
	markerOpen = []byte(`${#`)
)

const (
	markerClose = byte('}')
	escapeChar  = byte('\\')
)

type token struct {
	typ tokenType
	dat []byte
}

func (t token) String() string {
	return fmt.Sprintf("[%s %q]", t.typ, string(t.dat))
}

type lexer struct {
	data []byte
	pos  int
	tail int
	pipe chan token
}

type lexerState func(l *lexer) lexerState

//lex splits the template source into alternating literal and marker
//fragments, in document order. Concatenating every emitted fragment
//reconstructs the source exactly.
func lex(data []byte) chan token {
	l := &lexer{
		data: data,
		pipe: make(chan token),
	}
	go l.run()
	return l.pipe
}

func (l *lexer) run() {
	for state := lexText; state != nil; {
		state = state(l)
	}
	close(l.pipe)
}

func (l *lexer) emit(typ tokenType) {
	l.pipe <- token{
		typ: typ,
		dat: l.data[l.tail:l.pos],
	}
	l.tail = l.pos
}

func lexText(l *lexer) lexerState {
	for l.pos < len(l.data) {
		if bytes.HasPrefix(l.data[l.pos:], markerOpen) {
			//a backslash directly before the marker belongs to it
			start := l.pos
			if start > l.tail && l.data[start-1] == escapeChar {
				start--
			}
			if start > l.tail {
				save := l.pos
				l.pos = start
				l.emit(tokenLiteral)
				l.pos = save
			}
			return lexMarker
		}
		l.pos++
	}
	//correctly reached an eof
	if l.pos > l.tail {
		l.emit(tokenLiteral)
	}
	l.emit(tokenEOF)
	return nil
}

func lexMarker(l *lexer) lexerState {
	//tail sits at the marker start (possibly a backslash); scan for the
	//closing brace
	end := bytes.IndexByte(l.data[l.pos:], markerClose)
	if end < 0 {
		//an unterminated marker is no marker at all: the remainder is
		//one trailing literal
		l.pos = len(l.data)
		l.emit(tokenLiteral)
		l.emit(tokenEOF)
		return nil
	}
	l.pos += end + 1
	l.emit(tokenMarker)
	return lexText
}
