package tmpl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileExpectedFailures(t *testing.T) {
	cases := []string{
		`${#for x}loop${#end for}`,
		`${#unless x}${#end unless}`,
		`${#}`,
		`${#if}`,
		`${#if }`,
		`${#if x ~ 5}${#end if}`,
		`${#if x >}${#end if}`,
		`${#if x > }${#end if}`,
		`${#each xs}${#end each}`,
		`${#each xs as}${#end each}`,
		`${#each xs as a b}${#end each}`,
		`${#each xs as k to}${#end each}`,
		`${#each xs as k to v w}${#end each}`,
		`${#end}`,
		`${#end if}`,
		`${#end each}`,
		`${#if x}${#end each}`,
		`${#each xs as x}${#end if}`,
		`${#if x}${#if y}${#end if}${#end each}`,
		`${#if x}${#end if}${#end if}`,
	}
	for _, src := range cases {
		_, err := Compile(src)
		assert.Error(t, err, "should not compile: %s", src)
	}
}

func TestCompileErrorKinds(t *testing.T) {
	_, err := Compile(`${#loop xs}${#end loop}`)
	var unknown *UnknownKindError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "loop", unknown.Kind)

	_, err = Compile(`${#if x}${#end each}`)
	var mismatched *MismatchedCloseError
	require.ErrorAs(t, err, &mismatched)
	assert.Equal(t, "each", mismatched.Got)
	assert.Equal(t, "if", mismatched.Want)

	_, err = Compile(`${#if x ~ 5}${#end if}`)
	var syntax *SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Contains(t, syntax.Reason, "~")
}

func TestCompileExpectedPasses(t *testing.T) {
	cases := []string{
		`just text`,
		`${#if x}${#end if}`,
		`${#if  x }${#end  if }`,
		`${#if !x}${#end if}`,
		`${#if ! x}${#end if}`,
		`${#if x > 5}${#end if}`,
		`${#if x === 'a b c'}${#end if}`,
		`${#each xs as x}${#end each}`,
		`${#each  xs  as  x }${#end each}`,
		`${#each xs as k to v}${#end each}`,
		`${#if x}${#each xs as x}${#end each}${#end if}`,
		`\${#bogus x}`, //escaped markers are never parsed
		`${#if x}unclosed is a render error, not a compile error`,
	}
	for _, src := range cases {
		_, err := Compile(src)
		assert.NoError(t, err, "should compile: %s", src)
	}
}

func TestCompileUnclosedIsDeferred(t *testing.T) {
	tpl, err := Compile(`${#each xs as x}open`)
	require.NoError(t, err)

	_, err = tpl.Render(d{"xs": []int{1}})
	var unclosed *UnclosedBranchError
	require.True(t, errors.As(err, &unclosed))
	assert.Equal(t, "each", unclosed.Kind)
}

func TestCompileTreeShape(t *testing.T) {
	tpl := Must(Compile(`a${#if x}b${#each xs as x}c${#end each}${#end if}d`))

	root := *tpl.root
	require.Len(t, root, 3)
	assert.IsType(t, executeText(nil), root[0])
	assert.IsType(t, &executeIf{}, root[1])
	assert.IsType(t, executeText(nil), root[2])

	body := root[1].(*executeIf).body
	require.Len(t, body, 2)
	assert.IsType(t, executeText(nil), body[0])
	assert.IsType(t, &executeEach{}, body[1])
}
