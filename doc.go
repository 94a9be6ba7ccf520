/*
Package tmpl compiles text templates with ${...} markers into renderable
trees and evaluates them against arbitrary data.

A template is ordinary text with three kinds of markup: value placeholders,
conditionals, and iteration. Compile once, render as often as you like:

	t, err := tmpl.Compile("<h1>${title}</h1>")
	if err != nil {
		//handle err
	}
	out, err := t.Render(map[string]interface{}{"title": "templates!"})
	// out == "<h1>templates!</h1>"

Placeholders

${path} is replaced by the value found at that path in the data context.
Paths use dot notation with optional bracket indexing:

	${user.name}
	${items[0].label}
	${settings['color scheme']}

Slices, arrays, and strings answer a length key the way you would expect
from ${items.length}. A path that resolves to a string or a number is
spliced in; anything else (a map, a slice, a missing path) leaves the
placeholder text untouched. A backslash suppresses substitution and is
itself dropped, so \${x} renders as the literal text ${x}.

Conditionals

${#if path} renders its body when the value at path is truthy, in the usual
scripting sense: false, 0, "", an empty collection, nil, and a missing path
are all falsy. A leading ! negates the test. An operator and operand narrow
the test further:

	${#if user.admin}you are an admin${#end if}
	${#if !errors.length}clean${#end if}
	${#if count > 5}big${#end if}
	${#if state === 'open'}still open${#end if}

Supported operators are <, >, <=, >=, === (alias ==), and !== (alias !=).
The equality operators are strict: null does not equal undefined and the
quoted string '5' does not equal the number 5. Operands may be null,
undefined, true, false, a quoted string, a bare number, or another path,
which is resolved against the data context at render time.

Iteration

${#each path as value} renders its body once per element of the collection
at path, with the element bound to the given name. A key binding is
optional:

	${#each items as item}<li>${item.name}</li>${#end each}
	${#each scores as name to score}${name}: ${score}; ${#end each}

Slices and arrays iterate in index order, strings rune by rune, maps in
sorted key order, and structs over their exported fields. Bindings live in a per-iteration copy of
the context, so an outer binding of the same name is shadowed inside the
loop and intact after it. The caller's data is never modified.

Every open marker needs a matching ${#end if} or ${#end each}. Closes must
nest properly, and rendering a template with an unclosed branch fails with
UnclosedBranchError rather than producing partial output.

Files and Modes

ParseFile compiles a template from disk. Tmpl has two modes, Production and
Development, which can be changed at any time with the CompileMode function.
In Development mode every ParseFile reads and compiles from disk, so the
latest results are always used. In Production mode files are only compiled
the first time they are needed and the results are cached for subsequent
access.

Nesting depth is bounded only by the call stack; templates are not
sandboxed, so only render sources you trust.
*/
package tmpl
