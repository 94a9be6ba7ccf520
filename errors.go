package tmpl

import "fmt"

//UnknownKindError is returned by Compile when an open marker names a branch
//kind outside the supported set (if, each).
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown branch kind %q", e.Kind)
}

//MismatchedCloseError is returned by Compile when an end marker closes a
//different kind than the branch currently open.
type MismatchedCloseError struct {
	Got  string
	Want string
}

func (e *MismatchedCloseError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("close %q with no open branch", e.Got)
	}
	return fmt.Sprintf("mismatched close: got %q while %q is open", e.Got, e.Want)
}

//UnclosedBranchError is returned by Execute and Render when the compiled tree
//still has an open branch. Compile does not fail for this; the error surfaces
//on the first attempt to render.
type UnclosedBranchError struct {
	Kind string
}

func (e *UnclosedBranchError) Error() string {
	return fmt.Sprintf("unclosed %q branch", e.Kind)
}

//SyntaxError is returned by Compile for a marker whose body cannot be parsed,
//including comparison operators outside the supported set.
type SyntaxError struct {
	Marker string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bad marker %s: %s", e.Marker, e.Reason)
}
