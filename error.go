// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedTree is returned when a tree mutation or the integrity pass
	// detects a structural invariant violation. The document is never touched.
	ErrMalformedTree = errors.New("malformed edit tree")
	// ErrBadLocation is returned when a document change falls outside the
	// document's bounds. The document may be left in an intermediate state.
	ErrBadLocation = errors.New("bad document location")
)

// MalformedTreeError reports a structural invariant violation detected while
// mutating an edit tree or during the integrity pass of an apply. It contains
// the parent and child involved, when known.
type MalformedTreeError struct {
	// Parent is the edit the child was attached, or about to be attached, to.
	// It may be nil when the violation is not tied to a parent.
	Parent Edit
	// Child is the offending edit. It may be nil.
	Child Edit
	// Reason describes the violated invariant.
	Reason string
}

func (e *MalformedTreeError) Error() string {
	sb := new(strings.Builder)
	sb.WriteString("malformed edit tree: ")
	sb.WriteString(e.Reason)
	if e.Child != nil {
		sb.WriteString(": child ")
		sb.WriteString(e.Child.String())
	}
	if e.Parent != nil {
		sb.WriteString(" in parent ")
		sb.WriteString(e.Parent.String())
	}
	return sb.String()
}

// Unwrap returns the sentinel value [ErrMalformedTree].
func (e *MalformedTreeError) Unwrap() error {
	return ErrMalformedTree
}

// BadLocationError reports a document access outside the document's bounds.
type BadLocationError struct {
	// Offset and Length describe the attempted access.
	Offset int
	Length int
	// DocLength is the document length at the time of the access.
	DocLength int
}

func (e *BadLocationError) Error() string {
	return fmt.Sprintf("bad document location: range [%d,%d] outside document of length %d", e.Offset, e.Length, e.DocLength)
}

// Unwrap returns the sentinel value [ErrBadLocation].
func (e *BadLocationError) Unwrap() error {
	return ErrBadLocation
}
