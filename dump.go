// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func kindName(e Edit) string {
	switch e.(type) {
	case *InsertEdit:
		return "InsertEdit"
	case *DeleteEdit:
		return "DeleteEdit"
	case *ReplaceEdit:
		return "ReplaceEdit"
	case *MultiEdit:
		return "MultiEdit"
	case *RangeMarker:
		return "RangeMarker"
	case *MoveSourceEdit:
		return "MoveSourceEdit"
	case *MoveTargetEdit:
		return "MoveTargetEdit"
	case *CopySourceEdit:
		return "CopySourceEdit"
	case *CopyTargetEdit:
		return "CopyTargetEdit"
	case *UndoEdit:
		return "UndoEdit"
	default:
		return "Edit"
	}
}

// String returns a short debug description like "{ReplaceEdit} [4,2]".
func (e *editNode) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('{')
	sb.WriteString(kindName(e.self))
	sb.WriteString("} ")
	if e.IsDeleted() {
		sb.WriteString("[deleted]")
	} else {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(e.offset))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(e.length))
		sb.WriteByte(']')
	}
	return sb.String()
}

// Dump writes an indented rendering of the tree rooted at e to w, one edit per
// line, including the text carried by inserts and replaces.
func Dump(w io.Writer, e Edit) error {
	return dumpEdit(w, e, 0)
}

func dumpEdit(w io.Writer, e Edit, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	switch edit := e.(type) {
	case *InsertEdit:
		_, err = fmt.Fprintf(w, "%s%s <<%q\n", indent, edit.String(), edit.Text())
	case *ReplaceEdit:
		_, err = fmt.Fprintf(w, "%s%s <<%q\n", indent, edit.String(), edit.Text())
	default:
		_, err = fmt.Fprintf(w, "%s%s\n", indent, e.String())
	}
	if err != nil {
		return err
	}
	for _, child := range e.Children() {
		if err := dumpEdit(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
