package db

import (
	"fmt"
	"strings"
)

// SetBuilder accumulates SET clauses for a partial UPDATE. Only fields the
// caller explicitly adds end up in the statement, so absent fields are never
// overwritten.
type SetBuilder struct {
	cols []string
	args []interface{}
}

// Set adds a column assignment. Call once per supplied field.
func (b *SetBuilder) Set(column string, value interface{}) *SetBuilder {
	b.cols = append(b.cols, column)
	b.args = append(b.args, value)
	return b
}

// Empty reports whether no field has been added.
func (b *SetBuilder) Empty() bool { return len(b.cols) == 0 }

// SQL renders "UPDATE table SET c1=$1, c2=$2 WHERE keyCol=$n" and the full
// argument list with the key value appended last.
func (b *SetBuilder) SQL(table, keyCol string, keyVal interface{}) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	for i, col := range b.cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = $%d", col, i+1)
	}
	fmt.Fprintf(&sb, " WHERE %s = $%d", keyCol, len(b.cols)+1)
	return sb.String(), append(b.args, keyVal)
}
