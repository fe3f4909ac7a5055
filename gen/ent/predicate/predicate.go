// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BillDocument is the predicate function for billdocument builders.
type BillDocument func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)
