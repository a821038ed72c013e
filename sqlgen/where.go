// Package sqlgen builds parameterized SQL statement text for a dialect.
package sqlgen

// Predicate is a single WHERE condition. The three-part form binds its value
// as a query argument; the raw two-part form appends the operator text
// verbatim, which is how constructs like IS NOT NULL are expressed.
type Predicate struct {
	Column   string
	Operator string
	Value    any
	raw      bool
}

// Cmp builds a column/operator/value predicate whose value is bound as an
// argument.
func Cmp(column, operator string, value any) Predicate {
	return Predicate{Column: column, Operator: operator, Value: value}
}

// Raw builds a column/operator predicate with no bound value. The operator
// text is appended verbatim.
func Raw(column, operator string) Predicate {
	return Predicate{Column: column, Operator: operator, raw: true}
}

// Clauses is an ordered list of predicates joined with AND, in list order.
// OR and grouping are not supported.
type Clauses []Predicate

// And appends a bound predicate.
func (c Clauses) And(column, operator string, value any) Clauses {
	return append(c, Cmp(column, operator, value))
}

// AndRaw appends a verbatim predicate.
func (c Clauses) AndRaw(column, operator string) Clauses {
	return append(c, Raw(column, operator))
}
