package database

// Field is one column/value pair of a Record.
type Field struct {
	Column string
	Value  any
}

// Record is an ordered column→value mapping representing one row. Columns
// keep their insertion order, which is the order INSERT and UPDATE
// statements list them in.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// RecordOf builds a record from alternating column/value pairs. It panics on
// an odd number of arguments or a non-string column; it is meant for
// literal construction in calling code and tests.
func RecordOf(pairs ...any) *Record {
	if len(pairs)%2 != 0 {
		panic("database: RecordOf requires column/value pairs")
	}
	r := NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		col, ok := pairs[i].(string)
		if !ok {
			panic("database: RecordOf column must be a string")
		}
		r.Set(col, pairs[i+1])
	}
	return r
}

// Set adds a column or overwrites an existing one in place, keeping its
// original position.
func (r *Record) Set(column string, value any) *Record {
	if i, ok := r.index[column]; ok {
		r.fields[i].Value = value
		return r
	}
	r.index[column] = len(r.fields)
	r.fields = append(r.fields, Field{Column: column, Value: value})
	return r
}

// Get returns the value stored under column.
func (r *Record) Get(column string) (any, bool) {
	i, ok := r.index[column]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Len returns the number of columns.
func (r *Record) Len() int { return len(r.fields) }

// Columns returns the column names in insertion order.
func (r *Record) Columns() []string {
	cols := make([]string, len(r.fields))
	for i, f := range r.fields {
		cols[i] = f.Column
	}
	return cols
}

// Values returns the values in the same order as Columns.
func (r *Record) Values() []any {
	vals := make([]any, len(r.fields))
	for i, f := range r.fields {
		vals[i] = f.Value
	}
	return vals
}

// Fields returns the column/value pairs in insertion order. The slice is a
// copy; mutating it does not affect the record.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Filter returns a new record holding only the allowed columns, in the
// record's original order. Columns outside the allow list are dropped
// silently; allowed columns absent from the record are ignored.
func (r *Record) Filter(allowed ...string) *Record {
	allow := make(map[string]struct{}, len(allowed))
	for _, col := range allowed {
		allow[col] = struct{}{}
	}
	out := NewRecord()
	for _, f := range r.fields {
		if _, ok := allow[f.Column]; ok {
			out.Set(f.Column, f.Value)
		}
	}
	return out
}
