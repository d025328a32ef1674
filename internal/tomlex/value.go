// Package tomlex parses the restricted TOML subset used for build
// configuration: flat key/value assignment with string and numeric scalars,
// arrays of scalars, table headers, and comments. Booleans, dates, inline
// tables and quoted keys are rejected with an explicit error rather than
// silently dropped.
package tomlex

// Kind identifies the type stored in a Value.
type Kind int

// Kind constants for configuration values.
const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is a tagged union of the types the configuration grammar produces.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	arr  []Value
	tab  *Table
}

// StringValue builds a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntegerValue builds an integer Value.
func IntegerValue(n int64) Value { return Value{kind: KindInteger, num: n} }

// FloatValue builds a float Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// ArrayValue builds an array Value.
func ArrayValue(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// TableValue builds a table Value.
func TableValue(t *Table) Value { return Value{kind: KindTable, tab: t} }

// Kind reports the type stored in the value.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Valid only when Kind is KindString.
func (v Value) Str() string { return v.str }

// Int returns the numeric payload as an integer, converting floats by
// truncation.
func (v Value) Int() int64 {
	if v.kind == KindFloat {
		return int64(v.flt)
	}
	return v.num
}

// Float returns the numeric payload as a float.
func (v Value) Float() float64 {
	if v.kind == KindInteger {
		return float64(v.num)
	}
	return v.flt
}

// Array returns the element slice. Valid only when Kind is KindArray.
func (v Value) Array() []Value { return v.arr }

// Table returns the nested table. Valid only when Kind is KindTable.
func (v Value) Table() *Table { return v.tab }

// Table is a scanned configuration table. Keys are unique; re-declaring a
// key within one table is a parse error, enforced by the parser via Set.
type Table struct {
	entries map[string]Value
	keys    []string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Value)}
}

// Set stores a value under key. It reports false when the key is already
// present, in which case the table is left unchanged.
func (t *Table) Set(key string, v Value) bool {
	if _, dup := t.entries[key]; dup {
		return false
	}
	t.entries[key] = v
	t.keys = append(t.keys, key)
	return true
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys returns the keys in declaration order.
func (t *Table) Keys() []string { return t.keys }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }
