package kson

// Json is a JSON container: an *Array, *MutableArray, *Object or *MutableObject.
//
// Stored values are nil, bool, int64, *big.Int, float64, decimal.Decimal,
// string or a nested container. Values inserted by callers may additionally
// be any Go integer or float width, []byte, time.Time or a civil date/time;
// those render as numbers or quoted strings.
type Json interface {
	// IsArray reports whether the container is an array
	IsArray() bool

	// IsObject reports whether the container is an object
	IsObject() bool

	// IsMutable reports whether the container exposes mutation operations
	IsMutable() bool

	// AsArray returns the read-only array view, or ErrNotArray
	AsArray() (*Array, error)

	// AsObject returns the read-only object view, or ErrNotObject
	AsObject() (*Object, error)

	// Len returns the number of elements or entries
	Len() int

	// IsEmpty reports whether Len is zero
	IsEmpty() bool

	// Write renders the compact form to out
	Write(out Output) error

	// WritePretty renders the indented form to out, starting at indent
	WritePretty(out Output, indent string) error

	// String returns the compact form
	String() string

	// PrettyString returns the indented form
	PrettyString() string

	// Copy returns an independent deep copy as a mutable container
	Copy() Json

	// Equal reports structural equality
	Equal(other Json) bool

	// Hash returns a structural hash consistent with Equal. Containers with a
	// NaN or infinite leaf hash the text written before it.
	Hash() uint64

	// Native returns the tree as plain []any and map[string]any values
	Native() any
}

// copyValue deep-copies nested containers, leaving scalar leaves in place
func copyValue(value any) any {
	if j, ok := value.(Json); ok {
		return j.Copy()
	}
	return value
}
