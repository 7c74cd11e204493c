package hdrscan

// Ident is a C/C++ identifier, compared and ordered by its byte content.
//
// A string-backed type gives us the teacher's "two representations,
// indistinguishable to consumers" property for free: an Ident built from
// a string literal and one built from a parsed token compare, hash, and
// print identically.
type Ident string

func (i Ident) String() string { return string(i) }

// IsZero reports whether i is the empty identifier.
func (i Ident) IsZero() bool { return i == "" }
