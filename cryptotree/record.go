package cryptotree

import (
	"encoding/json"
	"errors"
)

var (
	// ErrMalformedRecord indicates that a record lacks a well-formed
	// id field and was rejected before any mutation.
	ErrMalformedRecord = errors.New("[cryptotree] Malformed record")
)

// A Record is an application payload stored in the tree. The only
// mandatory field is "id", a non-empty string that uniquely keys the
// record. All other fields are opaque to the tree.
type Record map[string]interface{}

// ID returns the record's unique key. It returns ErrMalformedRecord
// if the id field is missing, not a string, or empty.
func (r Record) ID() (string, error) {
	v, ok := r["id"]
	if !ok {
		return "", ErrMalformedRecord
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", ErrMalformedRecord
	}
	return id, nil
}

// Encode returns the record's canonical encoding: compact JSON with
// lexicographically sorted field names. Records carrying the same
// field multiset always encode to the identical byte string,
// independent of field insertion order or platform. The encoding is
// the only format external callers must match bit-for-bit when they
// recompute a content digest independently.
func (r Record) Encode() ([]byte, error) {
	if _, err := r.ID(); err != nil {
		return nil, err
	}
	buf, err := json.Marshal(r)
	if err != nil {
		return nil, ErrMalformedRecord
	}
	return buf, nil
}

// Clone returns a copy of the record. Nested values are shared; the
// tree treats them as immutable.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
