// Package intern provides reference-counted interned strings.
// Each distinct string has a single canonical instance, so equality is
// pointer comparison. Every interned string also carries a handle to its
// case-folded twin, assigned at intern time.
package intern

import (
	"strings"
	"sync"
	"sync/atomic"
)

// String is a canonical instance of a string. Comparing two *String
// values with == compares string content.
type String struct {
	data  string
	lower *String
	refs  int32
}

var (
	mu    sync.Mutex
	table = make(map[string]*String)
)

// Intern returns the canonical instance for s. No reference is taken:
// the table keeps every instance alive, and reference counts track only
// retention by style buffers and computed records.
func Intern(s string) *String {
	mu.Lock()
	str := lookup(s)
	mu.Unlock()
	return str
}

// lookup returns the canonical instance, creating it and its case-folded
// twin on first sight. Caller holds mu.
func lookup(s string) *String {
	if str, ok := table[s]; ok {
		return str
	}
	str := &String{data: s}
	table[s] = str

	folded := strings.ToLower(s)
	if folded == s {
		str.lower = str
	} else {
		str.lower = lookup(folded)
	}
	return str
}

// Data returns the string content.
func (s *String) Data() string { return s.data }

// Lower returns the canonical case-folded instance. For strings that are
// already lowercase it is the receiver itself.
func (s *String) Lower() *String { return s.lower }

// Ref takes an additional reference.
func (s *String) Ref() *String {
	atomic.AddInt32(&s.refs, 1)
	return s
}

// Unref drops one reference.
func (s *String) Unref() {
	atomic.AddInt32(&s.refs, -1)
}

// Refs reports the current reference count.
func (s *String) Refs() int32 {
	return atomic.LoadInt32(&s.refs)
}

// CaselessEqual reports whether a and b are equal ignoring ASCII case.
func CaselessEqual(a, b *String) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.lower == b.lower
}
