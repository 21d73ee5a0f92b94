package schema

import "github.com/mesh-intelligence/attrschema/pkg/types"

var _ types.Conn = (*Recorder)(nil)

// Recorder is an in-memory Conn that captures statements instead of running
// them. Set FailAt to make the Nth Exec call (1-based) return Err.
type Recorder struct {
	Prefix      string
	DialectName string
	FailAt      int
	Err         error

	// Statements holds every statement accepted so far, in order.
	Statements []string

	calls int
}

// NewRecorder returns a Recorder reporting the given prefix and dialect.
func NewRecorder(prefix, dialect string) *Recorder {
	return &Recorder{Prefix: prefix, DialectName: dialect}
}

// TablePrefix implements types.Conn.
func (r *Recorder) TablePrefix() string { return r.Prefix }

// Dialect implements types.Conn.
func (r *Recorder) Dialect() string { return r.DialectName }

// Exec implements types.Conn.
func (r *Recorder) Exec(query string) error {
	r.calls++
	if r.FailAt > 0 && r.calls == r.FailAt {
		return r.Err
	}
	r.Statements = append(r.Statements, query)
	return nil
}

// Calls returns the number of Exec calls, including a failed one.
func (r *Recorder) Calls() int { return r.calls }

// Reset clears recorded statements and the call counter.
func (r *Recorder) Reset() {
	r.Statements = nil
	r.calls = 0
}
