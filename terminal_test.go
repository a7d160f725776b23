package interm

import (
	"errors"
	"strings"
	"sync"
)

var errBrokenPipe = errors.New("broken pipe")

// recordingTerminal is a deterministic in-memory output stream for tests.
// Each Write call is recorded separately so tests can assert on the exact
// sequence of emissions.
type recordingTerminal struct {
	mu sync.Mutex

	writes []string
	fail   bool
}

func (r *recordingTerminal) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return 0, errBrokenPipe
	}
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

func (r *recordingTerminal) FailWrites(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = fail
}

func (r *recordingTerminal) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.writes))
	copy(out, r.writes)
	return out
}

func (r *recordingTerminal) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.writes, "")
}

func (r *recordingTerminal) Count(seq string) int {
	return strings.Count(r.Output(), seq)
}

func (r *recordingTerminal) ResetOutput() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = nil
}
