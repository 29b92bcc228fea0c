package explain

import "github.com/cloudcmds/clarify/exc"

// DefaultHistorySize bounds how many explained exceptions a session
// retains. Each retained record pins the frames captured with its
// exception, so the history must stay small.
const DefaultHistorySize = 20

// Session holds the explicit state that explaining exceptions needs
// across calls: the active display language and a bounded history of
// compiled records.
type Session struct {
	lang    string
	limit   int
	history []*Compiler
}

// NewSession creates a session with the default language and history
// bound.
func NewSession() *Session {
	return &Session{lang: "en", limit: DefaultHistorySize}
}

// WithHistorySize overrides the number of records retained.
func (s *Session) WithHistorySize(limit int) *Session {
	if limit < 1 {
		limit = 1
	}
	s.limit = limit
	for len(s.history) > s.limit {
		s.history = s.history[1:]
	}
	return s
}

// SetLang changes the active display language. Already-compiled records
// are rerendered lazily, when they are next accessed.
func (s *Session) SetLang(lang string) {
	s.lang = lang
}

// Lang returns the active display language.
func (s *Session) Lang() string {
	return s.lang
}

// Explain compiles an explanation for e and records it in the history.
func (s *Session) Explain(e *exc.Exception) *Explanation {
	compiler := NewCompiler(e)
	record := compiler.Compile(s.lang)
	s.history = append(s.history, compiler)
	if len(s.history) > s.limit {
		s.history = s.history[1:]
	}
	return record
}

// Latest returns the most recent record, rerendered for the active
// language if needed.
func (s *Session) Latest() (*Explanation, bool) {
	return s.Record(0)
}

// Record returns the index-th most recent record; index 0 is the latest.
func (s *Session) Record(index int) (*Explanation, bool) {
	if index < 0 || index >= len(s.history) {
		return nil, false
	}
	compiler := s.history[len(s.history)-1-index]
	return compiler.Recompile(s.lang), true
}

// Back discards the most recent record, so that a quick experiment or a
// typo does not stay in the history.
func (s *Session) Back() {
	if len(s.history) > 0 {
		s.history = s.history[:len(s.history)-1]
	}
}

// Len returns the number of retained records.
func (s *Session) Len() int {
	return len(s.history)
}

// Reset clears the history, releasing every retained frame.
func (s *Session) Reset() {
	s.history = nil
}
