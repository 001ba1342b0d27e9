// ABOUTME: Session is the scoped raw-mode guard: Acquire enters raw mode, Release restores it once.
// ABOUTME: Release is safe to call repeatedly and from signal handlers running on other goroutines.

package terminal

import (
	"fmt"
	"sync"
)

// Session holds a Terminal in raw mode until Release is called.
type Session struct {
	term Terminal
	once sync.Once
	err  error
}

// Acquire puts t into raw mode and returns the guard that undoes it.
// Callers should defer Release immediately.
func Acquire(t Terminal) (*Session, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("acquiring raw mode: %w", err)
	}
	return &Session{term: t}, nil
}

// Release restores the prior terminal attributes. Only the first call
// reaches the terminal; later calls return the first call's result.
func (s *Session) Release() error {
	s.once.Do(func() {
		s.err = s.term.ExitRawMode()
	})
	return s.err
}
