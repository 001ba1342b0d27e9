// ABOUTME: RestoreOnPanic releases the raw-mode session before letting a panic continue.
// ABOUTME: WatchSignals releases the session when a termination signal arrives.

package terminal

import (
	"os"
	"os/signal"
)

// RestoreOnPanic should be deferred by the goroutine that owns the session.
// On panic it releases raw mode so the stack trace prints on a sane
// terminal, then re-panics with the original value.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}
	_ = s.Release()
	panic(r)
}

// WatchSignals releases s when one of the platform termination signals
// arrives, then calls onSignal (typically to exit the process). The
// returned stop func unregisters the handler; it must be called once the
// session is over.
func WatchSignals(s *Session, onSignal func(os.Signal)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, terminationSignals...)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigCh:
			_ = s.Release()
			if onSignal != nil {
				onSignal(sig)
			}
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
