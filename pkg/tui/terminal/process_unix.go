// ABOUTME: Unix termination signals that must restore the terminal before exit.
// ABOUTME: SIGINT is absent because raw mode turns Ctrl+C into an ordinary byte.

//go:build unix

package terminal

import (
	"os"
	"syscall"
)

var terminationSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}
