// ABOUTME: Windows termination signals that must restore the console before exit.
// ABOUTME: Only os.Interrupt is delivered through os/signal on Windows.

//go:build windows

package terminal

import "os"

var terminationSignals = []os.Signal{os.Interrupt}
