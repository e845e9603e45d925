package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Finisher releases the terminal before crash output (tcell.Screen.Fini)
type Finisher interface {
	Fini()
}

var crashScreen Finisher

// RegisterCrashScreen installs the screen to tear down on panic
func RegisterCrashScreen(s Finisher) {
	crashScreen = s
}

// HandleCrash is the unified panic handler: restores the terminal and prints
// the stack trace before exiting
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashScreen != nil {
		crashScreen.Fini()
	} else {
		// Raw fallback: leave alt screen, show cursor, drop mouse reporting
		fmt.Fprint(os.Stdout, "\x1b[?1049l\x1b[?25h\x1b[0m\x1b[?1002l\x1b[?1006l")
	}
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash on any pipeline goroutine
// still restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
