package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// finisher restores the terminal, tcell.Screen satisfies it
type finisher interface {
	Fini()
}

// crashGuard restores the terminal and exits when any goroutine panics
type crashGuard struct {
	screen finisher
	out    io.Writer
	exit   func(int)
}

func newCrashGuard(screen finisher) *crashGuard {
	return &crashGuard{screen: screen, out: os.Stderr, exit: os.Exit}
}

// recoverPanic must be deferred directly by the panicking goroutine
func (g *crashGuard) recoverPanic(where string) {
	r := recover()
	if r == nil {
		return
	}
	g.handle(where, r, debug.Stack())
}

func (g *crashGuard) handle(where string, r any, stack []byte) {
	g.screen.Fini()
	fmt.Fprintf(g.out, "\r\n\x1b[31mVI-FPS CRASHED in %s: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(g.out, "Stack Trace:\r\n%s\r\n", stack)
	g.exit(1)
}

// Go runs fn on a new goroutine under the guard
func (g *crashGuard) Go(where string, fn func()) {
	go func() {
		defer g.recoverPanic(where)
		fn()
	}()
}

// Wrap guards an errgroup body
func (g *crashGuard) Wrap(where string, fn func() error) func() error {
	return func() error {
		defer g.recoverPanic(where)
		return fn()
	}
}
