package main

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	mu    sync.Mutex
	finis int
}

func (s *fakeScreen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finis++
}

func (s *fakeScreen) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finis
}

func testGuard(screen *fakeScreen) (*crashGuard, *bytes.Buffer, chan int) {
	var out bytes.Buffer
	codes := make(chan int, 1)
	return &crashGuard{screen: screen, out: &out, exit: func(code int) { codes <- code }}, &out, codes
}

func TestCrashGuardGoRestoresTerminal(t *testing.T) {
	screen := &fakeScreen{}
	guard, out, codes := testGuard(screen)

	guard.Go("input", func() { panic("poll failed") })

	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(time.Second):
		t.Fatal("guarded goroutine did not exit")
	}
	assert.Equal(t, 1, screen.count())
	assert.Contains(t, out.String(), "CRASHED in input: poll failed")
	assert.Contains(t, out.String(), "Stack Trace:")
}

func TestCrashGuardWrapRecoversErrgroupBody(t *testing.T) {
	screen := &fakeScreen{}
	guard, out, codes := testGuard(screen)

	body := guard.Wrap("scheduler", func() error {
		var effect func()
		effect()
		return nil
	})
	require.NotPanics(t, func() { _ = body() })

	assert.Equal(t, 1, <-codes)
	assert.Equal(t, 1, screen.count())
	assert.Contains(t, out.String(), "CRASHED in scheduler")
}

func TestCrashGuardPassesThroughErrors(t *testing.T) {
	screen := &fakeScreen{}
	guard, out, codes := testGuard(screen)
	errStop := errors.New("stop")

	err := guard.Wrap("render", func() error { return errStop })()

	assert.ErrorIs(t, err, errStop)
	assert.Zero(t, screen.count())
	assert.Empty(t, out.String())
	assert.Empty(t, codes)
}
