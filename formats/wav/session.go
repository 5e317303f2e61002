// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"log/slog"
)

// state is the lifecycle position shared by Reader and Writer sessions.
// The zero value is stateUninitialized.
type state int

const (
	stateUninitialized state = iota
	stateInitialized
	stateReady // metadata parsed or header written
	stateStreaming
	stateFinished
)

var stateNames = [...]string{"uninitialized", "initialized", "ready", "streaming", "finished"}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// requireStreamable is the gate for data transfer operations.
func (s state) requireStreamable() error {
	switch s {
	case stateReady, stateStreaming:
		return nil
	case stateUninitialized:
		return ErrNotInitialized
	case stateFinished:
		return ErrAlreadyFinished
	default:
		return ErrNotReady
	}
}

// requireInitialized is the gate for the header/metadata phase.
func (s state) requireInitialized() error {
	switch s {
	case stateInitialized:
		return nil
	case stateUninitialized:
		return ErrNotInitialized
	case stateFinished:
		return ErrAlreadyFinished
	default:
		return ErrAlreadyStarted
	}
}

// Option configures a Reader or Writer.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes session diagnostics to l. Sessions are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// failAndClose closes store after a streaming or finalization failure so the
// caller is never left holding an open handle. cause is returned unchanged.
func failAndClose(logger *slog.Logger, store io.Closer, op string, cause error) error {
	logger.Error("wav session failed, closing store", "op", op, "err", cause)

	if err := store.Close(); err != nil {
		logger.Error("closing store", "op", op, "err", err)
	}

	return cause
}
