package sobolgo

import "log/slog"

type options struct {
	start  uint32
	logger *Logger
}

// Option configures Sequence construction.
type Option func(*options)

// WithStartIndex positions a new generator at index i, as if SkipTo(i) had
// been called. Combined with a stride this is the usual way to hand each
// parallel worker its own slice of the sequence.
func WithStartIndex(i uint32) Option {
	return func(o *options) {
		o.start = i
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
