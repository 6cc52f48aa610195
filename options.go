package bytesimd

type options struct {
	logger *Logger
}

// Option configures an Accumulator.
type Option func(*options)

// WithLogger sets the logger used for accumulator events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
