package automaton

import "go.uber.org/zap"

// Option configures Build, Compile, Partition and Minimize.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sends construction and minimization events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
