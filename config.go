package selector

import "go.uber.org/zap"

type config struct {
	log    *zap.Logger
	strict bool // reject combinators outside Descendant, Child, Adjacent, Sibling
}

// Option configures a Factory.
type Option func(*config)

// WithLogger sets the logger that receives rejected calls at debug level.
// A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithStrictCombinators makes Combine reject combinators other than the
// four defined by CSS.
func WithStrictCombinators() Option {
	return func(c *config) {
		c.strict = true
	}
}

func newConfig(opts ...Option) config {
	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
