package collections

import (
	log "github.com/sirupsen/logrus"
)

type options struct {
	logger   *log.Entry
	name     string
	capacity int
}

// Option configures a BiMap at construction.
type Option func(*options)

// WithLogger sets the entry evictions are logged to. A nil entry keeps the default.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName tags every log line of the map with a name field.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithCapacity presizes both indexes.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		logger: log.WithFields(log.Fields{"component": "bimap"}),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.name != "" {
		o.logger = o.logger.WithField("name", o.name)
	}
	return o
}
