package service

import "time"

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now for operations that stamp dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
