package outline

import (
	"errors"
	"fmt"
)

// DefaultSegments is the number of arc segments used when WithSegments is not given
const DefaultSegments = 64

// ErrSegments is returned when too few segments are requested to draw a shape
var ErrSegments = errors.New("outline: too few segments")

// Option configures a Disc or Sector
type Option func(*options)

type options struct {
	segments int
	name     string
}

// WithSegments sets how many straight segments approximate the arc
func WithSegments(n int) Option {
	return func(o *options) { o.segments = n }
}

// WithName sets the placemark name used in KML output
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func buildOptions(defaultName string, minSegments int, opts []Option) (options, error) {
	o := options{segments: DefaultSegments, name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.segments < minSegments {
		return options{}, fmt.Errorf("%w: need at least %d, got %d", ErrSegments, minSegments, o.segments)
	}
	return o, nil
}
