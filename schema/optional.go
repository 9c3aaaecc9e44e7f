package schema

// Optional is the result of an optional-tracking session: the wrapped
// builder's result together with whether the outermost shape was an option.
type Optional[R any] struct {
	IsOptional bool
	Value      R
}

// Optionalize wraps f so that callers describing a single field or parameter
// learn whether its type is optional, judged by the outermost shape alone.
//
// Only the root call of the session is observed. A DescribeOption there
// marks the result optional; options nested deeper are described by fresh
// sessions of f and do not affect the flag.
func Optionalize[R any](f Factory[R]) Factory[Optional[R]] {
	return func(sink Sink[Optional[R]]) Builder {
		o := &optionalBuilder{isRoot: true}
		o.Builder = f(func(r R) error {
			return sink(Optional[R]{IsOptional: o.isOptional, Value: r})
		})
		return o
	}
}

type optionalBuilder struct {
	Builder
	isRoot     bool
	isOptional bool
}

func (o *optionalBuilder) DescribeOption(opts OptionOptions, inner Schema) error {
	if o.isRoot {
		o.isOptional = true
	}
	o.isRoot = false
	return o.Builder.DescribeOption(opts, inner)
}
