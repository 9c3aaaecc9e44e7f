package schema

// PostProcess maps the result of every session created by f through
// transform before handing it to the sink. An error from transform is
// returned from the shape call that produced the result.
func PostProcess[In, Out any](f Factory[In], transform func(In) (Out, error)) Factory[Out] {
	return func(sink Sink[Out]) Builder {
		return f(func(v In) error {
			out, err := transform(v)
			if err != nil {
				return err
			}
			return sink(out)
		})
	}
}
