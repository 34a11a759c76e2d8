package go_sball

// DefaultLeafSize is the maximum number of points held by a leaf node.
const DefaultLeafSize = 40

type options struct {
	leafSize int
	logger   *Logger
}

// Option configures tree construction.
type Option func(*options)

// WithLeafSize sets the maximum number of points per leaf. Smaller leaves make deeper trees.
func WithLeafSize(n int) Option {
	return func(o *options) {
		o.leafSize = n
	}
}

// WithLogger sets the logger used for build and query events.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{leafSize: DefaultLeafSize, logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.leafSize < 1 {
		return o, invalidParam("leaf size", "leaf size %d must be at least 1", o.leafSize)
	}
	return o, nil
}

type queryOptions struct {
	k              int
	returnDistance bool
	workers        int
}

// QueryOption configures a batch query.
type QueryOption func(*queryOptions)

// WithK sets the number of neighbours returned per query point. Defaults to 1.
func WithK(k int) QueryOption {
	return func(o *queryOptions) {
		o.k = k
	}
}

// WithReturnDistance controls whether Result.Distances is filled. Defaults to true.
func WithReturnDistance(returnDistance bool) QueryOption {
	return func(o *queryOptions) {
		o.returnDistance = returnDistance
	}
}

// WithWorkers spreads the query rows over n goroutines. Defaults to 1.
func WithWorkers(n int) QueryOption {
	return func(o *queryOptions) {
		o.workers = n
	}
}

func newQueryOptions(opts []QueryOption) (queryOptions, error) {
	o := queryOptions{k: 1, returnDistance: true, workers: 1}
	for _, fn := range opts {
		fn(&o)
	}
	if o.workers < 1 {
		return o, invalidParam("workers", "workers %d must be at least 1", o.workers)
	}
	return o, nil
}
