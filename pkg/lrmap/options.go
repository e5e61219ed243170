package lrmap

// Option customizes a Map at construction time.
type Option func(*options)

type options struct {
	maxAutoRefresh int
}

// WithAutoRefreshAfter makes the Map's Writer call Refresh automatically
// once more than writes writes have accumulated since the last refresh,
// instead of only ever refreshing when the caller asks for it. A value
// of zero (the default, also produced by omitting this option) disables
// the policy.
func WithAutoRefreshAfter(writes int) Option {
	return func(o *options) {
		o.maxAutoRefresh = writes
	}
}
