package reconcile

import (
	"github.com/agentstation/authormatch/pkg/errors"
)

// options configures a Reconciler.
type options struct {
	synthesizeUnmatched bool
	matchKeys           MatchKeys
	sort                SortStrategy
}

func defaultOptions() *options {
	return &options{
		synthesizeUnmatched: false,
		matchKeys:           MatchKeysBoth,
		sort:                SortOriginalFirst,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values applied.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithSynthesizeUnmatched controls what happens to a data row matching
// no template row: dropped when false (the default, final policy), or
// turned into a minimal row built from the data row's own fields when
// true (the earlier behavior).
func WithSynthesizeUnmatched(enabled bool) Option {
	return func(o *options) error {
		o.synthesizeUnmatched = enabled
		return nil
	}
}

// WithMatchKeys selects which identifier families participate in matching.
func WithMatchKeys(keys MatchKeys) Option {
	return func(o *options) error {
		if !keys.Valid() {
			return &errors.ValidationError{
				Field:   "match-keys",
				Value:   keys.String(),
				Message: "must be one of: email, authorid, both",
			}
		}
		o.matchKeys = keys
		return nil
	}
}

// WithSortStrategy selects the output ordering policy.
func WithSortStrategy(strategy SortStrategy) Option {
	return func(o *options) error {
		if !strategy.Valid() {
			return &errors.ValidationError{
				Field:   "sort-strategy",
				Value:   strategy.String(),
				Message: "must be one of: original-first, email-first, authorid-first",
			}
		}
		o.sort = strategy
		return nil
	}
}
