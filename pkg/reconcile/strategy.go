package reconcile

import (
	"strings"

	"github.com/agentstation/authormatch/pkg/identifier"
	"github.com/agentstation/authormatch/pkg/schema"
	"github.com/agentstation/authormatch/pkg/tabular"
)

// MatchKeys selects which identifier families participate in matching.
type MatchKeys string

const (
	// MatchKeysEmail matches on email candidates only.
	MatchKeysEmail MatchKeys = "email"
	// MatchKeysAuthorID matches on author-id candidates only.
	MatchKeysAuthorID MatchKeys = "authorid"
	// MatchKeysBoth unions email and author-id matches. Neither family
	// is prioritized over the other.
	MatchKeysBoth MatchKeys = "both"
)

// String returns the string representation of the match-key selection.
func (m MatchKeys) String() string {
	return string(m)
}

// Valid reports whether the selection names a known key family.
func (m MatchKeys) Valid() bool {
	switch m {
	case MatchKeysEmail, MatchKeysAuthorID, MatchKeysBoth:
		return true
	}
	return false
}

// SortStrategy names a total ordering of the output rows. The ordering
// changed across the tool's iterations, so it is a replaceable policy
// selected at construction time rather than a fixed code path.
type SortStrategy string

const (
	// SortOriginalFirst orders unmodified template rows (empty record
	// id) before rows carrying a record id, then by case-folded email,
	// then by record id.
	SortOriginalFirst SortStrategy = "original-first"
	// SortEmailFirst orders by case-folded email, then record id.
	SortEmailFirst SortStrategy = "email-first"
	// SortAuthorIDFirst orders by author id, then document id.
	SortAuthorIDFirst SortStrategy = "authorid-first"
)

// String returns the string representation of the sort strategy.
func (s SortStrategy) String() string {
	return string(s)
}

// Name returns a human-readable name for the strategy.
func (s SortStrategy) Name() string {
	words := strings.Split(string(s), "-")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

// Valid reports whether the strategy is known.
func (s SortStrategy) Valid() bool {
	switch s {
	case SortOriginalFirst, SortEmailFirst, SortAuthorIDFirst:
		return true
	}
	return false
}

// less returns the comparison function implementing the strategy.
func (s SortStrategy) less() func(a, b tabular.Row) bool {
	switch s {
	case SortEmailFirst:
		return func(a, b tabular.Row) bool {
			ae := identifier.Fold(a.Get(schema.FieldEmailAddress))
			be := identifier.Fold(b.Get(schema.FieldEmailAddress))
			if ae != be {
				return ae < be
			}
			return a.Get(schema.FieldUT) < b.Get(schema.FieldUT)
		}
	case SortAuthorIDFirst:
		return func(a, b tabular.Row) bool {
			if aid, bid := a.Get(schema.FieldAuthorID), b.Get(schema.FieldAuthorID); aid != bid {
				return aid < bid
			}
			return a.Get(schema.FieldDocumentID) < b.Get(schema.FieldDocumentID)
		}
	default: // SortOriginalFirst
		return func(a, b tabular.Row) bool {
			aOriginal := a.Get(schema.FieldUT) == ""
			bOriginal := b.Get(schema.FieldUT) == ""
			if aOriginal != bOriginal {
				return aOriginal
			}
			ae := identifier.Fold(a.Get(schema.FieldEmailAddress))
			be := identifier.Fold(b.Get(schema.FieldEmailAddress))
			if ae != be {
				return ae < be
			}
			return a.Get(schema.FieldUT) < b.Get(schema.FieldUT)
		}
	}
}
