package dawg

import "errors"

// Sentinel errors returned by build-time operations. Read-side traversal
// (Follow, Contains, Find) reports absence with a plain bool, matching
// dawgdic's Dictionary::Follow: a missing transition is routine, not
// exceptional, and callers on a hot lookup path should not pay for an
// error allocation every miss.
var (
	// ErrEmptyKey is returned by DawgBuilder.Insert for a zero-length key.
	ErrEmptyKey = errors.New("dawg: empty key")
	// ErrNegativeValue is returned by DawgBuilder.Insert for value < 0.
	ErrNegativeValue = errors.New("dawg: negative value")
	// ErrOutOfOrder is returned when a key does not sort strictly after
	// the previously inserted key.
	ErrOutOfOrder = errors.New("dawg: keys must be inserted in ascending order")
	// ErrContainsNUL is returned for a key containing a zero byte; zero
	// is reserved as the internal terminator label.
	ErrContainsNUL = errors.New("dawg: key contains a NUL byte")

	// ErrOffsetOverflow is returned when a dictionary node's transitions
	// cannot be placed within the 29-bit offset space the double-array
	// unit format allows.
	ErrOffsetOverflow = errors.New("dawg: offset exceeds double-array capacity")
	// ErrLinkTableFull is returned when the link table's open-addressed
	// probe wraps without finding a free slot. The table is sized at
	// build time from the dawg's merging-state count and never resizes;
	// a full table means that estimate undershot, which should not
	// happen for a table built from an accurate count, so surfacing it
	// as an error is strictly better than the unbounded probe loop the
	// original risks.
	ErrLinkTableFull = errors.New("dawg: link table is full")

	// ErrTruncated is returned by Read when the stream ends before the
	// declared unit count is satisfied.
	ErrTruncated = errors.New("dawg: truncated container")

	// ErrMismatchedDictionary is returned by BuildGuide/BuildRankedGuide
	// when the supplied Dictionary was not compiled from the supplied
	// Dawg: every dawg transition must have a corresponding dictionary
	// transition, so a miss here means the two arguments don't match.
	ErrMismatchedDictionary = errors.New("dawg: dictionary was not compiled from this dawg")
)
