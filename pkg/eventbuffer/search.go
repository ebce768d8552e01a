package eventbuffer

import "cmp"

// searchResult is the outcome of a binary search over a sorted offset
// sequence: either an exact hit at index i, or the insertion point i at
// which the query would be spliced to keep the sequence sorted.
type searchResult struct {
	index int
	found bool
}

// search locates offset within a strictly increasing slice of (offset, _)
// pairs using binary search.
func search[O cmp.Ordered, E any](entries []pair[O, E], offset O) searchResult {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case entries[mid].offset == offset:
			return searchResult{index: mid, found: true}
		case entries[mid].offset < offset:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return searchResult{index: lo, found: false}
}

// indexAfter normalises a searchResult into "the first index whose offset
// is strictly greater than the query" per spec §4.1.1:
//
//	Found(i)         -> i+1
//	InsertionPoint(i) -> i
func indexAfter(r searchResult) int {
	if r.found {
		return r.index + 1
	}
	return r.index
}
