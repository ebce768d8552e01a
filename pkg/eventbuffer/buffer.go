// Package eventbuffer implements a bounded, offset-indexed in-memory event
// log that caches the most recently committed ledger events so streaming
// subscribers can answer range queries from memory instead of the backing
// database.
//
// A Buffer owns its backing slice exclusively: no entry escapes except by
// value inside a BufferSlice result (spec §5, "Shared resource policy").
package eventbuffer

import (
	"cmp"
	"sync"
)

// Buffer is an ordered, offset-indexed log of the most recently pushed
// (offset, entry) pairs, bounded to maxBufferSize entries. Mutators
// (Push/Prune/Flush) are mutually exclusive with each other; Slice reads a
// snapshot of the backing slice without holding the mutator lock, so a
// user-supplied, potentially slow filter never runs while writers are
// blocked (spec §5, §9).
type Buffer[O cmp.Ordered, E any] struct {
	mu sync.Mutex

	maxBufferSize         int
	maxBufferedChunkSize  int
	qualifier             string
	metrics               MetricSink

	// entries is replaced wholesale on every mutation. Readers capture the
	// slice header exactly once under no lock (a Go slice header copy is
	// atomic with respect to the pointer/len/cap it holds at the instant of
	// assignment) and then operate on that captured, now-immutable backing
	// array — mutators never write through an old header once they've
	// published a new one.
	entries []pair[O, E]
}

// New constructs a Buffer. maxBufferSize and maxBufferedChunkSize must be
// >= 1 (spec §6); metrics may be nil, in which case a NoopSink is used.
// qualifier prefixes every metric name this Buffer emits.
func New[O cmp.Ordered, E any](maxBufferSize, maxBufferedChunkSize int, qualifier string, metrics MetricSink) *Buffer[O, E] {
	if maxBufferSize < 1 {
		maxBufferSize = 1
	}
	if maxBufferedChunkSize < 1 {
		maxBufferedChunkSize = 1
	}
	if metrics == nil {
		metrics = NoopSink{}
	}
	return &Buffer[O, E]{
		maxBufferSize:        maxBufferSize,
		maxBufferedChunkSize: maxBufferedChunkSize,
		qualifier:            qualifier,
		metrics:              metrics,
		entries:              make([]pair[O, E], 0, maxBufferSize),
	}
}

// Push appends (offset, entry) to the log. offset must be strictly greater
// than the last buffered offset, if any; otherwise Push returns
// *UnorderedErr[O] and the buffer is left unchanged. If the buffer was
// already at maxBufferSize, the oldest entry is dropped first so the
// post-state length never exceeds maxBufferSize (spec §4.1).
func (b *Buffer[O, E]) Push(offset O, entry E) error {
	var err error
	b.metrics.Timer(qualifiedName(b.qualifier, "push")).Time(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if n := len(b.entries); n > 0 {
			last := b.entries[n-1].offset
			if offset <= last {
				err = &UnorderedErr[O]{Last: last, Offered: offset}
				return
			}
		}

		next := append(make([]pair[O, E], 0, len(b.entries)+1), b.entries...)
		next = append(next, pair[O, E]{offset: offset, entry: entry})
		if len(next) > b.maxBufferSize {
			next = next[len(next)-b.maxBufferSize:]
		}
		b.entries = next
	})
	return err
}

// snapshot captures the current backing slice without taking the mutator
// lock across the caller's subsequent filtering work.
func (b *Buffer[O, E]) snapshot() []pair[O, E] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entries
}

// Slice answers a range query over offsets in (startExclusive, endInclusive],
// applying filter to each candidate entry. See sliceWindow for the three
// cases this implements from spec §4.1.2.
//
// Open question (spec §9): if startExclusive falls inside the buffered
// range but filter rejects every candidate, Slice returns an Inclusive
// with no Items, not a suffix — callers must not conflate an
// empty Inclusive result with "no more events exist in range."
func Slice[O cmp.Ordered, E, FR any](b *Buffer[O, E], startExclusive, endInclusive O, filter func(E) (FR, bool)) BufferSlice[O, FR] {
	var result BufferSlice[O, FR]
	b.metrics.Timer(qualifiedName(b.qualifier, "slice")).Time(func() {
		entries := b.snapshot()
		result = sliceWindow(entries, startExclusive, endInclusive, b.maxBufferedChunkSize, filter)
	})
	b.metrics.Histogram(qualifiedName(b.qualifier, "slice_size")).Update(int64(sliceLen[O, FR](result)))
	return result
}

func sliceLen[O cmp.Ordered, FR any](s BufferSlice[O, FR]) int {
	switch v := s.(type) {
	case Inclusive[O, FR]:
		return len(v.Items)
	case LastBufferChunkSuffix[O, FR]:
		return len(v.Items)
	default:
		return 0
	}
}

// sliceWindow implements spec §4.1.2's slice policy.
func sliceWindow[O cmp.Ordered, E, FR any](entries []pair[O, E], startExclusive, endInclusive O, maxChunk int, filter func(E) (FR, bool)) BufferSlice[O, FR] {
	startSearch := search(entries, startExclusive)
	endSearch := search(entries, endInclusive)
	startIdx := indexAfter(startSearch)
	endIdx := indexAfter(endSearch)

	startsBeforeAllBuffered := !startSearch.found && startSearch.index == 0

	if !startsBeforeAllBuffered {
		// Case 3: start within or after the buffered range. Apply the
		// filter to the raw window in forward order, capped at maxChunk.
		window := safeWindow(entries, startIdx, endIdx)
		items := make([]Item[O, FR], 0, min(len(window), maxChunk))
		for _, e := range window {
			if len(items) == maxChunk {
				break
			}
			if fr, ok := filter(e.entry); ok {
				items = append(items, Item[O, FR]{Offset: e.offset, Value: fr})
			}
		}
		return Inclusive[O, FR]{Items: items}
	}

	window := safeWindow(entries, startIdx, endIdx)

	if len(window) == 0 {
		// Case 1: nothing at or before endInclusive either.
		return LastBufferChunkSuffix[O, FR]{BufferedStartExclusive: endInclusive, Items: nil}
	}

	// Case 2: scan in reverse, collecting up to maxChunk+1 matches, then
	// reverse them; the first collected match supplies
	// BufferedStartExclusive and the rest form the returned slice.
	type match struct {
		offset O
		value  FR
	}
	collected := make([]match, 0, maxChunk+1)
	for i := len(window) - 1; i >= 0 && len(collected) < maxChunk+1; i-- {
		if fr, ok := filter(window[i].entry); ok {
			collected = append(collected, match{offset: window[i].offset, value: fr})
		}
	}
	// collected is newest-first; reverse to oldest-first.
	for l, r := 0, len(collected)-1; l < r; l, r = l+1, r-1 {
		collected[l], collected[r] = collected[r], collected[l]
	}

	if len(collected) == 0 {
		return LastBufferChunkSuffix[O, FR]{BufferedStartExclusive: window[0].offset, Items: nil}
	}

	bufferedStartExclusive := collected[0].offset
	rest := collected[1:]
	items := make([]Item[O, FR], len(rest))
	for i, m := range rest {
		items[i] = Item[O, FR]{Offset: m.offset, Value: m.value}
	}
	return LastBufferChunkSuffix[O, FR]{BufferedStartExclusive: bufferedStartExclusive, Items: items}
}

func safeWindow[O cmp.Ordered, E any](entries []pair[O, E], start, end int) []pair[O, E] {
	if start < 0 {
		start = 0
	}
	if end > len(entries) {
		end = len(entries)
	}
	if start >= end {
		return nil
	}
	return entries[start:end]
}

// Prune removes all entries with offset <= endInclusive (spec §4.1.3).
// Postcondition: the smallest remaining offset, if any, is strictly greater
// than endInclusive.
func (b *Buffer[O, E]) Prune(endInclusive O) {
	b.metrics.Timer(qualifiedName(b.qualifier, "prune")).Time(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		r := search(b.entries, endInclusive)
		cut := indexAfter(r)
		if cut <= 0 {
			return
		}
		if cut >= len(b.entries) {
			b.entries = nil
			return
		}
		b.entries = append([]pair[O, E]{}, b.entries[cut:]...)
	})
}

// Flush empties the buffer.
func (b *Buffer[O, E]) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}

// FlushArchiving empties the buffer and then hands every dropped entry to
// sink (spec §4.3 "Archive-on-flush"); the buffer stays empty even if
// sink.Archive returns an error. It is not part of the core Buffer
// contract: callers that want archival opt in explicitly.
func (b *Buffer[O, E]) FlushArchiving(sink ArchiveSink[O, E]) error {
	b.mu.Lock()
	dropped := b.entries
	b.entries = nil
	b.mu.Unlock()

	if sink == nil || len(dropped) == 0 {
		return nil
	}
	records := make([]ArchivedRecord[O, E], len(dropped))
	for i, e := range dropped {
		records[i] = ArchivedRecord[O, E]{Offset: e.offset, Entry: e.entry}
	}
	return sink.Archive(records)
}

// Len returns the number of entries currently buffered.
func (b *Buffer[O, E]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
