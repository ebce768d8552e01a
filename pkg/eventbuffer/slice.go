package eventbuffer

import "cmp"

// pair is an (Offset, Entry) element stored verbatim inside a Buffer.
type pair[O cmp.Ordered, E any] struct {
	offset O
	entry  E
}

// Item is one (Offset, projected-entry) result of a range query.
type Item[O cmp.Ordered, FR any] struct {
	Offset O
	Value  FR
}

// BufferSlice is the closed, sealed result of a range query (spec §3.1).
// It is one of exactly two variants: Inclusive or LastBufferChunkSuffix.
// The interface's unexported marker method keeps the sum closed to this
// package, matching the "closed tagged union, not an open hierarchy"
// design note (spec §9).
type BufferSlice[O cmp.Ordered, FR any] interface {
	isBufferSlice()
}

// Inclusive is returned when the query's startExclusive lies at or past the
// first buffered offset: Items is a contiguous, projected, capped prefix of
// the requested window.
type Inclusive[O cmp.Ordered, FR any] struct {
	Items []Item[O, FR]
}

func (Inclusive[O, FR]) isBufferSlice() {}

// LastBufferChunkSuffix is returned when the query's startExclusive is
// strictly before the first buffered offset: the buffer cannot honour the
// left endpoint, so it returns the tail maxBufferedChunkSize matches and
// reports BufferedStartExclusive, the offset the caller must fetch
// everything up to from the durable store.
type LastBufferChunkSuffix[O cmp.Ordered, FR any] struct {
	BufferedStartExclusive O
	Items                  []Item[O, FR]
}

func (LastBufferChunkSuffix[O, FR]) isBufferSlice() {}
