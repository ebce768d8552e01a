package eventbuffer

import "testing"

func identity[E any]() func(E) (E, bool) {
	return func(e E) (E, bool) { return e, true }
}

func TestPushThenSliceInclusive(t *testing.T) {
	b := New[int, string](4, 10, "test", nil)
	must(t, b.Push(1, "A"))
	must(t, b.Push(2, "B"))
	must(t, b.Push(3, "C"))

	got := Slice[int, string, string](b, 1, 3, identity[string]())
	inc, ok := got.(Inclusive[int, string])
	if !ok {
		t.Fatalf("expected Inclusive, got %T", got)
	}
	wantOffsets(t, inc.Items, []int{2, 3})
}

func TestPushEviction(t *testing.T) {
	b := New[int, string](2, 10, "test", nil)
	must(t, b.Push(1, "A"))
	must(t, b.Push(2, "B"))
	must(t, b.Push(3, "C"))

	if b.Len() != 2 {
		t.Fatalf("expected length 2 after eviction, got %d", b.Len())
	}

	got := Slice[int, string, string](b, 0, 3, identity[string]())
	suf, ok := got.(LastBufferChunkSuffix[int, string])
	if !ok {
		t.Fatalf("expected LastBufferChunkSuffix, got %T", got)
	}
	if suf.BufferedStartExclusive != 2 {
		t.Fatalf("expected bufferedStartExclusive=2, got %v", suf.BufferedStartExclusive)
	}
	wantOffsets(t, suf.Items, []int{3})
}

func TestSliceEmptyBufferSuffix(t *testing.T) {
	b := New[int, string](4, 10, "test", nil)
	got := Slice[int, string, string](b, 0, 5, identity[string]())
	suf, ok := got.(LastBufferChunkSuffix[int, string])
	if !ok {
		t.Fatalf("expected LastBufferChunkSuffix, got %T", got)
	}
	if suf.BufferedStartExclusive != 5 {
		t.Fatalf("expected bufferedStartExclusive=5, got %v", suf.BufferedStartExclusive)
	}
	if len(suf.Items) != 0 {
		t.Fatalf("expected empty items, got %v", suf.Items)
	}
}

func TestPruneBoundary(t *testing.T) {
	b := New[int, string](4, 10, "test", nil)
	must(t, b.Push(1, "A"))
	must(t, b.Push(2, "B"))
	must(t, b.Push(3, "C"))

	b.Prune(2)
	if b.Len() != 1 {
		t.Fatalf("expected length 1 after prune(2), got %d", b.Len())
	}
	snap := b.snapshot()
	if len(snap) != 1 || snap[0].offset != 3 || snap[0].entry != "C" {
		t.Fatalf("expected remaining log [(3,C)], got %+v", snap)
	}

	b.Prune(3)
	if b.Len() != 0 {
		t.Fatalf("expected empty buffer after prune(3), got %d", b.Len())
	}
}

func TestUnorderedPush(t *testing.T) {
	b := New[int, string](4, 10, "test", nil)
	must(t, b.Push(2, "A"))

	err := b.Push(2, "B")
	ue, ok := err.(*UnorderedErr[int])
	if !ok {
		t.Fatalf("expected *UnorderedErr[int], got %T (%v)", err, err)
	}
	if ue.Last != 2 || ue.Offered != 2 {
		t.Fatalf("expected Last=2 Offered=2, got %+v", ue)
	}

	err = b.Push(1, "C")
	ue, ok = err.(*UnorderedErr[int])
	if !ok {
		t.Fatalf("expected *UnorderedErr[int], got %T (%v)", err, err)
	}
	if ue.Last != 2 || ue.Offered != 1 {
		t.Fatalf("expected Last=2 Offered=1, got %+v", ue)
	}
}

func TestFlush(t *testing.T) {
	b := New[int, string](4, 10, "test", nil)
	must(t, b.Push(1, "A"))
	b.Flush()
	if b.Len() != 0 {
		t.Fatalf("expected empty buffer after flush, got %d", b.Len())
	}
}

func TestInclusiveEmptyWhenFilterRejectsEverything(t *testing.T) {
	b := New[int, string](4, 10, "test", nil)
	must(t, b.Push(1, "A"))
	must(t, b.Push(2, "B"))

	reject := func(string) (string, bool) { return "", false }
	got := Slice[int, string, string](b, 1, 2, reject)
	inc, ok := got.(Inclusive[int, string])
	if !ok {
		t.Fatalf("open-question case must return Inclusive, got %T", got)
	}
	if len(inc.Items) != 0 {
		t.Fatalf("expected empty items, got %v", inc.Items)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func wantOffsets[FR any](t *testing.T, items []Item[int, FR], want []int) {
	t.Helper()
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(items), items)
	}
	for i, o := range want {
		if items[i].Offset != o {
			t.Fatalf("expected offset %d at index %d, got %d", o, i, items[i].Offset)
		}
	}
}
