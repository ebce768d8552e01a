package interp

// Map rewrites the terminal value if r is Done, propagates Failed
// unchanged, and for every pending variant wraps its continuation so the
// projection is applied only after the continuation eventually returns
// Done — it never inspects or prematurely invokes a continuation (spec
// §4.2).
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	return Bind(r, func(a A) Result[B] {
		return Done[B]{Value: f(a)}
	})
}

// Bind is Map except that f returns another Result[B], spliced in at the
// Done leaf of the original chain (spec §4.2). This is the free monad's
// flatMap: each pending variant's continuation is wrapped so resuming it
// recurses through Bind again, deferring f until the whole original chain
// bottoms out at Done.
func Bind[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	switch v := r.(type) {
	case Done[A]:
		return f(v.Value)
	case Failed[A]:
		return Failed[B]{Err: v.Err}
	case NeedContract[A]:
		return NeedContract[B]{
			ContractID: v.ContractID,
			K:          func(c *ContractInstance) Result[B] { return Bind(v.K(c), f) },
		}
	case NeedPackage[A]:
		return NeedPackage[B]{
			PackageID: v.PackageID,
			K:         func(p *Package) Result[B] { return Bind(v.K(p), f) },
		}
	case NeedKey[A]:
		return NeedKey[B]{
			Key: v.Key,
			K:   func(cid *ContractID) Result[B] { return Bind(v.K(cid), f) },
		}
	case NeedLocalKeyVisible[A]:
		return NeedLocalKeyVisible[B]{
			Stakeholders: v.Stakeholders,
			K:            func(vis VisibleByKey) Result[B] { return Bind(v.K(vis), f) },
		}
	default:
		panic("interp: unknown Result variant")
	}
}

// Sequence drives a slice of Result[A] to a single Result[[]A] that
// preserves input order (spec §4.2). It pauses on the first pending
// element; on resumption the not-yet-inspected tail is spliced through the
// same Bind discipline, so no element is examined twice and ordering is
// preserved. Error short-circuits the whole sequence.
func Sequence[A any](results []Result[A]) Result[[]A] {
	if len(results) == 0 {
		return Done[[]A]{Value: []A{}}
	}
	head := results[0]
	tail := results[1:]
	return Bind(head, func(a A) Result[[]A] {
		return Map(Sequence(tail), func(rest []A) []A {
			out := make([]A, 0, len(rest)+1)
			out = append(out, a)
			out = append(out, rest...)
			return out
		})
	})
}
