package interp

// VisibleByKey is the closed, sealed verdict a NeedLocalKeyVisible request
// resolves to: either Visible, or NotVisible carrying the submitter's
// actAs/readAs party sets for diagnostics (spec §3.2).
type VisibleByKey interface {
	isVisibleByKey()
}

// Visible means the submitter may use the key lookup.
type Visible struct{}

func (Visible) isVisibleByKey() {}

// NotVisible means the submitter may not; ActAs/ReadAs are carried for
// diagnostics only.
type NotVisible struct {
	ActAs  map[Party]struct{}
	ReadAs map[Party]struct{}
}

func (NotVisible) isVisibleByKey() {}

// FromSubmitters derives the pure predicate spec §4.2 describes: given a
// submitter's actAs/readAs party sets, compute readers = actAs ∪ readAs,
// then for any stakeholders set, yield Visible if readers ∩ stakeholders is
// non-empty, NotVisible(actAs, readAs) otherwise. The returned function is
// pure and safe to share across calls.
func FromSubmitters(actAs, readAs map[Party]struct{}) func(stakeholders map[Party]struct{}) VisibleByKey {
	readers := make(map[Party]struct{}, len(actAs)+len(readAs))
	for p := range actAs {
		readers[p] = struct{}{}
	}
	for p := range readAs {
		readers[p] = struct{}{}
	}

	return func(stakeholders map[Party]struct{}) VisibleByKey {
		for p := range readers {
			if _, ok := stakeholders[p]; ok {
				return Visible{}
			}
		}
		return NotVisible{ActAs: actAs, ReadAs: readAs}
	}
}
