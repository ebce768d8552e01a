package interp

// Resolvers is the host-supplied set of four pure functions the driver
// invokes to answer a suspension (spec §4.2/§6). Hosts typically back these
// with a database or cache.
type Resolvers struct {
	Contracts       func(ContractID) *ContractInstance
	Packages        func(PackageID) *Package
	Keys            func(GlobalKeyWithMaintainers) *ContractID
	LocalKeyVisible func(map[Party]struct{}) VisibleByKey
}

// Drive runs r to completion against resolvers. It is a flat, iterative
// trampoline: the loop body reassigns r and continues rather than
// recursing, so stack usage does not grow with the number of suspensions
// resolved (spec §4.2, "tail-recursive by contract"). Drive is
// single-threaded with respect to a given Result and holds no resources
// across calls into resolvers, so a partially driven computation may be
// dropped safely.
func Drive[A any](r Result[A], resolvers Resolvers) (A, error) {
	for {
		switch v := r.(type) {
		case Done[A]:
			return v.Value, nil
		case Failed[A]:
			var zero A
			return zero, v.Err
		case NeedContract[A]:
			r = v.K(resolvers.Contracts(v.ContractID))
		case NeedPackage[A]:
			r = v.K(resolvers.Packages(v.PackageID))
		case NeedKey[A]:
			r = v.K(resolvers.Keys(v.Key))
		case NeedLocalKeyVisible[A]:
			r = v.K(resolvers.LocalKeyVisible(v.Stakeholders))
		default:
			var zero A
			return zero, GenericInterpretationError("interp: unknown Result variant")
		}
	}
}
