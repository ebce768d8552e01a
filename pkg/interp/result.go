package interp

// Result is the closed, sealed carrier of an in-progress computation (spec
// §3.2/§9). It is one of six variants: Done, Failed, NeedContract,
// NeedPackage, NeedKey, NeedLocalKeyVisible. The unexported marker method
// keeps the sum closed to this package, matching the "closed tagged union"
// design note rather than an open interface hierarchy.
type Result[A any] interface {
	isResult()
}

// Done is the terminal success variant, carrying the result value.
type Done[A any] struct {
	Value A
}

func (Done[A]) isResult() {}

// Failed is the terminal failure variant.
type Failed[A any] struct {
	Err *Error
}

func (Failed[A]) isResult() {}

// NeedContract suspends until the host resolves cid to an optional contract
// instance; K receives the host's answer (nil if not found) and resumes the
// computation.
type NeedContract[A any] struct {
	ContractID ContractID
	K          func(*ContractInstance) Result[A]
}

func (NeedContract[A]) isResult() {}

// NeedPackage suspends until the host resolves pid to an optional package.
type NeedPackage[A any] struct {
	PackageID PackageID
	K         func(*Package) Result[A]
}

func (NeedPackage[A]) isResult() {}

// NeedKey suspends until the host resolves a global key to an optional
// contract id.
type NeedKey[A any] struct {
	Key GlobalKeyWithMaintainers
	K   func(*ContractID) Result[A]
}

func (NeedKey[A]) isResult() {}

// NeedLocalKeyVisible suspends until the host decides whether the given
// stakeholder set is visible to the submitter.
type NeedLocalKeyVisible[A any] struct {
	Stakeholders map[Party]struct{}
	K            func(VisibleByKey) Result[A]
}

func (NeedLocalKeyVisible[A]) isResult() {}

// lift wraps a pure value into a terminal Done.
func lift[A any](a A) Result[A] {
	return Done[A]{Value: a}
}

// unitResult is the cached Done(()) spec §4.2 calls "unit". Go has no
// built-in unit type; struct{} plays that role.
var unitResult Result[struct{}] = Done[struct{}]{Value: struct{}{}}

// Unit returns the cached Done(()) value.
func Unit() Result[struct{}] {
	return unitResult
}

// Assert returns Done(()) if cond holds, Error(err) otherwise (spec §4.2).
func Assert(cond bool, err *Error) Result[struct{}] {
	if cond {
		return Unit()
	}
	return Failed[struct{}]{Err: err}
}
