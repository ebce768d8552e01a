package interp

import "fmt"

// NeedPackageOf issues a NeedPackage request for pid. On a nil resolution
// it converts to Error(Interpretation.Generic("Couldn't find package
// <pid>")); on a non-nil resolution it invokes k(pkg) (spec §4.2).
func NeedPackageOf[A any](pid PackageID, k func(*Package) Result[A]) Result[A] {
	return NeedPackage[A]{
		PackageID: pid,
		K: func(pkg *Package) Result[A] {
			if pkg == nil {
				return Failed[A]{Err: GenericInterpretationError(fmt.Sprintf("Couldn't find package %s", pid))}
			}
			return k(pkg)
		},
	}
}

// NeedContractOf issues a NeedContract request for cid. On a nil resolution
// it converts to Error(Interpretation.ContractNotFound(cid)); on a non-nil
// resolution it invokes k(inst) (spec §4.2).
func NeedContractOf[A any](cid ContractID, k func(*ContractInstance) Result[A]) Result[A] {
	return NeedContract[A]{
		ContractID: cid,
		K: func(inst *ContractInstance) Result[A] {
			if inst == nil {
				return Failed[A]{Err: ContractNotFoundError(cid)}
			}
			return k(inst)
		},
	}
}
