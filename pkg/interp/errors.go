// Package interp implements the suspendable computation the ledger
// interpreter uses: a value representing an in-progress computation that
// pauses whenever it needs an external lookup (contract, package, key,
// key-visibility) and resumes once a host supplies the datum.
package interp

import "fmt"

// ErrorDomain tags which arm of Error is populated.
type ErrorDomain string

const (
	DomainPackage         ErrorDomain = "PACKAGE"
	DomainPreprocessing   ErrorDomain = "PREPROCESSING"
	DomainInterpretation  ErrorDomain = "INTERPRETATION"
	DomainValidation      ErrorDomain = "VALIDATION"
)

// InterpretationKind distinguishes Interpretation's two sub-arms.
type InterpretationKind string

const (
	InterpretationContractNotFound InterpretationKind = "CONTRACT_NOT_FOUND"
	InterpretationGeneric          InterpretationKind = "GENERIC"
)

// Error is the single top-level error carrier spec §3.2/§7 requires,
// wrapping one of four domains. It implements Go's error interface so it
// can be returned directly from Drive.
type Error struct {
	Domain ErrorDomain

	// Generic detail, populated for Package/Preprocessing/Validation and
	// for Interpretation's Generic sub-arm.
	Message string

	// Interpretation-only fields.
	InterpretationKind InterpretationKind
	ContractID         ContractID // populated when InterpretationKind == InterpretationContractNotFound
}

func (e *Error) Error() string {
	switch e.Domain {
	case DomainInterpretation:
		if e.InterpretationKind == InterpretationContractNotFound {
			return fmt.Sprintf("interpretation: contract not found: %s", e.ContractID)
		}
		return fmt.Sprintf("interpretation: %s", e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Domain, e.Message)
	}
}

// PackageError builds a Package-domain Error.
func PackageError(message string) *Error {
	return &Error{Domain: DomainPackage, Message: message}
}

// PreprocessingError builds a Preprocessing-domain Error.
func PreprocessingError(message string) *Error {
	return &Error{Domain: DomainPreprocessing, Message: message}
}

// ValidationError builds a Validation-domain Error.
func ValidationError(message string) *Error {
	return &Error{Domain: DomainValidation, Message: message}
}

// GenericInterpretationError builds the Interpretation domain's generic
// string-carrier sub-arm.
func GenericInterpretationError(message string) *Error {
	return &Error{Domain: DomainInterpretation, InterpretationKind: InterpretationGeneric, Message: message}
}

// ContractNotFoundError builds the Interpretation domain's
// ContractNotFound(cid) sub-arm.
func ContractNotFoundError(cid ContractID) *Error {
	return &Error{Domain: DomainInterpretation, InterpretationKind: InterpretationContractNotFound, ContractID: cid}
}
