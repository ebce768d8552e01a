package interp

// ContractID identifies a contract instance on the ledger.
type ContractID string

// PackageID identifies a deployed package.
type PackageID string

// Party identifies a ledger participant.
type Party string

// GlobalKeyWithMaintainers is a contract key together with the parties that
// maintain uniqueness for it.
type GlobalKeyWithMaintainers struct {
	TemplateID  string
	Key         any
	Maintainers map[Party]struct{}
}

// ContractInstance is the opaque payload a NeedContract request resolves
// to. The interpreter core never interprets its contents; it only routes
// it to whatever continuation asked for it.
type ContractInstance struct {
	ContractID ContractID
	TemplateID string
	Payload    any
	Signatories map[Party]struct{}
	Observers   map[Party]struct{}
}

// Package is the opaque payload a NeedPackage request resolves to.
type Package struct {
	PackageID PackageID
	Name      string
	Version   string
	Modules   map[string]any
}
