package interp

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// PackageRegistry resolves a PackageID to the highest installed Package
// version satisfying a semver constraint, grounded in
// Mindburn-Labs-helm/core/pkg/pack/matrix.go's CheckDependency/
// CheckCompatibility use of Masterminds/semver. NeedPackage only carries a
// bare PackageID (spec §3.2), so PackageRegistry treats PackageID as a
// "name@constraint" pair, falling back to an exact-name match when no "@"
// is present.
type PackageRegistry struct {
	byName map[string][]*Package
}

// NewPackageRegistry returns an empty registry; register versions with Add.
func NewPackageRegistry() *PackageRegistry {
	return &PackageRegistry{byName: make(map[string][]*Package)}
}

// Add registers pkg under pkg.Name, keyed by its semver Version.
func (r *PackageRegistry) Add(pkg *Package) error {
	if _, err := semver.NewVersion(pkg.Version); err != nil {
		return fmt.Errorf("resolvers_semver: package %s has invalid version %q: %w", pkg.Name, pkg.Version, err)
	}
	r.byName[pkg.Name] = append(r.byName[pkg.Name], pkg)
	return nil
}

// Packages returns a Resolvers.Packages function. pid is parsed as
// "name@constraint"; an unparseable or absent constraint defaults to "*"
// (any installed version). Among the versions satisfying the constraint,
// the highest is returned.
func (r *PackageRegistry) Packages() func(PackageID) *Package {
	return func(pid PackageID) *Package {
		name, constraintStr := splitPackageRef(string(pid))

		constraint, err := semver.NewConstraint(constraintStr)
		if err != nil {
			constraint, _ = semver.NewConstraint("*")
		}

		candidates := r.byName[name]
		var best *Package
		var bestVersion *semver.Version
		for _, pkg := range candidates {
			v, err := semver.NewVersion(pkg.Version)
			if err != nil || !constraint.Check(v) {
				continue
			}
			if bestVersion == nil || v.GreaterThan(bestVersion) {
				best, bestVersion = pkg, v
			}
		}
		return best
	}
}

// Versions returns the installed versions of name, sorted ascending.
func (r *PackageRegistry) Versions(name string) []string {
	candidates := r.byName[name]
	versions := make([]string, 0, len(candidates))
	for _, pkg := range candidates {
		versions = append(versions, pkg.Version)
	}
	sort.Slice(versions, func(i, j int) bool {
		vi, erri := semver.NewVersion(versions[i])
		vj, errj := semver.NewVersion(versions[j])
		if erri != nil || errj != nil {
			return versions[i] < versions[j]
		}
		return vi.LessThan(vj)
	})
	return versions
}

func splitPackageRef(ref string) (name, constraint string) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == '@' {
			return ref[:i], ref[i+1:]
		}
	}
	return ref, "*"
}
