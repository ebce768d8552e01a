package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkgResolvers(names map[PackageID]string) Resolvers {
	return Resolvers{
		Packages: func(pid PackageID) *Package {
			if n, ok := names[pid]; ok {
				return &Package{PackageID: pid, Name: n}
			}
			return nil
		},
	}
}

// TestBindRightIdentity checks Bind(r, Done) drives identically to r (spec
// §8 invariant 7, right-identity).
func TestBindRightIdentity(t *testing.T) {
	r := NeedPackageOf[int]("P", func(pkg *Package) Result[int] { return Done[int]{Value: len(pkg.Name)} })
	resolvers := pkgResolvers(map[PackageID]string{"P": "hello"})

	got, err := Drive[int](Bind(r, func(a int) Result[int] { return Done[int]{Value: a} }), resolvers)
	require.NoError(t, err)

	want, err := Drive[int](r, resolvers)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

// TestBindAssociativity checks Bind(Bind(r,f),g) == Bind(r, a => Bind(f(a),g))
// under Drive (spec §8 invariant 8, associativity).
func TestBindAssociativity(t *testing.T) {
	r := NeedPackageOf[int]("P", func(pkg *Package) Result[int] { return Done[int]{Value: len(pkg.Name)} })
	resolvers := pkgResolvers(map[PackageID]string{"P": "hello"})

	f := func(a int) Result[int] { return Done[int]{Value: a + 1} }
	g := func(a int) Result[string] { return Done[string]{Value: string(rune('a' + a%26))} }

	left := Bind(Bind(r, f), g)
	right := Bind(r, func(a int) Result[string] { return Bind(f(a), g) })

	lGot, lErr := Drive[string](left, resolvers)
	rGot, rErr := Drive[string](right, resolvers)
	require.NoError(t, lErr)
	require.NoError(t, rErr)
	assert.Equal(t, rGot, lGot)
}

func TestBindPropagatesFailedUnchanged(t *testing.T) {
	err := GenericInterpretationError("boom")
	r := Bind(Failed[int]{Err: err}, func(int) Result[int] { return Done[int]{Value: 99} })

	_, gotErr := Drive[int](r, Resolvers{})
	assert.Same(t, err, gotErr)
}

func TestMapAppliesProjectionOnlyOnceAtDone(t *testing.T) {
	calls := 0
	r := NeedPackageOf[int]("P", func(pkg *Package) Result[int] { return Done[int]{Value: len(pkg.Name)} })
	mapped := Map(r, func(a int) int {
		calls++
		return a * 10
	})
	assert.Equal(t, 0, calls, "Map must not invoke the projection before Done is reached")

	got, err := Drive[int](mapped, pkgResolvers(map[PackageID]string{"P": "hello"}))
	require.NoError(t, err)
	assert.Equal(t, 50, got)
	assert.Equal(t, 1, calls)
}

func TestSequencePreservesOrder(t *testing.T) {
	results := []Result[int]{
		Done[int]{Value: 1},
		NeedPackageOf[int]("P", func(pkg *Package) Result[int] { return Done[int]{Value: len(pkg.Name)} }),
		Done[int]{Value: 3},
	}

	got, err := Drive[[]int](Sequence(results), pkgResolvers(map[PackageID]string{"P": "hi"}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSequenceShortCircuitsOnFirstError(t *testing.T) {
	evaluated := false
	boom := GenericInterpretationError("boom")

	results := []Result[int]{
		Done[int]{Value: 1},
		Failed[int]{Err: boom},
		NeedPackageOf[int]("P", func(pkg *Package) Result[int] {
			evaluated = true
			return Done[int]{Value: len(pkg.Name)}
		}),
	}

	_, err := Drive[[]int](Sequence(results), pkgResolvers(map[PackageID]string{"P": "hi"}))
	require.Error(t, err)
	assert.Same(t, boom, err)
	assert.False(t, evaluated, "element after the failed one must never be evaluated")
}

func TestSequenceEmpty(t *testing.T) {
	got, err := Drive[[]int](Sequence[int](nil), Resolvers{})
	require.NoError(t, err)
	assert.Equal(t, []int{}, got)
}
