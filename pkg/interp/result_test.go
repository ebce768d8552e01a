package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitIsDoneOfUnit(t *testing.T) {
	got, err := Drive[struct{}](Unit(), Resolvers{})
	require.NoError(t, err)
	assert.Equal(t, struct{}{}, got)
}

func TestAssertTrueIsUnit(t *testing.T) {
	got, err := Drive[struct{}](Assert(true, GenericInterpretationError("unused")), Resolvers{})
	require.NoError(t, err)
	assert.Equal(t, struct{}{}, got)
}

func TestAssertFalseIsError(t *testing.T) {
	want := ValidationError("must be non-negative")
	_, err := Drive[struct{}](Assert(false, want), Resolvers{})
	require.Error(t, err)
	assert.Same(t, want, err)
}
