package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSubmittersVisibleWhenReadAsIntersects(t *testing.T) {
	pred := FromSubmitters(
		map[Party]struct{}{"alice": {}},
		map[Party]struct{}{"bob": {}},
	)

	got := pred(map[Party]struct{}{"bob": {}, "dan": {}})
	assert.Equal(t, Visible{}, got)
}

func TestFromSubmittersNotVisibleWhenDisjoint(t *testing.T) {
	actAs := map[Party]struct{}{"alice": {}}
	readAs := map[Party]struct{}{"bob": {}}
	pred := FromSubmitters(actAs, readAs)

	got := pred(map[Party]struct{}{"carol": {}})
	nv, ok := got.(NotVisible)
	if assert.True(t, ok, "expected NotVisible, got %#v", got) {
		assert.Equal(t, actAs, nv.ActAs)
		assert.Equal(t, readAs, nv.ReadAs)
	}
}

func TestFromSubmittersEmptyStakeholdersIsNotVisible(t *testing.T) {
	pred := FromSubmitters(map[Party]struct{}{"alice": {}}, nil)
	got := pred(map[Party]struct{}{})
	_, ok := got.(NotVisible)
	assert.True(t, ok)
}
