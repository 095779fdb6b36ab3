package testutil

import (
	"testing"

	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExample(t *testing.T) {
	list := Catalog()

	tests := []struct {
		name        string
		id          string
		expectFound bool
		expectValue float64
	}{
		{name: "first entry", id: "baguette", expectFound: true, expectValue: 1.2},
		{name: "last entry", id: "jo-paris", expectFound: true, expectValue: 8.8e9},
		{name: "missing id", id: "nope", expectFound: false},
		{name: "empty id", id: "", expectFound: false},
		{name: "case sensitive", id: "Baguette", expectFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindExample(list, tt.id)
			if !tt.expectFound {
				assert.Nil(t, found)
				return
			}
			require.NotNil(t, found)
			assert.Equal(t, tt.expectValue, found.Value)
		})
	}
}

func TestFindExampleNilSlice(t *testing.T) {
	assert.Nil(t, FindExample(nil, "baguette"))
}

func TestFindExampleReturnsPointer(t *testing.T) {
	list := []examples.Example{{ID: "a", Value: 1, Label: "a"}}

	found := FindExample(list, "a")
	require.NotNil(t, found)
	assert.Same(t, &list[0], found)
}

func TestNewStoreIsDeterministic(t *testing.T) {
	first := NewStore(t, nil)
	second := NewStore(t, nil)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Pick().ID, second.Pick().ID, "pick %d", i)
	}
}

func TestCatalogIsValid(t *testing.T) {
	_, err := examples.NewStore(Catalog())
	require.NoError(t, err)
}
