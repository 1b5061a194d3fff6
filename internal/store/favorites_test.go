package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavorites_ToggleIsInvolution(t *testing.T) {
	favs := NewFavorites([]string{"3"}, nil)

	for _, id := range []string{"3", "7"} {
		before := favs.IsFavorite(id)
		favs.Toggle(id)
		assert.NotEqual(t, before, favs.IsFavorite(id))
		favs.Toggle(id)
		assert.Equal(t, before, favs.IsFavorite(id))
	}
}

func TestFavorites_SetSemantics(t *testing.T) {
	favs := NewFavorites([]string{"1", "2", "1"}, nil)
	assert.Equal(t, []string{"1", "2"}, favs.IDs())

	assert.Equal(t, []string{"1", "2", "5"}, favs.Toggle("5"))
	assert.Equal(t, []string{"2", "5"}, favs.Toggle("1"))
}

func TestFavorites_Clear(t *testing.T) {
	var persisted []string
	favs := NewFavorites([]string{"1"}, func(ids []string) { persisted = ids })

	favs.Clear()

	assert.False(t, favs.IsFavorite("1"))
	assert.NotNil(t, persisted)
	assert.Empty(t, persisted)
}
