package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStore_Add(t *testing.T) {
	s := NewNoteStore()
	image := "file:///photos/cat.jpg"

	withImage, err := s.Add("Cat", "Photo of the cat", &image)
	require.NoError(t, err)
	plain, err := s.Add("Shopping", "Eggs, flour", nil)
	require.NoError(t, err)

	require.NotNil(t, withImage.Image)
	assert.Equal(t, image, *withImage.Image)
	assert.Nil(t, plain.Image)

	notes := s.List()
	require.Len(t, notes, 2)
	assert.Equal(t, withImage.ID, notes[0].ID)
	assert.Equal(t, plain.ID, notes[1].ID)
}

func TestNoteStore_Add_CopiesImage(t *testing.T) {
	s := NewNoteStore()
	image := "content://media/1"

	note, err := s.Add("t", "d", &image)
	require.NoError(t, err)
	image = "content://media/2"

	got, ok := s.Get(note.ID)
	require.True(t, ok)
	assert.Equal(t, "content://media/1", *got.Image)
}

func TestNoteStore_Add_RejectsBlankFields(t *testing.T) {
	s := NewNoteStore()

	_, err := s.Add(" ", "detail", nil)
	assert.ErrorIs(t, err, ErrRequiredFieldMissing)
	_, err = s.Add("title", "", nil)
	assert.ErrorIs(t, err, ErrRequiredFieldMissing)
	assert.Equal(t, 0, s.Len())
}

func TestNoteStore_Remove(t *testing.T) {
	s := NewNoteStore()
	a, _ := s.Add("a", "a", nil)
	b, _ := s.Add("b", "b", nil)

	assert.False(t, s.Remove("missing"))
	assert.True(t, s.Remove(a.ID))
	assert.False(t, s.Remove(a.ID))

	notes := s.List()
	require.Len(t, notes, 1)
	assert.Equal(t, b.ID, notes[0].ID)
}
