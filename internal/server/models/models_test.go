package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdatesEmpty(t *testing.T) {
	s := "x"

	assert.True(t, UserUpdate{}.Empty())
	assert.False(t, UserUpdate{LastName: &s}.Empty())

	assert.True(t, BookmarkUpdate{}.Empty())
	assert.False(t, BookmarkUpdate{Description: &s}.Empty())
}
