package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImageValidation(t *testing.T) {
	now := time.Now()

	valid := &Image{ID: 1, File: "images/abc.jpg", Published: now, Modified: now}
	assert.NoError(t, valid.Validate())

	// Description is optional
	valid.Description = "A picture of a bridge"
	assert.NoError(t, valid.Validate())

	missingFile := &Image{ID: 1, Published: now, Modified: now}
	assert.Error(t, missingFile.Validate())
}

func TestImageBeforeCreate(t *testing.T) {
	img := &Image{File: "images/abc.jpg"}

	img.BeforeCreate()
	assert.False(t, img.Published.IsZero())
	assert.False(t, img.Modified.IsZero())

	// A later save keeps Published but refreshes Modified
	published := img.Published
	time.Sleep(10 * time.Millisecond)
	img.BeforeCreate()
	assert.Equal(t, published, img.Published)
	assert.True(t, img.Modified.After(published))
}
