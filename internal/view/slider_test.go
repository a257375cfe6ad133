package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSlides() []Slide {
	return []Slide{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
		{ID: 3, Title: "Third"},
	}
}

func TestSlider_StartsAtFirstSlide(t *testing.T) {
	slider := NewSlider(testSlides())

	slide, index := slider.Current()

	assert.Equal(t, 1, slide.ID)
	assert.Zero(t, index)
}

func TestSlider_Next_WrapsAtEnd(t *testing.T) {
	slider := NewSlider(testSlides())

	slider.Next()
	slider.Next()
	_, index := slider.Current()
	assert.Equal(t, 2, index)

	slider.Next()
	_, index = slider.Current()
	assert.Zero(t, index)
}

func TestSlider_Previous_WrapsAtFront(t *testing.T) {
	slider := NewSlider(testSlides())

	slider.Previous()

	slide, index := slider.Current()
	assert.Equal(t, 3, slide.ID)
	assert.Equal(t, 2, index)
}

func TestSlider_GoTo_IgnoresOutOfRange(t *testing.T) {
	slider := NewSlider(testSlides())

	slider.GoTo(2)
	_, index := slider.Current()
	assert.Equal(t, 2, index)

	slider.GoTo(7)
	_, index = slider.Current()
	assert.Equal(t, 2, index)

	slider.GoTo(-1)
	_, index = slider.Current()
	assert.Equal(t, 2, index)
}

func TestSlider_EmptyDeck_DoesNotPanic(t *testing.T) {
	slider := NewSlider(nil)

	slider.Next()
	slider.Previous()
	slider.GoTo(0)

	slide, index := slider.Current()
	assert.Zero(t, slide.ID)
	assert.Zero(t, index)
}
