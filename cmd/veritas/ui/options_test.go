package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerStartsUnset(t *testing.T) {
	p := newPicker("Content", ContentOptions)

	assert.Equal(t, "", p.Value())
	assert.Equal(t, "— select —", p.Label())
}

func TestPickerNextWrapsAround(t *testing.T) {
	p := newPicker("Length", LengthOptions)

	p.next()
	assert.Equal(t, "short", p.Value())
	assert.Equal(t, "Short (50 words)", p.Label())

	for i := 0; i < len(LengthOptions); i++ {
		p.next()
	}
	assert.Equal(t, "short", p.Value())
}

func TestPickerPrevFromUnsetLandsOnLast(t *testing.T) {
	p := newPicker("Style", StyleOptions)

	p.prev()
	assert.Equal(t, "humorous", p.Value())

	p.prev()
	assert.Equal(t, "satirical", p.Value())
}

func TestPickerReset(t *testing.T) {
	p := newPicker("Content", ContentOptions)
	p.next()
	p.reset()

	assert.Equal(t, "", p.Value())
}

func TestValidValue(t *testing.T) {
	assert.True(t, ValidValue(ContentOptions, "politics"))
	assert.True(t, ValidValue(LengthOptions, "medium"))
	assert.False(t, ValidValue(ContentOptions, "Politics"))
	assert.False(t, ValidValue(StyleOptions, ""))
	assert.False(t, ValidValue(StyleOptions, "poetic"))
}
