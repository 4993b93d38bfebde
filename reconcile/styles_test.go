package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacOfficeSubfamily(t *testing.T) {
	for _, c := range []struct {
		sub           string
		width, weight uint16
		want          string
	}{
		{"Regular", 5, 400, "Regular"},
		{"Italic", 5, 400, "Italic Regular"},
		{"Cond Bold Oblique", 3, 700, "Italic Condensed Bold"},
		{"SB It", 7, 600, "Italic Expanded Semibold"},
		{"Book", 0, 250, "Book Ultralight"},
		{"Black", 9, 1200, "Ultra-expanded Regular"},
	} {
		assert.Equal(t, c.want, macOfficeSubfamily(c.sub, c.width, c.weight), "subfamily %q", c.sub)
	}
}

func TestWeightScale(t *testing.T) {
	for class, scale := range map[uint16]int{
		0: 1, 100: 1, 101: 2, 250: 1, 275: 2, 300: 3, 400: 4, 450: 5, 700: 7, 950: 10, 1000: 10, 1001: 4,
	} {
		assert.Equal(t, scale, weightScale(class), "weight class %d", class)
	}
}

func TestReplaceWords(t *testing.T) {
	assert.Equal(t, "Sans  Bold", replaceWords("Sans Regular Bold", regularStyles, ""))
	assert.Equal(t, "Sans Italic", replaceWords("Sans oblique", italicStyles, "Italic"))
	assert.Equal(t, "Roboto", replaceWords("Roboto", regularStyles, ""), "only whole words")
	assert.Equal(t, "A B", squeeze("  A   B "))
	assert.Equal(t, "Semibold", titleCase("SEMIBOLD"))
}
