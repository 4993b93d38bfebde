package ot

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cffIndexBytes creates a CFF INDEX with 1-byte offsets.
func cffIndexBytes(items ...[]byte) []byte {
	if len(items) == 0 {
		return []byte{0, 0}
	}
	b := []byte{0, byte(len(items)), 1, 1}
	off := 1
	for _, item := range items {
		off += len(item)
		b = append(b, byte(off))
	}
	for _, item := range items {
		b = append(b, item...)
	}
	return b
}

func testCFF(dict []byte, strs ...[]byte) []byte {
	cff := []byte{1, 0, 4, 1}
	cff = append(cff, cffIndexBytes([]byte("TestFont-Bold"))...)
	cff = append(cff, cffIndexBytes(dict)...)
	return append(cff, cffIndexBytes(strs...)...)
}

func TestParseCFF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	dict := []byte{
		248, 27, 0, // version, SID 391
		248, 28, 3, // FamilyName, SID 392
		248, 20, 4, // Weight, SID 384
		30, 0xE1, 0x2A, 0x5F, 12, 2, // ItalicAngle -12.5
		140, 12, 1, // isFixedPitch
		39, 12, 3, // UnderlinePosition -100
		189, 12, 4, // UnderlineThickness 50
		89, 139, 28, 0x03, 0xE8, 250, 24, 5, // FontBBox
	}
	top, err := ParseCFF(testCFF(dict, []byte("1.000"), []byte("Test Family")))
	require.NoError(t, err)
	assert.Equal(t, "TestFont-Bold", top.FontName)
	assert.Equal(t, Some("1.000"), top.Version)
	assert.Equal(t, Some("Test Family"), top.FamilyName)
	assert.Equal(t, Some("Bold"), top.Weight)
	assert.Equal(t, Some(-12.5), top.ItalicAngle)
	assert.Equal(t, Some(true), top.IsFixedPitch)
	assert.Equal(t, Some(-100.0), top.UnderlinePosition)
	assert.Equal(t, Some(50.0), top.UnderlineThickness)
	assert.Equal(t, Some([4]float64{-50, 0, 1000, 900}), top.FontBBox)
	assert.True(t, top.FullName.IsNone())
	assert.True(t, top.Notice.IsNone())
}

func TestParseCFFStringOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	top, err := ParseCFF(testCFF([]byte{248, 30, 2})) // FullName, SID 394
	require.NoError(t, err)
	assert.True(t, top.FullName.IsNone())
}

func TestParseCFFRejectsBrokenData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for i, data := range [][]byte{
		{1, 0},
		{2, 0, 4, 1, 0, 0},
		{1, 0, 4, 1, 0, 1, 1, 1, 9, 'X'},     // name index overflows
		testCFF([]byte{30, 0xE1, 0x2A}),      // unterminated real
		testCFF([]byte{255, 0, 0, 0, 0, 12}), // invalid operand
		{1, 0, 4, 1, 0, 0, 0, 0, 0, 0},       // empty font set
	} {
		_, err := ParseCFF(data)
		assert.ErrorIs(t, err, ErrCFF, "case %d", i)
	}
}
