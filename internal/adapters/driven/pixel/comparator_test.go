package pixel

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func TestCompareIdenticalImages(t *testing.T) {
	comparator := NewComparator()
	a := imaging.New(16, 16, white)
	b := imaging.New(16, 16, white)

	diff, err := comparator.Compare(a, b, 0.1)
	require.NoError(t, err)

	assert.Zero(t, diff.Mismatch)
}

func TestCompareDifferingImages(t *testing.T) {
	comparator := NewComparator()
	a := imaging.New(16, 16, white)
	b := imaging.New(16, 16, white)
	// A solid block well past anti-alias ambiguity.
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			b.Set(x, y, black)
		}
	}

	diff, err := comparator.Compare(a, b, 0.1)
	require.NoError(t, err)

	assert.Positive(t, diff.Mismatch)
	require.NotNil(t, diff.Mask)
	assert.Equal(t, a.Bounds().Size(), diff.Mask.Bounds().Size())

	// Diff-mask semantics: matching pixels stay transparent,
	// differing pixels are opaque.
	mask := imaging.Clone(diff.Mask)
	assert.Equal(t, uint8(0), mask.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0xff), mask.NRGBAAt(8, 8).A)
}

func TestCompareIsDeterministic(t *testing.T) {
	comparator := NewComparator()
	a := imaging.New(16, 16, white)
	b := imaging.New(16, 16, black)

	first, err := comparator.Compare(a, b, 0.1)
	require.NoError(t, err)
	second, err := comparator.Compare(a, b, 0.1)
	require.NoError(t, err)

	assert.Equal(t, first.Mismatch, second.Mismatch)
	assert.Equal(t, imaging.Clone(first.Mask).Pix, imaging.Clone(second.Mask).Pix)
}

func TestCompareThresholdOne(t *testing.T) {
	comparator := NewComparator()
	a := imaging.New(16, 16, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	b := imaging.New(16, 16, color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff})

	diff, err := comparator.Compare(a, b, 1.0)
	require.NoError(t, err)

	assert.Zero(t, diff.Mismatch, "maximum tolerance accepts small colour shifts")
}

func TestCompareSizeMismatch(t *testing.T) {
	comparator := NewComparator()
	a := imaging.New(16, 16, white)
	b := imaging.New(8, 8, white)

	_, err := comparator.Compare(a, b, 0.1)
	assert.Error(t, err)
}
