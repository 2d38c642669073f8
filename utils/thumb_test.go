package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThumb(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, img))

	var out bytes.Buffer
	n, err := CreateThumb(100, &src, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(out.Len()), n)

	thumb, err := jpeg.Decode(&out)
	require.NoError(t, err)
	bounds := thumb.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 100)
	assert.LessOrEqual(t, bounds.Dy(), 100)
}

func TestCreateThumbBadInput(t *testing.T) {
	var out bytes.Buffer
	_, err := CreateThumb(100, bytes.NewReader([]byte("not an image")), &out)
	assert.Error(t, err)
}
