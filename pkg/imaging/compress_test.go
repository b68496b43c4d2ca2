package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompress(t *testing.T) {
	t.Run("Downscales Landscape Image", func(t *testing.T) {
		out, err := Compress(pngBytes(t, 1024, 256), DefaultMaxDimension, DefaultQuality)
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 512, img.Bounds().Dx())
		assert.Equal(t, 128, img.Bounds().Dy())
	})

	t.Run("Keeps Small Image Size", func(t *testing.T) {
		out, err := Compress(pngBytes(t, 100, 50), DefaultMaxDimension, DefaultQuality)
		require.NoError(t, err)

		img, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 50, img.Bounds().Dy())
	})

	t.Run("Rejects Non Image", func(t *testing.T) {
		_, err := Compress([]byte("not an image"), DefaultMaxDimension, DefaultQuality)
		assert.Error(t, err)
	})
}

func TestFitWithin(t *testing.T) {
	w, h := fitWithin(300, 1200, 512)
	assert.Equal(t, 128, w)
	assert.Equal(t, 512, h)
}

func TestJPEGDataURL(t *testing.T) {
	url := JPEGDataURL([]byte{0xFF, 0xD8})
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))
}
