package utils

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

// CreateThumb decodes an image, scales it to fit size x size and writes it
// back as JPEG. Returns the number of bytes written.
func CreateThumb(size uint, reader io.Reader, writer io.Writer) (int64, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 90}); err != nil {
		return 0, err
	}
	return io.Copy(writer, &buf)
}
