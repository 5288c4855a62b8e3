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

type ImageDownscaled struct {
	Size int64
	NewX uint16
	NewY uint16
	OldX uint16
	OldY uint16
}

// Downscale re-encodes the image as JPEG no larger than size on either
// axis. The face mesh works on normalized coordinates, so shrinking the
// input only cuts detection cost, not classifier accuracy.
func Downscale(size uint, reader io.Reader, writer io.Writer) (result ImageDownscaled, err error) {
	src, _, err := image.Decode(reader)
	if err != nil {
		return result, err
	}
	var newBuf bytes.Buffer
	newImage := resize.Thumbnail(size, size, src, resize.Lanczos3)
	if err = jpeg.Encode(&newBuf, newImage, &jpeg.Options{Quality: 90}); err != nil {
		return
	}
	imageRect := newImage.Bounds().Size()
	result.NewX = uint16(imageRect.X)
	result.NewY = uint16(imageRect.Y)

	imageRect = src.Bounds().Size()
	result.OldX = uint16(imageRect.X)
	result.OldY = uint16(imageRect.Y)

	result.Size, err = io.Copy(writer, &newBuf)
	return
}
