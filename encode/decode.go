package encode

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeFile decodes the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are
// supported; the returned string is the format name.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("couldn't read %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			Logger().Warn("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("couldn't read %s: %w", path, err)
	}
	Logger().Debug("decoded image", "file", path, "format", format, "bounds", img.Bounds())
	return img, format, nil
}

// EncodeFile decodes the image at path and encodes it.
func EncodeFile(path string) (*Packed, error) {
	img, _, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Encode(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
