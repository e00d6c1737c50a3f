// Package imaging normalizes arbitrary user-supplied image bytes into a
// bounded, analyzable JPEG. It is a pure function of its input: no I/O beyond
// CPU and memory.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Options bounds the transcoding behavior. Zero values are replaced by
// DefaultOptions.
type Options struct {
	MinDimension    int // reject below this (larger side), px
	MaxDimension    int // downscale above this (larger side), px
	TargetDimension int // larger side after downscaling, px
	MaxEncodedBytes int // hard ceiling on the encoded JPEG
	QualityStart    int // initial JPEG quality
	QualityStep     int // quality decrement per compression round
	QualityFloor    int // lowest quality attempted
}

// DefaultOptions returns the production transcoding bounds.
func DefaultOptions() Options {
	return Options{
		MinDimension:    500,
		MaxDimension:    2048,
		TargetDimension: 1536,
		MaxEncodedBytes: 10 << 20,
		QualityStart:    92,
		QualityStep:     5,
		QualityFloor:    60,
	}
}

// Prepared is a transcoded image ready for the safety gate and the oracle.
type Prepared struct {
	Bytes  []byte
	Width  int
	Height int
}

// Transcode decodes data, validates its dimensions, downscales oversized
// images, and re-encodes as JPEG under the size limit.
//
// Images whose larger dimension is below MinDimension fail with
// *TooSmallError. Images above MaxDimension are downscaled proportionally so
// the larger dimension equals TargetDimension; images are never upscaled.
// Encoding starts at QualityStart and steps down by QualityStep until the
// result fits under MaxEncodedBytes; if it still does not fit at
// QualityFloor, Transcode fails with *TooLargeError.
func Transcode(data []byte, opts Options) (*Prepared, error) {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if larger(width, height) < opts.MinDimension {
		return nil, &TooSmallError{Width: width, Height: height, Min: opts.MinDimension}
	}

	if larger(width, height) > opts.MaxDimension {
		img = downscale(img, opts.TargetDimension)
		bounds = img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	}

	encoded, err := encodeUnderLimit(img, opts)
	if err != nil {
		return nil, err
	}

	return &Prepared{Bytes: encoded, Width: width, Height: height}, nil
}

// downscale resizes img proportionally so its larger dimension equals target.
func downscale(img image.Image, target int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var newWidth, newHeight int
	if width >= height {
		newWidth = target
		newHeight = height * target / width
	} else {
		newHeight = target
		newWidth = width * target / height
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// encodeUnderLimit re-encodes img as JPEG, lowering quality until the output
// fits under the configured byte limit or the quality floor is reached.
func encodeUnderLimit(img image.Image, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	for quality := opts.QualityStart; ; quality -= opts.QualityStep {
		if quality < opts.QualityFloor {
			quality = opts.QualityFloor
		}

		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, &DecodeError{Cause: err}
		}

		if buf.Len() <= opts.MaxEncodedBytes {
			return append([]byte(nil), buf.Bytes()...), nil
		}
		if quality == opts.QualityFloor {
			return nil, &TooLargeError{Size: buf.Len(), Limit: opts.MaxEncodedBytes}
		}
	}
}

func larger(a, b int) int {
	if a > b {
		return a
	}
	return b
}
