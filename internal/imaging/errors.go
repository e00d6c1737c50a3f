package imaging

import "fmt"

// TooSmallError indicates the image's larger dimension is below the minimum
// analyzable size. The image is rejected before reaching the oracle.
type TooSmallError struct {
	Width  int
	Height int
	Min    int
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("image too small: %dx%d (minimum dimension %dpx)", e.Width, e.Height, e.Min)
}

// TooLargeError indicates the image could not be compressed under the encoded
// size limit even at the quality floor.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("image too large: %d bytes encoded at floor quality (limit %d)", e.Size, e.Limit)
}

// DecodeError indicates the input bytes are not a decodable image.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
