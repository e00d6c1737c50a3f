package pipeline

import "fmt"

// EmptyBatchError indicates a request that carried no photos.
type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string {
	return "batch contains no photos"
}

// BatchSizeError indicates a request that exceeded the per-request photo limit.
type BatchSizeError struct {
	Count int
	Max   int
}

func (e *BatchSizeError) Error() string {
	return fmt.Sprintf("batch contains %d photos, maximum is %d", e.Count, e.Max)
}
