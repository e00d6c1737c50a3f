// Package safety gates prepared images on a content-policy check before they
// reach the oracle. The check is delegated to an external classifier and
// fails open: if the classifier itself errors, the image proceeds.
package safety

import (
	"context"
	"log"
)

// Verdict is the outcome of a content-safety check.
type Verdict struct {
	Safe   bool
	Reason string
}

// Classifier is the external content-safety collaborator.
type Classifier interface {
	// Classify returns a verdict for the image bytes, or an error if the
	// classification service itself failed.
	Classify(ctx context.Context, image []byte) (Verdict, error)
	Close() error
}

// permissive is the classifier of last resort: every image passes. Used when
// no Vision credentials are available, extending the fail-open policy to
// classifier construction.
type permissive struct{}

func (permissive) Classify(context.Context, []byte) (Verdict, error) {
	return Verdict{Safe: true}, nil
}

func (permissive) Close() error { return nil }

// Permissive returns a classifier that approves everything.
func Permissive() Classifier {
	return permissive{}
}

// Gate runs the classifier and applies the fail-open policy: a classifier
// error is logged and treated as safe, since availability is prioritized over
// precision on this non-critical-path check. An unsafe verdict short-circuits
// the pipeline for that image.
func Gate(ctx context.Context, classifier Classifier, image []byte) Verdict {
	verdict, err := classifier.Classify(ctx, image)
	if err != nil {
		log.Printf("Warning: safety classification failed, treating image as safe: %v", err)
		return Verdict{Safe: true}
	}
	return verdict
}
