package safety

import (
	"bytes"
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// monitored categories: a LIKELY or VERY_LIKELY likelihood on any of these
// marks the image unsafe.
var monitoredCategories = []string{"adult", "violence", "racy"}

// VisionClassifier implements Classifier using Google Cloud Vision SafeSearch.
type VisionClassifier struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionClassifier creates a SafeSearch-backed classifier.
func NewVisionClassifier(ctx context.Context, opts ...option.ClientOption) (*VisionClassifier, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionClassifier{client: client}, nil
}

// Classify runs SafeSearch detection on the image bytes.
func (c *VisionClassifier) Classify(ctx context.Context, image []byte) (Verdict, error) {
	img, err := vision.NewImageFromReader(bytes.NewReader(image))
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to build vision image: %w", err)
	}

	annotation, err := c.client.DetectSafeSearch(ctx, img, nil)
	if err != nil {
		return Verdict{}, fmt.Errorf("safe search detection failed: %w", err)
	}

	return VerdictFromLikelihoods(annotation.GetAdult(), annotation.GetViolence(), annotation.GetRacy()), nil
}

// Close releases the underlying API client.
func (c *VisionClassifier) Close() error {
	return c.client.Close()
}

// VerdictFromLikelihoods maps SafeSearch likelihoods for the monitored
// categories to a verdict. Exposed for tests; the mapping is pure.
func VerdictFromLikelihoods(likelihoods ...visionpb.Likelihood) Verdict {
	for i, l := range likelihoods {
		if likelihoodUnsafe(l) {
			category := "content"
			if i < len(monitoredCategories) {
				category = monitoredCategories[i]
			}
			return Verdict{
				Safe:   false,
				Reason: fmt.Sprintf("content policy violation: %s content detected", category),
			}
		}
	}
	return Verdict{Safe: true}
}

func likelihoodUnsafe(l visionpb.Likelihood) bool {
	return l == visionpb.Likelihood_LIKELY || l == visionpb.Likelihood_VERY_LIKELY
}
