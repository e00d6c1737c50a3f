package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/d-p-harms/photoranker/internal/criteria"
	"github.com/d-p-harms/photoranker/internal/pipeline"
	"github.com/d-p-harms/photoranker/internal/types"
)

var validate = validator.New()

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Photos    []string `json:"photos" validate:"required,min=1,dive,required"`
	Criterion string   `json:"criterion,omitempty"`
}

// AnalyzeResponse represents a successful /analyze response
type AnalyzeResponse struct {
	Success  bool                   `json:"success"`
	Results  []types.AnalysisResult `json:"results"`
	Metadata types.BatchMetadata    `json:"metadata"`
}

// ErrorResponse represents a failed request
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *apiError `json:"error"`
}

// apiVersion is reported in the capability descriptor.
const apiVersion = "1.0.0"

// ConfigResponse represents the response for /config
type ConfigResponse struct {
	SupportedCriteria []string       `json:"supportedCriteria"`
	MaxPhotos         int            `json:"maxPhotos"`
	MaxBatchSize      int            `json:"maxBatchSize"`
	MinDimension      int            `json:"minDimension"`
	MaxFileBytes      int64          `json:"maxFileBytes"`
	Model             string         `json:"model"`
	Version           string         `json:"version"`
	Features          ConfigFeatures `json:"features"`
}

// ConfigFeatures describes optional capabilities clients can rely on.
type ConfigFeatures struct {
	InputFormats        []string `json:"inputFormats"`
	CriterionExtensions []string `json:"criterionExtensions"`
	SafetyFiltering     bool     `json:"safetyFiltering"`
}

// handleAnalyze runs one photo batch and returns ranked results.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, invalidArgument("Invalid request body: "+err.Error()))
		return
	}

	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, invalidArgument("photos is required and must contain at least one entry"))
		return
	}

	photos, err := decodePhotos(req.Photos)
	if err != nil {
		s.errorResponse(w, invalidArgument(err.Error()))
		return
	}

	batch, err := s.analyzer.Analyze(r.Context(), pipeline.Request{
		Photos:    photos,
		Criterion: req.Criterion,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Success:  true,
		Results:  batch.Results,
		Metadata: batch.Metadata,
	})
}

// handleConfig reports the analysis options and limits clients should apply.
func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ConfigResponse{
		SupportedCriteria: criteria.Supported(),
		MaxPhotos:         s.cfg.MaxPhotos,
		MaxBatchSize:      s.cfg.GroupSize,
		MinDimension:      s.cfg.MinDimension,
		MaxFileBytes:      s.cfg.MaxEncodedBytes,
		Model:             s.cfg.Model,
		Version:           apiVersion,
		Features: ConfigFeatures{
			InputFormats:        []string{"jpeg", "png", "gif", "webp"},
			CriterionExtensions: []string{"position", "conversationElements", "appealBreadth", "authenticityLevel"},
			SafetyFiltering:     true,
		},
	})
}

// decodePhotos decodes base64 photo payloads, tolerating data-URL prefixes.
func decodePhotos(encoded []string) ([][]byte, error) {
	photos := make([][]byte, len(encoded))
	for i, e := range encoded {
		if idx := strings.Index(e, ","); idx >= 0 && strings.HasPrefix(e, "data:") {
			e = e[idx+1:]
		}
		data, err := base64.StdEncoding.DecodeString(e)
		if err != nil {
			return nil, fmt.Errorf("photo %d is not valid base64", i+1)
		}
		photos[i] = data
	}
	return photos, nil
}
