package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-p-harms/photoranker/internal/config"
	"github.com/d-p-harms/photoranker/internal/pipeline"
	"github.com/d-p-harms/photoranker/internal/types"
)

type stubAnalyzer struct {
	batch   *types.BatchResult
	err     error
	lastReq pipeline.Request
}

func (s *stubAnalyzer) Analyze(_ context.Context, req pipeline.Request) (*types.BatchResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

func newTestServer(analyzer BatchAnalyzer) *Server {
	return New(config.Default(), analyzer)
}

func postAnalyze(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func encodedPhoto() string {
	return base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
}

func TestHandleAnalyze_Success(t *testing.T) {
	analyzer := &stubAnalyzer{
		batch: &types.BatchResult{
			Results: []types.AnalysisResult{
				{PhotoID: "a", FileName: "photo_1", Outcome: types.OutcomeAnalyzed, Score: 90},
				{PhotoID: "b", FileName: "photo_2", Outcome: types.OutcomeAnalyzed, Score: 70},
			},
			Metadata: types.BatchMetadata{
				TotalPhotos:      2,
				BatchesProcessed: 1,
				AverageScore:     80,
				CriteriaUsed:     "best",
			},
		},
	}
	s := newTestServer(analyzer)

	rec := postAnalyze(t, s, AnalyzeRequest{
		Photos:    []string{encodedPhoto(), encodedPhoto()},
		Criterion: "best",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 90, resp.Results[0].Score)
	assert.InDelta(t, 80.0, resp.Metadata.AverageScore, 0.001)

	assert.Equal(t, "best", analyzer.lastReq.Criterion)
	assert.Equal(t, []byte("jpeg bytes"), analyzer.lastReq.Photos[0])
}

func TestHandleAnalyze_DataURLPrefixAccepted(t *testing.T) {
	analyzer := &stubAnalyzer{batch: &types.BatchResult{}}
	s := newTestServer(analyzer)

	rec := postAnalyze(t, s, AnalyzeRequest{
		Photos: []string{"data:image/jpeg;base64," + encodedPhoto()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("jpeg bytes"), analyzer.lastReq.Photos[0])
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, KindInvalidArgument, resp.Error.Kind)
}

func TestHandleAnalyze_MissingPhotos(t *testing.T) {
	s := newTestServer(&stubAnalyzer{})

	rec := postAnalyze(t, s, AnalyzeRequest{Criterion: "best"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, KindInvalidArgument, resp.Error.Kind)
}

func TestHandleAnalyze_BadBase64(t *testing.T) {
	s := newTestServer(&stubAnalyzer{})

	rec := postAnalyze(t, s, AnalyzeRequest{Photos: []string{"%%% not base64 %%%"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Message, "photo 1")
}

func TestHandleAnalyze_BatchSizeError(t *testing.T) {
	s := newTestServer(&stubAnalyzer{err: &pipeline.BatchSizeError{Count: 13, Max: 12}})

	rec := postAnalyze(t, s, AnalyzeRequest{Photos: []string{encodedPhoto()}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, KindInvalidArgument, resp.Error.Kind)
	assert.Contains(t, resp.Error.Message, "13")
}

func TestHandleAnalyze_InternalError(t *testing.T) {
	s := newTestServer(&stubAnalyzer{err: errors.New("connection reset by peer")})

	rec := postAnalyze(t, s, AnalyzeRequest{Photos: []string{encodedPhoto()}})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, KindInternal, resp.Error.Kind)
	assert.NotContains(t, resp.Error.Message, "connection reset", "internal details stay out of the envelope")
}

func TestHandleConfig(t *testing.T) {
	s := newTestServer(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.SupportedCriteria, "best")
	assert.Contains(t, resp.SupportedCriteria, "profile_order")
	assert.Equal(t, 12, resp.MaxPhotos)
	assert.Equal(t, 6, resp.MaxBatchSize)
	assert.Equal(t, 500, resp.MinDimension)
	assert.NotEmpty(t, resp.Version)
	assert.Contains(t, resp.Features.InputFormats, "webp")
	assert.Contains(t, resp.Features.CriterionExtensions, "position")
	assert.True(t, resp.Features.SafetyFiltering)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyzeRateLimited(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	s := newTestServer(&stubAnalyzer{batch: &types.BatchResult{}})

	var lastCode int
	for i := 0; i < 6; i++ {
		rec := postAnalyze(t, s, AnalyzeRequest{Photos: []string{encodedPhoto()}})
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode, "burst capacity on /analyze is exhausted")
}
