package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/resume"
)

type fakeOptimizer struct {
	record *resume.Record
	err    error

	gotResumeText     string
	gotJobTitle       string
	gotJobDescription string
}

func (f *fakeOptimizer) Optimize(_ context.Context, resumeText, jobTitle, jobDescription string) (*resume.Record, error) {
	f.gotResumeText = resumeText
	f.gotJobTitle = jobTitle
	f.gotJobDescription = jobDescription
	return f.record, f.err
}

func newTestServer(t *testing.T, opt *fakeOptimizer) *Server {
	t.Helper()
	dir := t.TempDir()
	s, err := New(Config{
		Port:        0,
		UploadDir:   filepath.Join(dir, "uploads"),
		OutputDir:   filepath.Join(dir, "outputs"),
		MaxUploadMB: 16,
		CleanupMins: 60,
	}, opt)
	require.NoError(t, err)
	s.extractText = func(path, fileType string) (string, error) {
		return "Jane Doe\nEngineer at Acme", nil
	}
	return s
}

// optimizeForm builds a multipart body with a resume file and the job fields.
func optimizeForm(t *testing.T, filename, jobTitle, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if filename != "" {
		part, err := mw.CreateFormFile("resume_file", filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, "%PDF-fake resume bytes")
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("job_title", jobTitle))
	require.NoError(t, mw.WriteField("job_description", jobDescription))
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleOptimize_HappyPath(t *testing.T) {
	opt := &fakeOptimizer{record: &resume.Record{
		Name:                "Jane Doe",
		ProfessionalSummary: []string{"Builds reliable systems"},
	}}
	s := newTestServer(t, opt)

	body, contentType := optimizeForm(t, "resume.pdf", "Platform Engineer", "Run the platform")
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp OptimizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.DownloadURL, "/api/download/optimized_")
	require.NotNil(t, resp.OptimizedData)
	assert.Equal(t, "Jane Doe", resp.OptimizedData.Name)

	assert.Equal(t, "Jane Doe\nEngineer at Acme", opt.gotResumeText)
	assert.Equal(t, "Platform Engineer", opt.gotJobTitle)
	assert.Equal(t, "Run the platform", opt.gotJobDescription)

	// The rendered PDF is immediately downloadable.
	name := filepath.Base(resp.DownloadURL)
	req = httptest.NewRequest(http.MethodGet, "/api/download/"+name, nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleOptimize_MissingFile(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	body, contentType := optimizeForm(t, "", "Platform Engineer", "Run the platform")
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No resume file provided")
}

func TestHandleOptimize_MissingJobFields(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	body, contentType := optimizeForm(t, "resume.pdf", "", "")
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job title and description are required")
}

func TestHandleOptimize_RejectedFileType(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	body, contentType := optimizeForm(t, "resume.txt", "Platform Engineer", "Run the platform")
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid file type")
}

func TestHandleOptimize_ExtractionFailure(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})
	s.extractText = func(path, fileType string) (string, error) {
		return "", errors.New("unreadable")
	}

	body, contentType := optimizeForm(t, "resume.pdf", "Platform Engineer", "Run the platform")
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to parse resume")
}

func TestHandleOptimize_OptimizerFailure(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{err: errors.New("model unavailable")})

	body, contentType := optimizeForm(t, "resume.pdf", "Platform Engineer", "Run the platform")
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to optimize resume")
}

func TestHandleDownload_UnknownFile(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	req := httptest.NewRequest(http.MethodGet, "/api/download/optimized_missing.pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDownload_TraversalName(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	req := httptest.NewRequest(http.MethodGet, "/api/download/..%2Fsecrets.pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCleanup(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cleanup completed")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, &fakeOptimizer{})

	req := httptest.NewRequest(http.MethodOptions, "/api/optimize", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
