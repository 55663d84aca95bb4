package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-optimizer/internal/layout"
	"github.com/jonathan/resume-optimizer/internal/pdf"
	"github.com/jonathan/resume-optimizer/internal/resume"
	"github.com/jonathan/resume-optimizer/internal/staging"
	"github.com/jonathan/resume-optimizer/internal/styles"
)

// OptimizeRequest represents the form fields of /api/optimize.
type OptimizeRequest struct {
	JobTitle       string `validate:"required,min=1"`
	JobDescription string `validate:"required,min=1"`
}

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// OptimizeResponse represents the response for /api/optimize.
type OptimizeResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	DownloadURL   string         `json:"download_url"`
	OptimizedData *resume.Record `json:"optimized_data"`
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Resume Optimizer API is running",
	})
}

// handleOptimize runs the full pipeline for one upload: stage the file,
// extract its text, optimize against the job description, render the PDF.
// The staged upload is removed on every path.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No resume file provided")
		return
	}
	defer file.Close()

	req := OptimizeRequest{
		JobTitle:       r.FormValue("job_title"),
		JobDescription: r.FormValue("job_description"),
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job title and description are required")
		return
	}

	ext, ok := staging.AllowedExtension(header.Filename)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type. Only PDF and DOCX allowed")
		return
	}

	uploadPath, err := s.store.SaveUpload(header.Filename, file)
	if err != nil {
		log.Printf("Error staging upload: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}
	defer s.store.Remove(uploadPath)

	resumeText, err := s.extractText(uploadPath, ext)
	if err != nil {
		log.Printf("Error extracting resume text: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume")
		return
	}

	record, err := s.optimizer.Optimize(r.Context(), resumeText, req.JobTitle, req.JobDescription)
	if err != nil {
		log.Printf("Error optimizing resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to optimize resume")
		return
	}

	blocks, err := layout.Compose(record)
	if err != nil {
		log.Printf("Error composing resume layout: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	outputName, outputPath := s.store.NewOutput()
	if err := pdf.Render(blocks, styles.Letter, outputPath); err != nil {
		log.Printf("Error rendering PDF: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	s.writeJSON(w, http.StatusOK, OptimizeResponse{
		Success:       true,
		Message:       "Resume optimized successfully",
		DownloadURL:   "/api/download/" + outputName,
		OptimizedData: record,
	})
}

// handleDownload serves a rendered resume as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	path, err := s.store.OutputPath(filename)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="optimized_resume.pdf"`)
	http.ServeFile(w, r, path)
}

// handleCleanup removes staged files past the configured age.
func (s *Server) handleCleanup(w http.ResponseWriter, _ *http.Request) {
	removed, err := s.store.Cleanup(s.cleanupAge)
	if err != nil {
		log.Printf("Error cleaning staged files: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Cleanup failed")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Cleanup completed, %d files removed", removed),
	})
}
