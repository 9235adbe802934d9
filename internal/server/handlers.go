package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/deep-job-seek/internal/db"
	"github.com/jonathan/deep-job-seek/internal/pipeline"
)

var validate = validator.New()

// GenerateRequest is the POST /generate request body.
type GenerateRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=1"`
	TopK           int    `json:"top_k" validate:"omitempty,gte=1,lte=20"`
}

// GenerateResponse is the POST /generate response body.
type GenerateResponse struct {
	ID     string           `json:"id,omitempty"`
	Result *pipeline.Result `json:"result"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "job_description is required")
		return
	}

	result, err := s.runner.Run(r.Context(), req.JobDescription, req.TopK)
	if err != nil {
		var inputErr *pipeline.InputError
		if errors.As(err, &inputErr) {
			writeError(w, http.StatusBadRequest, inputErr.Message)
			return
		}
		log.Printf("pipeline run failed: %v", err)
		writeError(w, http.StatusBadGateway, "resume generation failed")
		return
	}

	resp := GenerateResponse{Result: result}
	if s.database != nil {
		id, saveErr := s.database.SaveResume(r.Context(), req.JobDescription, result.Resume, result.SkillFit)
		if saveErr != nil {
			// Archiving is best effort; the generated document is still returned.
			log.Printf("failed to archive resume: %v", saveErr)
		} else {
			resp.ID = id.String()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		writeError(w, http.StatusNotFound, "resume archive not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	stored, err := s.database.GetResume(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "resume not found")
		return
	}
	if err != nil {
		log.Printf("failed to load resume %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load resume")
		return
	}

	writeJSON(w, http.StatusOK, stored.Document)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		writeError(w, http.StatusNotFound, "resume archive not configured")
		return
	}

	stored, err := s.database.ListResumes(r.Context(), 20)
	if err != nil {
		log.Printf("failed to list resumes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	type item struct {
		ID             string  `json:"id"`
		JobDescription string  `json:"job_description"`
		SkillFit       float64 `json:"skill_fit"`
		CreatedAt      string  `json:"created_at"`
	}
	items := make([]item, 0, len(stored))
	for _, s := range stored {
		items = append(items, item{
			ID:             s.ID.String(),
			JobDescription: s.JobDescription,
			SkillFit:       s.SkillFit,
			CreatedAt:      s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
