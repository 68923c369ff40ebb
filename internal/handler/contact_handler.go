package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cortexa-ai/backend/internal/model"
	"github.com/cortexa-ai/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission.
type ContactHandler struct {
	submissionService service.SubmissionService
	// exposeErrors echoes storage error detail to clients. Enabled
	// outside production only.
	exposeErrors bool
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(submissionService service.SubmissionService, exposeErrors bool) *ContactHandler {
	return &ContactHandler{submissionService: submissionService, exposeErrors: exposeErrors}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// submitResponse is the JSON envelope for every POST /api/contact
// outcome. Success is the stable discriminant the frontend switches on.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Submit handles POST /api/contact.
// name, email, and message are required after trimming; company is
// optional; message max 5000 chars. Each valid POST creates a new row:
// identical payloads are not deduplicated.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Error:   "Missing required fields",
		})
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Error:   "Message too long",
		})
		return
	}

	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	if err := h.submissionService.Submit(r.Context(), sub); err != nil {
		slog.Error("contact submission failed", "error", err)
		resp := submitResponse{
			Success: false,
			Error:   "Failed to save submission",
		}
		if h.exposeErrors {
			resp.Message = err.Error()
		}
		writeSubmitResponse(w, http.StatusInternalServerError, resp)
		return
	}

	writeSubmitResponse(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Thank you for reaching out. Your message has been received.",
		ID:      sub.ID,
	})
}

func writeSubmitResponse(w http.ResponseWriter, status int, resp submitResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
