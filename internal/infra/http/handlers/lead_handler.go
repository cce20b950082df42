package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// APIResponse is the envelope every lead endpoint answers with. Errors
// is present only for validation failures and lists every violated
// field, not just the first.
type APIResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    any                       `json:"data,omitempty"`
	Errors  []usecase.ValidationError `json:"errors,omitempty"`
}

type ListLeadsResponse struct {
	Success    bool          `json:"success"`
	Count      int           `json:"count"`
	Data       []entity.Lead `json:"data"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
	GetUC    *usecase.GetLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	getUC *usecase.GetLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		ListUC:   listUC,
		GetUC:    getUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
	}
}

// Create handles POST /leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		var verrs usecase.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeJSON(w, http.StatusBadRequest, APIResponse{
				Success: false,
				Message: "Validation failed",
				Errors:  verrs,
			})
		case errors.Is(err, entity.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, APIResponse{
				Success: false,
				Message: "A lead with this email already exists",
			})
		default:
			log.Printf("failed to create lead: %v", err)
			writeJSON(w, http.StatusInternalServerError, APIResponse{
				Success: false,
				Message: "An error occurred while creating the lead",
			})
		}
		return
	}

	middleware.RecordLeadCreated(lead.Source)

	writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Lead created successfully",
		Data:    lead,
	})
}

// List handles GET /leads with page, limit and status query params.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{
		Status: r.URL.Query().Get("status"),
		Page:   1,
		Limit:  usecase.DefaultPageLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	result, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		log.Printf("failed to list leads: %v", err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "An error occurred while fetching leads",
		})
		return
	}

	writeJSON(w, http.StatusOK, ListLeadsResponse{
		Success:    true,
		Count:      len(result.Items),
		Data:       result.Items,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		TotalItems: result.TotalItems,
	})
}

// Get handles GET /leads/{id}.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.GetUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeJSON(w, http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Lead not found",
			})
			return
		}
		log.Printf("failed to fetch lead %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "An error occurred while fetching the lead",
		})
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    lead,
	})
}

// Update handles PUT /leads/{id} with a partial body.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		var verrs usecase.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeJSON(w, http.StatusBadRequest, APIResponse{
				Success: false,
				Message: "Validation failed",
				Errors:  verrs,
			})
		case errors.Is(err, entity.ErrLeadNotFound):
			writeJSON(w, http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Lead not found",
			})
		case errors.Is(err, entity.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, APIResponse{
				Success: false,
				Message: "A lead with this email already exists",
			})
		default:
			log.Printf("failed to update lead %s: %v", id, err)
			writeJSON(w, http.StatusInternalServerError, APIResponse{
				Success: false,
				Message: "An error occurred while updating the lead",
			})
		}
		return
	}

	middleware.RecordLeadStatusChange(lead.Status)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    lead,
	})
}

// Delete handles DELETE /leads/{id}. Hard delete; a second call on the
// same id answers 404.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.DeleteUC.Execute(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeJSON(w, http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Lead not found",
			})
			return
		}
		log.Printf("failed to delete lead %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "An error occurred while deleting the lead",
		})
		return
	}

	middleware.RecordLeadDeleted()

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    struct{}{},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
