package leadapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"leadtrack/internal/importer"
	"leadtrack/internal/logs"
	"leadtrack/internal/middleware"
	"leadtrack/internal/models"
	"leadtrack/internal/repo"
)

// Upload size cap for CSV imports.
const maxUploadBytes = 10 << 20

func NewHandler(store Store) *Handler { return &Handler{store: store} }

type Handler struct {
	store Store
}

// callerID extracts the authenticated user id. The auth middleware is a
// hard precondition on every lead route, so a miss here is a wiring bug.
func callerID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := middleware.UserID(r)
	if !ok {
		models.WriteMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return 0, false
	}
	return userID, true
}

func leadID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad lead id: %w", err)
	}
	return uint(id), nil
}

// List returns the caller's leads, newest-created first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	leads, err := h.store.ListByOwner(r.Context(), userID)
	if err != nil {
		logs.Logger.Errorf("list leads: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteJSON(w, http.StatusOK, leads)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.store.Create(r.Context(), userID, repo.CreateLeadInput{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Status:       req.Status,
		DateOfCall:   req.DateOfCall,
		LastCallDate: req.LastCallDate,
		Notes:        req.Notes,
	})
	if err != nil {
		var ve *repo.ValidationError
		if errors.As(err, &ve) {
			models.WriteMessage(w, http.StatusBadRequest, ve.Msg)
			return
		}
		logs.Logger.Errorf("create lead: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteJSON(w, http.StatusCreated, lead)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, err := leadID(r)
	if err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "Invalid lead id")
		return
	}
	var req updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.store.Update(r.Context(), userID, id, repo.LeadPatch{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Status:       req.Status,
		DateOfCall:   req.DateOfCall,
		LastCallDate: req.LastCallDate,
		Notes:        req.Notes,
	})
	if err != nil {
		var ve *repo.ValidationError
		switch {
		case errors.Is(err, repo.ErrNotFound):
			models.WriteMessage(w, http.StatusNotFound, "Lead not found")
		case errors.As(err, &ve):
			models.WriteMessage(w, http.StatusBadRequest, ve.Msg)
		default:
			logs.Logger.Errorf("update lead: %v", err)
			models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	models.WriteJSON(w, http.StatusOK, lead)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, err := leadID(r)
	if err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "Invalid lead id")
		return
	}
	if err := h.store.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			models.WriteMessage(w, http.StatusNotFound, "Lead not found")
			return
		}
		logs.Logger.Errorf("delete lead: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteMessage(w, http.StatusOK, "Lead deleted successfully")
}

// Upload accepts a multipart CSV (field "csvFile"), parses it into leads
// owned by the caller and inserts the kept rows in one batch. Rows missing
// required columns are filtered out; the reported count is what was kept.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("csvFile")
	if err != nil {
		models.WriteMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	leads, err := importer.Parse(file, userID)
	if err != nil {
		if errors.Is(err, importer.ErrEmptyFile) {
			models.WriteMessage(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		logs.Logger.Errorf("parse csv: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	count, err := h.store.InsertBatch(r.Context(), leads)
	if err != nil {
		logs.Logger.Errorf("import leads: %v", err)
		models.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	models.WriteJSON(w, http.StatusOK, uploadResponse{
		Message: fmt.Sprintf("Successfully uploaded %d leads", count),
		Count:   count,
	})
}
