package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/middleware"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
)

const verifyRequiredMsg = "Parcel ID and security code are required."

// ParcelHandler serves HTTP endpoints for parcel resources.
type ParcelHandler struct {
	logger logx.Logger
	uc     parcelUsecase
	now    func() time.Time
}

// NewParcelHandler wires a parcelUsecase into HTTP handlers.
func NewParcelHandler(logger logx.Logger, uc parcelUsecase) *ParcelHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ParcelHandler{logger: logger, uc: uc, now: time.Now}
}

// Overview handles GET /api/parcels.
func (h *ParcelHandler) Overview(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		h.internal(w, r, "list parcels", err)
		return
	}
	st, err := h.uc.Stats(r.Context())
	if err != nil {
		h.internal(w, r, "parcel stats", err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, overviewResponse{
		Parcels: parcelsToResponse(list, h.now(), false),
		Stats:   statsToResponse(st),
	})
}

// Create handles POST /api/parcels.
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createParcelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p, err := h.uc.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/api/parcels/"+p.ID)
		writeJSON(h.logger, w, r, http.StatusCreated, parcelResponse{Parcel: parcelToResponse(p, h.now(), false)})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "All fields are required.")
	default:
		h.internal(w, r, "create parcel", err)
	}
}

// Search handles GET /api/parcels/search?q=.
func (h *ParcelHandler) Search(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.internal(w, r, "search parcels", err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, parcelsResponse{Parcels: parcelsToResponse(list, h.now(), false)})
}

// GetByID handles GET /api/parcels/{id}.
func (h *ParcelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, parcelResponse{Parcel: parcelToResponse(*p, h.now(), false)})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Parcel not found.")
	default:
		h.internal(w, r, "get parcel", err)
	}
}

// Verify handles POST /api/parcels/verify. Every domain outcome is a 200
// whose body says whether the handover happened.
func (h *ParcelHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyParcelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if strings.TrimSpace(req.ParcelID) == "" || strings.TrimSpace(req.Code) == "" {
		writeJSON(h.logger, w, r, http.StatusBadRequest, verifyParcelResponse{Message: verifyRequiredMsg})
		return
	}

	out, err := h.uc.Verify(r.Context(), req.ParcelID, req.Code)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, outcomeToResponse(out))
	case errors.Is(err, apperr.ErrInvalid):
		writeJSON(h.logger, w, r, http.StatusBadRequest, verifyParcelResponse{Message: verifyRequiredMsg})
	default:
		h.internal(w, r, "verify parcel", err)
	}
}

// Mine handles GET /api/students/me/parcels for the authenticated resident.
func (h *ParcelHandler) Mine(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok || u.Role != domain.RoleStudent {
		writeError(h.logger, w, r, http.StatusForbidden, "forbidden")
		return
	}

	list, err := h.uc.ForStudent(r.Context(), u.PhoneNumber)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid phone number")
		return
	default:
		h.internal(w, r, "student parcels", err)
		return
	}

	resp := studentParcelsResponse{Parcels: parcelsToResponse(list, h.now(), true)}
	for _, p := range list {
		switch p.Status {
		case domain.StatusPending:
			resp.Pending++
		case domain.StatusCollected:
			resp.Collected++
		}
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

func (h *ParcelHandler) internal(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error(op,
		logx.String("req_id", reqID(r.Context())),
		logx.Err(err),
	)
	writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
}
