package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/service"
)

type CollaborationHandler struct {
	collabSvc service.CollaborationService
}

func NewCollaborationHandler(collabSvc service.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{collabSvc: collabSvc}
}

type sendCollaborationRequest struct {
	ReceiverID string `json:"receiver_id"`
	Type       string `json:"collaboration_type"`
	Message    string `json:"message"`
}

func (h *CollaborationHandler) Send(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req sendCollaborationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.collabSvc.Send(r.Context(), caller, req.ReceiverID, domain.CollaborationType(req.Type), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CollaborationHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	cs, err := h.collabSvc.List(r.Context(), caller,
		domain.CollaborationDirection(strings.ToLower(q.Get("direction"))),
		domain.CollaborationStatus(strings.ToUpper(q.Get("status"))))
	if err != nil {
		writeError(w, err)
		return
	}
	if cs == nil {
		cs = []domain.Collaboration{}
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CollaborationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.collabSvc.Stats(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *CollaborationHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.collabSvc.Get(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type respondCollaborationRequest struct {
	Status          string `json:"status"`
	ResponseMessage string `json:"response_message"`
}

func (h *CollaborationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req respondCollaborationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.collabSvc.Respond(r.Context(), caller, mux.Vars(r)["id"], domain.CollaborationStatus(req.Status), req.ResponseMessage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CollaborationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.collabSvc.Complete(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CollaborationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.collabSvc.Cancel(r.Context(), caller, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
