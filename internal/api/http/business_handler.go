package http

import (
	"net/http"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/service"
)

type BusinessHandler struct {
	businessSvc service.BusinessService
}

func NewBusinessHandler(businessSvc service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessSvc: businessSvc}
}

func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BusinessFilter{
		Search:       q.Get("search"),
		BusinessType: q.Get("business_type"),
		City:         q.Get("city"),
		State:        q.Get("state"),
	}

	businesses, err := h.businessSvc.ListBusinesses(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if businesses == nil {
		businesses = []domain.User{}
	}
	writeJSON(w, http.StatusOK, businesses)
}
