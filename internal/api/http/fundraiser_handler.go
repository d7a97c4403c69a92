package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/service"
)

type FundraiserHandler struct {
	fundraiserSvc service.FundraiserService
	donationSvc   service.DonationService
}

func NewFundraiserHandler(fundraiserSvc service.FundraiserService, donationSvc service.DonationService) *FundraiserHandler {
	return &FundraiserHandler{fundraiserSvc: fundraiserSvc, donationSvc: donationSvc}
}

type createFundraiserRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Purpose      string `json:"purpose"`
	GoalAmount   int64  `json:"goal_amount"`
	DurationDays int32  `json:"duration_days"`
}

func (h *FundraiserHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createFundraiserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	f, err := h.fundraiserSvc.Create(r.Context(), caller, req.Title, req.Description, req.Purpose, req.GoalAmount, req.DurationDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FundraiserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.FundraiserFilter{
		Status:       domain.FundraiserStatus(strings.ToUpper(q.Get("status"))),
		Search:       q.Get("search"),
		BusinessType: q.Get("business_type"),
		City:         q.Get("city"),
		State:        q.Get("state"),
	}

	fs, err := h.fundraiserSvc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if fs == nil {
		fs = []domain.Fundraiser{}
	}
	writeJSON(w, http.StatusOK, fs)
}

func (h *FundraiserHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.fundraiserSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FundraiserHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	fs, err := h.fundraiserSvc.ListMine(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if fs == nil {
		fs = []domain.Fundraiser{}
	}
	writeJSON(w, http.StatusOK, fs)
}

type updateFundraiserRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Purpose     *string `json:"purpose"`
}

func (h *FundraiserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateFundraiserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	f, err := h.fundraiserSvc.Update(r.Context(), caller, mux.Vars(r)["id"], req.Title, req.Description, req.Purpose)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FundraiserHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := h.fundraiserSvc.Cancel(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

type supportFundraiserRequest struct {
	Amount  int64  `json:"amount"`
	Message string `json:"message"`
}

type supportFundraiserResponse struct {
	Fundraiser  *domain.Fundraiser `json:"fundraiser"`
	GoalReached bool               `json:"goal_reached"`
}

func (h *FundraiserHandler) Support(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req supportFundraiserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	f, goalReached, err := h.fundraiserSvc.Support(r.Context(), caller, mux.Vars(r)["id"], req.Amount, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supportFundraiserResponse{Fundraiser: f, GoalReached: goalReached})
}

func (h *FundraiserHandler) DonationHistory(w http.ResponseWriter, r *http.Request) {
	caller, err := PrincipalFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	records, err := h.donationSvc.History(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.DonationRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
