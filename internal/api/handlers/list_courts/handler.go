package list_courts

import (
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
)

// CourtResponse HTTP-модель корта
type CourtResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surface   string `json:"surface"`
	BasePrice int    `json:"basePrice"`
}

type Handler struct {
	courtRepo CourtRepository
	logger    Logger
}

func NewHandler(courtRepo CourtRepository, logger Logger) *Handler {
	return &Handler{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts, err := h.courtRepo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*CourtResponse, 0, len(courts))
	for _, court := range courts {
		response = append(response, fromDomainCourt(court))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surface:   string(c.Surface),
		BasePrice: c.BasePrice,
	}
}
