package list_clients

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/internal/service/clients"
	"github.com/tennispark/TP-AdminService/internal/service/clients/models"
)

const msgInvalidStatus = "неизвестный статус клиента"

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients?search=...&status=active|vip|inactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListClientsRequest{Search: query.Get("search")}
	if status := query.Get("status"); status != "" && status != "all" {
		clientStatus := domain.ClientStatus(status)
		req.Status = &clientStatus
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("GET /clients - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients - Failed to list clients: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := make([]*handlers.ClientResponse, 0, len(list))
	for _, client := range list {
		response = append(response, handlers.FromDomainClient(client))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
