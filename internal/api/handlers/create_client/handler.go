package create_client

import (
	"errors"
	"net/http"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные клиента"
)

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

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Created client: id=%d, name=%s", client.ID, client.Name)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainClient(client))
}
