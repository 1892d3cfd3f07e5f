package get_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/service/clients"
)

const (
	msgInvalidClientID = "некорректный идентификатор клиента"
	msgClientNotFound  = "клиент не найден"
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

// Handle GET /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{clientId} - Invalid client id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.Get(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("GET /clients/{clientId} - Client not found: id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/{clientId} - Failed to get client: id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
