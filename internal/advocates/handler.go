package advocates

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/advocates/pkg/handlers"
	"github.com/JaimeStill/advocates/pkg/middleware"
	"github.com/JaimeStill/advocates/pkg/pagination"
	"github.com/JaimeStill/advocates/pkg/routes"
)

// Handler provides HTTP endpoints for advocate operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "advocates"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for advocate endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/advocates",
		Tags:   []string{"Advocates"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOperation(h.pagination)},
		},
	}
}

// List returns one page of advocates matching the optional searchTerm.
// Malformed paging parameters fall back to defaults; failures return a
// generic message and the cause is only logged.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		logger := h.logger.With("request_id", middleware.RequestID(r.Context()))
		handlers.RespondMessage(w, logger, http.StatusInternalServerError, FetchFailedMessage, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
