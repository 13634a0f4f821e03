package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-site/internal/domain"
	"personal-site/internal/service"
)

// Textos de status que espera el front-end.
const (
	statusOK            = "all good"
	statusRetrieveError = "failed to retrieve messages from the database"
	statusSaveError     = "failed to save the message to the database"
	statusNotFound      = "not found"
)

type messagesResponse struct {
	Messages []domain.Message `json:"messages"`
	Status   string           `json:"status"`
}

type messageResponse struct {
	Message domain.Message `json:"message"`
	Status  string         `json:"status"`
}

type aboutResponse struct {
	Info   []string `json:"info"`
	Image  string   `json:"image"`
	Status string   `json:"status"`
}

type errorBody struct {
	Kind    service.Kind `json:"kind"`
	Message string       `json:"message"`
}

type errorResponse struct {
	Error  errorBody `json:"error"`
	Status string    `json:"status"`
}

// saveMessageRequest acepta JSON o formulario url-encoded.
type saveMessageRequest struct {
	Name    string `json:"name" form:"name"`
	Message string `json:"message" form:"message"`
}

// statusForKind mapea cada Kind a un código HTTP. Las fallas del store siguen
// respondiendo 400 porque el front-end depende de ese contrato.
func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func writeError(c *gin.Context, kind service.Kind, status string) {
	c.AbortWithStatusJSON(statusForKind(kind), errorResponse{
		Error: errorBody{
			Kind:    kind,
			Message: service.PublicMessage(kind),
		},
		Status: status,
	})
}
