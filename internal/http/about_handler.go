package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-site/internal/service"
)

// AboutHandler sirve el contenido de "about me".
type AboutHandler struct {
	about *service.AboutService
}

func NewAboutHandler(about *service.AboutService) *AboutHandler {
	return &AboutHandler{about: about}
}

// GetAbout maneja GET /about. No depende del store.
func (h *AboutHandler) GetAbout(c *gin.Context) {
	about := h.about.Get()
	c.JSON(http.StatusOK, aboutResponse{
		Info:   about.Info,
		Image:  about.Image,
		Status: statusOK,
	})
}
