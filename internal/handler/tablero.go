package handler

import (
	"net/http"

	"github.com/Jaimelll/procesos/internal/apierror"
	"github.com/Jaimelll/procesos/internal/service"

	"github.com/gin-gonic/gin"
)

type TableroHandler struct{ svc service.TableroService }

func NewTableroHandler(svc service.TableroService) *TableroHandler {
	return &TableroHandler{svc: svc}
}

// Resumen serves the dashboard: timelines for the selected dirección (or
// the busiest one by default) plus the portfolio rollups.
func (h *TableroHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context(), c.Query("direccion"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al construir el tablero"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
