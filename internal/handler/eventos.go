package handler

import (
	"net/http"

	"github.com/Jaimelll/procesos/internal/apierror"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/service"

	"github.com/gin-gonic/gin"
)

type EventosHandler struct{ svc service.EventoService }

func NewEventosHandler(svc service.EventoService) *EventosHandler {
	return &EventosHandler{svc: svc}
}

func (h *EventosHandler) Crear(c *gin.Context) {
	procesoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), procesoID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EventosHandler) Listar(c *gin.Context) {
	procesoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), procesoID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventosHandler) ObtenerPorID(c *gin.Context) {
	procesoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "evento_id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), procesoID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Evento no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventosHandler) Actualizar(c *gin.Context) {
	procesoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "evento_id")
	if !ok {
		return
	}
	var req dto.ActualizarEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), procesoID, id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventosHandler) Eliminar(c *gin.Context) {
	procesoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "evento_id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), procesoID, id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
