package handler

import (
	"errors"
	"net/http"

	"github.com/Jaimelll/procesos/internal/apierror"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/service"
	"github.com/Jaimelll/procesos/internal/timeline"

	"github.com/gin-gonic/gin"
)

type ProcesosHandler struct{ svc service.ProcesoService }

func NewProcesosHandler(svc service.ProcesoService) *ProcesosHandler {
	return &ProcesosHandler{svc: svc}
}

func (h *ProcesosHandler) Crear(c *gin.Context) {
	var req dto.CrearProcesoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProcesosHandler) Listar(c *gin.Context) {
	var filter dto.ProcesoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar procesos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcesosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Proceso no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcesosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProcesoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcesosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Timeline serves the segmented state timeline consumed by the Gantt chart.
func (h *ProcesosHandler) Timeline(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Timeline(c.Request.Context(), id)
	switch {
	case errors.Is(err, timeline.ErrFechaRequerida):
		// Data-quality contract violation, distinguishable from not-found.
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case err != nil:
		c.JSON(http.StatusNotFound, apierror.New("Proceso no encontrado"))
	default:
		c.JSON(http.StatusOK, resp)
	}
}
