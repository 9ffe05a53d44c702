package handler

import (
	"net/http"
	"strconv"

	"github.com/Jaimelll/procesos/internal/apierror"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler exposes the administrator-maintained Parametro/Formula
// reference tables.
type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) CrearParametro(c *gin.Context) {
	var req dto.CrearParametroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearParametro(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarParametros(c *gin.Context) {
	resp, err := h.svc.ListarParametros(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar parametros"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) CrearFormula(c *gin.Context) {
	var req dto.CrearFormulaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearFormula(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarFormulas(c *gin.Context) {
	parametroID, err := strconv.ParseUint(c.Query("parametro_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametro_id invalido"))
		return
	}
	resp, err := h.svc.ListarFormulas(c.Request.Context(), uint(parametroID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar formulas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) EliminarFormula(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarFormula(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Nombres serves the distinct display names of a group for filter dropdowns.
func (h *CatalogoHandler) Nombres(c *gin.Context) {
	grupoID, err := strconv.ParseUint(c.Query("grupo"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("grupo invalido"))
		return
	}
	resp, err := h.svc.Nombres(c.Request.Context(), uint(grupoID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar nombres"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"nombres": resp})
}
