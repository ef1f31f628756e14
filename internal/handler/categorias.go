package handler

import (
	"net/http"

	"pecaspos/internal/dto"
	"pecaspos/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriaHandler struct{ svc service.CategoriaService }

func NewCategoriaHandler(svc service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastra uma categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarCategoriaRequest true "Nome da categoria"
// @Success 201 {object} dto.CategoriaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/categorias [post]
func (h *CategoriaHandler) Criar(c *gin.Context) {
	var req dto.CriarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista as categorias em ordem alfabética
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoriaResponse
// @Router /v1/categorias [get]
func (h *CategoriaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary Remove uma categoria desvinculando seus produtos
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/categorias/{id} [delete]
func (h *CategoriaHandler) Excluir(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
