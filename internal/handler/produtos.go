package handler

import (
	"net/http"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutoHandler struct{ svc service.ProdutoService }

func NewProdutoHandler(svc service.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastra um produto com código sequencial
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarProdutoRequest true "Dados do produto"
// @Success 201 {object} dto.ProdutoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/produtos [post]
func (h *ProdutoHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
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
// @Summary Lista produtos com busca por código ou nome
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param q query string false "Código exato ou substring do nome"
// @Param categoria_id query int false "Filtra por categoria"
// @Success 200 {array} dto.ProdutoResponse
// @Router /v1/produtos [get]
func (h *ProdutoHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtro inválido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary Retorna um produto pelo código
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código do produto"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/produtos/{codigo} [get]
func (h *ProdutoHandler) Obter(c *gin.Context) {
	codigo, ok := paramUint(c, "codigo")
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), codigo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary Atualiza campos de um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código do produto"
// @Param body body dto.AtualizarProdutoRequest true "Campos a atualizar"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/produtos/{codigo} [put]
func (h *ProdutoHandler) Atualizar(c *gin.Context) {
	codigo, ok := paramUint(c, "codigo")
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), codigo, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary Remove um produto do catálogo
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código do produto"
// @Success 204
// @Router /v1/produtos/{codigo} [delete]
func (h *ProdutoHandler) Excluir(c *gin.Context) {
	codigo, ok := paramUint(c, "codigo")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), codigo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
