package handler

import (
	"net/http"
	"strconv"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrcamentoHandler struct{ svc service.OrcamentoService }

func NewOrcamentoHandler(svc service.OrcamentoService) *OrcamentoHandler {
	return &OrcamentoHandler{svc: svc}
}

// Criar godoc
// @Summary Cria um orçamento em aberto
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarOrcamentoRequest true "Dados do cliente e da moto"
// @Success 201 {object} dto.OrcamentoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/orcamentos [post]
func (h *OrcamentoHandler) Criar(c *gin.Context) {
	var req dto.CriarOrcamentoRequest
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
// @Summary Lista os orçamentos, mais recentes primeiro
// @Tags orcamentos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OrcamentoResponse
// @Router /v1/orcamentos [get]
func (h *OrcamentoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary Retorna um orçamento pelo ID
// @Tags orcamentos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do orçamento"
// @Success 200 {object} dto.OrcamentoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/orcamentos/{id} [get]
func (h *OrcamentoHandler) Obter(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary Adiciona um item ao orçamento aberto
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do orçamento"
// @Param body body dto.AddItemOrcamentoRequest true "Produto e quantidade"
// @Success 200 {object} dto.OrcamentoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/orcamentos/{id}/itens [post]
func (h *OrcamentoHandler) AddItem(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.AddItemOrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddItem(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveItem godoc
// @Summary Remove um item do orçamento pela posição
// @Tags orcamentos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do orçamento"
// @Param posicao path int true "Posição do item"
// @Success 200 {object} dto.OrcamentoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/orcamentos/{id}/itens/{posicao} [delete]
func (h *OrcamentoHandler) RemoveItem(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	posicao, err := strconv.Atoi(c.Param("posicao"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("posição inválida"))
		return
	}
	resp, err := h.svc.RemoveItem(c.Request.Context(), id, posicao)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Fechar godoc
// @Summary Fecha o orçamento convertendo-o em venda
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do orçamento"
// @Param body body dto.FecharOrcamentoRequest true "Forma de pagamento"
// @Success 200 {object} dto.FecharOrcamentoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/orcamentos/{id}/fechar [post]
func (h *OrcamentoHandler) Fechar(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.FecharOrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), id, req.FormaPagamento)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Enviar godoc
// @Summary Envia o orçamento em PDF por email (assíncrono)
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do orçamento"
// @Param body body dto.EnviarOrcamentoRequest true "Email do destinatário"
// @Success 202
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/orcamentos/{id}/enviar [post]
func (h *OrcamentoHandler) Enviar(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarOrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Enviar(c.Request.Context(), id, req.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
