package handler

import (
	"net/http"

	"pecaspos/internal/dto"
	"pecaspos/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Dia godoc
// @Summary Retorna o caixa do dia com saldo derivado
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CaixaDiaResponse
// @Router /v1/caixa [get]
func (h *CaixaHandler) Dia(c *gin.Context) {
	resp, err := h.svc.Dia(c.Request.Context(), h.svc.Hoje())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Abrir godoc
// @Summary Abre o caixa de hoje com saldo inicial
// @Tags caixa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirCaixaRequest true "Saldo inicial"
// @Success 200 {object} dto.CaixaDiaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), h.svc.Hoje(), req.SaldoInicial)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Fechar godoc
// @Summary Fecha o caixa de hoje
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	if err := h.svc.Fechar(c.Request.Context(), h.svc.Hoje()); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reabrir godoc
// @Summary Reabre o caixa de hoje preservando o saldo inicial
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CaixaDiaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/reabrir [post]
func (h *CaixaHandler) Reabrir(c *gin.Context) {
	resp, err := h.svc.Reabrir(c.Request.Context(), h.svc.Hoje())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarLancamento godoc
// @Summary Registra uma entrada ou saída manual no caixa de hoje
// @Tags caixa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.LancamentoManualRequest true "Lançamento manual"
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/lancamentos [post]
func (h *CaixaHandler) RegistrarLancamento(c *gin.Context) {
	var req dto.LancamentoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RegistrarLancamento(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Historico godoc
// @Summary Lista o histórico de caixas, mais recentes primeiro
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResumoCaixaResponse
// @Router /v1/caixa/historico [get]
func (h *CaixaHandler) Historico(c *gin.Context) {
	resp, err := h.svc.Historico(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
