package handler

import (
	"net/http"

	"pecaspos/internal/dto"
	"pecaspos/internal/service"

	"github.com/gin-gonic/gin"
)

type VendaHandler struct{ svc service.VendaService }

func NewVendaHandler(svc service.VendaService) *VendaHandler { return &VendaHandler{svc: svc} }

// Registrar godoc
// @Summary Registra uma venda direta no balcão
// @Tags vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarVendaRequest true "Itens e forma de pagamento"
// @Success 201 {object} dto.VendaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/vendas [post]
func (h *VendaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obter godoc
// @Summary Retorna uma venda pelo ID
// @Tags vendas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.VendaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/vendas/{id} [get]
func (h *VendaHandler) Obter(c *gin.Context) {
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

// Movimentacoes godoc
// @Summary Lista as movimentações de hoje agrupadas por aba
// @Tags vendas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MovimentacoesDiaResponse
// @Router /v1/movimentacoes [get]
func (h *VendaHandler) Movimentacoes(c *gin.Context) {
	resp, err := h.svc.MovimentacoesDia(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
