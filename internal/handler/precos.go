package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const precoCacheTTL = 4 * time.Hour

// PrecoHandler serves the balcão price check endpoint.
// Read-only — no side effects whatsoever.
type PrecoHandler struct {
	repo repository.ProdutoRepository
	rdb  *redis.Client
}

func NewPrecoHandler(repo repository.ProdutoRepository, rdb *redis.Client) *PrecoHandler {
	return &PrecoHandler{repo: repo, rdb: rdb}
}

// GetPrecoPorCodigo godoc
// @Summary Consulta rápida de preço pelo código do produto
// @Tags precos
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código do produto"
// @Success 200 {object} dto.PrecoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/precos/{codigo} [get]
func (h *PrecoHandler) GetPrecoPorCodigo(c *gin.Context) {
	codigo, ok := paramUint(c, "codigo")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "preco:" + c.Param("codigo")

	// 1. Try Redis cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PrecoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — query DB
	produto, err := h.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}

	resp := dto.PrecoResponse{
		Codigo:       produto.ID,
		Nome:         produto.Nome,
		PrecoVarejo:  produto.PrecoVarejo,
		PrecoAtacado: produto.PrecoAtacado,
		Estoque:      produto.Estoque,
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, precoCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
