package handler

import (
	"context"
	"net/http"
	"strconv"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogSearcher is what the search handler needs from the catalog client.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]catalog.Result, error)
}

// Catalog is the client the search handler proxies to; main wires it up.
var Catalog CatalogSearcher

// SearchResponse is the catalog search result list.
type SearchResponse struct {
	Games []catalog.Result `json:"games"`
	Total int              `json:"total"`
}

// SearchGames godoc
// @Summary      Search the game catalog
// @Description  Proxies a free-text search to the external game catalog. Catalog failures are retryable and never touch stored data.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        q     query  string  true   "Search query"
// @Param        limit query  int     false  "Result limit" default(10)
// @Success      200  {object}  SearchResponse
// @Failure      400  {object}  ErrorResponse "Missing query"
// @Failure      401  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse "Catalog unavailable"
// @Router       /games/search [get]
func SearchGames(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondError(c, apperr.Validation("q", "Query parameter is required"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	results, err := Catalog.Search(c.Request.Context(), query, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Games: results, Total: len(results)})
}
