package characters

import (
	"context"
	"net/http"
	"net/url"

	"herodex/internal/api/types"
	"herodex/internal/browse"
	"herodex/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Source lists characters for a set of catalog query parameters.
type Source interface {
	ListCharacters(ctx context.Context, params url.Values) (*catalog.CharacterPage, error)
}

// Handler manages the character HTTP endpoints.
type Handler struct {
	source   Source
	pageSize int
}

// NewHandler creates a new character handler instance.
//
// Parameters:
//   - source: Catalog client
//   - pageSize: Default page size when the request gives no limit
func NewHandler(source Source, pageSize int) *Handler {
	return &Handler{
		source:   source,
		pageSize: pageSize,
	}
}

// List handles GET /api/v1/characters
//
// Query parameters:
//   - name (optional name prefix)
//   - offset (default: 0, min: 0)
//   - limit (default: configured page size, max: 100)
//
// Returns:
//   - 200 OK with the characters and pagination metadata
//   - 400 Bad Request for invalid parameters
//   - 502 Bad Gateway when the catalog call fails
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ValidationErrorResponse(err.Error()))
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.pageSize
	}
	plan := browse.Resolve(browse.Input{
		SearchTerm: req.Name,
		Action:     browse.ActionNone,
		Offset:     req.Offset,
	}, limit)

	ctx := c.Request.Context()
	page, err := h.source.ListCharacters(ctx, plan.Params)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("failure", catalog.Classify(err)).
			Int("offset", plan.State.Offset).
			Bool("filtered", plan.Filtered).
			Msg("Failed to list characters")
		c.JSON(http.StatusBadGateway, types.UpstreamErrorResponse())
		return
	}

	responses := make([]CharacterResponse, 0, len(page.Characters))
	for _, ch := range page.Characters {
		responses = append(responses, NewCharacterResponse(ch))
	}

	pageLimit := page.Limit
	if pageLimit == 0 {
		pageLimit = plan.State.PageSize
	}

	c.JSON(http.StatusOK, types.SuccessResponseWithPagination(
		ListResponse{Characters: responses, Attribution: page.AttributionText},
		types.NewPaginationResponse(plan.State.Offset, pageLimit, page.Total, page.Count),
	))
}
