package web

import (
	"context"
	"net/http"
	"net/url"

	"herodex/internal/browse"
	"herodex/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Source lists characters for a set of catalog query parameters.
type Source interface {
	ListCharacters(ctx context.Context, params url.Values) (*catalog.CharacterPage, error)
}

// Handler serves the character browser page.
// It is stateless; every request derives its own browse state.
type Handler struct {
	source   Source
	pageSize int
}

// NewHandler creates a page handler querying source in windows of pageSize.
func NewHandler(source Source, pageSize int) *Handler {
	return &Handler{
		source:   source,
		pageSize: pageSize,
	}
}

// Index handles GET /
//
// Query parameters:
//   - charSearch: optional name prefix; empty lists all characters
//   - btnPressed: "next" or "prev"; any other value keeps the offset
//   - offset: current offset; malformed values count as 0
//
// Returns:
//   - 200 OK with the rendered page
//   - 500 Internal Server Error (plain text, no detail) on any catalog failure
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	in := browse.ParseInput(c.Query("charSearch"), c.Query("btnPressed"), c.Query("offset"))
	plan := browse.Resolve(in, h.pageSize)

	page, err := h.source.ListCharacters(ctx, plan.Params)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("failure", catalog.Classify(err)).
			Str("action", in.Action.String()).
			Int("offset", plan.State.Offset).
			Bool("filtered", plan.Filtered).
			Msg("Failed to load characters")
		c.String(http.StatusInternalServerError, ErrorBody)
		return
	}

	log.Ctx(ctx).Debug().
		Int("offset", plan.State.Offset).
		Str("search", plan.State.SearchTerm).
		Int("count", len(page.Characters)).
		Msg("Rendering index")

	c.HTML(http.StatusOK, IndexTemplate, NewIndexView(page, plan.State))
}
