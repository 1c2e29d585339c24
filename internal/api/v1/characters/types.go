// Package characters defines the JSON view of the character catalog.
package characters

import "herodex/internal/catalog"

// ThumbnailVariant is the image size requested for API thumbnails.
const ThumbnailVariant = "standard_medium"

// ListRequest represents the query parameters of GET /api/v1/characters.
//
// Optional fields:
//   - name: name prefix filter (max 100 chars)
//   - offset: result offset (min 0)
//   - limit: page size (1-100, default: configured page size)
type ListRequest struct {
	Name   string `form:"name" binding:"omitempty,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CharacterResponse represents a character in API responses.
type CharacterResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Modified     string         `json:"modified,omitempty"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Links        []catalog.Link `json:"links,omitempty"`
}

// ListResponse is the data payload of a character listing.
type ListResponse struct {
	Characters  []CharacterResponse `json:"characters"`
	Attribution string              `json:"attribution,omitempty"`
}

// NewCharacterResponse maps a catalog character onto its API representation.
func NewCharacterResponse(ch catalog.Character) CharacterResponse {
	return CharacterResponse{
		ID:           ch.ID,
		Name:         ch.Name,
		Description:  ch.Description,
		Modified:     ch.Modified,
		ThumbnailURL: ch.Thumbnail.URL(ThumbnailVariant),
		Links:        ch.URLs,
	}
}
