package catalog

import "strings"

// Character is a single catalog record. Only the fields the front end
// displays are decoded; everything else in the upstream record is ignored.
type Character struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Modified    string `json:"modified,omitempty"`
	ResourceURI string `json:"resourceURI,omitempty"`
	Thumbnail   Image  `json:"thumbnail"`
	URLs        []Link `json:"urls,omitempty"`
}

// Image is an upstream image reference split into path and extension.
type Image struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// URL joins the image path, a size variant (e.g. "standard_medium") and
// the extension. An empty variant yields the full-size image.
func (i Image) URL(variant string) string {
	if i.Path == "" || i.Extension == "" {
		return ""
	}
	if variant == "" {
		return i.Path + "." + i.Extension
	}
	return strings.TrimRight(i.Path, "/") + "/" + variant + "." + i.Extension
}

// Link is a typed public URL attached to a record.
type Link struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// envelope mirrors the JSON wrapper every catalog response comes in.
type envelope struct {
	Code            any        `json:"code"`
	Status          string     `json:"status"`
	Message         string     `json:"message"`
	AttributionText string     `json:"attributionText"`
	AttributionHTML string     `json:"attributionHTML"`
	Data            *container `json:"data"`
}

type container struct {
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
	Total   int         `json:"total"`
	Count   int         `json:"count"`
	Results []Character `json:"results"`
}

// CharacterPage is one window of characters plus the attribution the
// catalog requires to be displayed next to its data.
type CharacterPage struct {
	Characters      []Character
	AttributionText string
	AttributionHTML string
	Offset          int
	Limit           int
	Total           int
	Count           int
}
