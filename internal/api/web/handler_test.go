package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"herodex/internal/browse"
	"herodex/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource records the last query and returns a canned result.
type stubSource struct {
	page   *catalog.CharacterPage
	err    error
	params url.Values
	calls  int
}

func (s *stubSource) ListCharacters(ctx context.Context, params url.Values) (*catalog.CharacterPage, error) {
	s.calls++
	s.params = params
	return s.page, s.err
}

func newRouter(t *testing.T, src Source) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, SetupRoutes(r, src, 20))
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestIndexRendersCharacters(t *testing.T) {
	src := &stubSource{page: &catalog.CharacterPage{
		Characters: []catalog.Character{
			{ID: 1, Name: "A", Thumbnail: catalog.Image{Path: "http://img.example.com/a", Extension: "jpg"}},
			{ID: 2, Name: "B & C", Description: "two of them"},
		},
		AttributionHTML: `<a href="https://example.com">Data provided by Example</a>`,
	}}
	r := newRouter(t, src)

	w := get(r, "/?btnPressed=next&offset=0")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, `<h2>A</h2>`)
	assert.Contains(t, body, `<h2>B &amp; C</h2>`)
	assert.Contains(t, body, `http://img.example.com/a/standard_medium.jpg`)
	assert.Contains(t, body, `name="offset" value="20"`)
	assert.Contains(t, body, `<a href="https://example.com">Data provided by Example</a>`)
	assert.NotContains(t, body, `value="prev" disabled`)

	assert.Equal(t, "20", src.params.Get(browse.ParamOffset))
	assert.Equal(t, "20", src.params.Get(browse.ParamLimit))
	assert.Empty(t, src.params.Get(browse.ParamNameStartsWith))
}

func TestIndexSearchRoundTrip(t *testing.T) {
	src := &stubSource{page: &catalog.CharacterPage{Characters: []catalog.Character{{ID: 9, Name: "Spider-Man"}}}}
	r := newRouter(t, src)

	w := get(r, "/?charSearch=Spider&btnPressed=prev&offset=40")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Spider", src.params.Get(browse.ParamNameStartsWith))
	assert.Equal(t, "20", src.params.Get(browse.ParamOffset))

	body := w.Body.String()
	assert.Contains(t, body, `name="charSearch" value="Spider"`)
	assert.Contains(t, body, `name="offset" value="20"`)
}

func TestIndexFirstPage(t *testing.T) {
	src := &stubSource{page: &catalog.CharacterPage{Characters: []catalog.Character{}}}
	r := newRouter(t, src)

	w := get(r, "/?offset=garbage&btnPressed=sideways")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", src.params.Get(browse.ParamOffset))

	body := w.Body.String()
	assert.Contains(t, body, `name="offset" value="0"`)
	assert.Contains(t, body, `value="prev" disabled`)
	assert.Contains(t, body, "No characters found.")
}

func TestIndexEscapesSearchTerm(t *testing.T) {
	src := &stubSource{page: &catalog.CharacterPage{Characters: []catalog.Character{}}}
	r := newRouter(t, src)

	w := get(r, "/?charSearch="+url.QueryEscape(`"><script>alert(1)</script>`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
}

func TestIndexUpstreamFailure(t *testing.T) {
	for _, cause := range []error{catalog.ErrUpstreamParse, catalog.ErrUpstreamStatus, catalog.ErrUpstreamTransport} {
		t.Run(cause.Error(), func(t *testing.T) {
			src := &stubSource{err: errors.Join(cause, errors.New("secret detail"))}
			r := newRouter(t, src)

			w := get(r, "/")
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
			assert.Equal(t, ErrorBody, w.Body.String())

			// The router keeps serving afterwards.
			src.err = nil
			src.page = &catalog.CharacterPage{Characters: []catalog.Character{}}
			assert.Equal(t, http.StatusOK, get(r, "/").Code)
		})
	}
}

func TestStaticAssets(t *testing.T) {
	r := newRouter(t, &stubSource{})
	w := get(r, "/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".characters")
}

func TestNewIndexView(t *testing.T) {
	page := &catalog.CharacterPage{
		Characters:      []catalog.Character{{ID: 1, Name: "A"}},
		AttributionHTML: "attr",
	}
	view := NewIndexView(page, browse.State{Offset: 40, PageSize: 20, SearchTerm: "A"})
	assert.Equal(t, 40, view.Offset)
	assert.Equal(t, "A", view.SearchTerm)
	assert.Len(t, view.Characters, 1)
	assert.Equal(t, "attr", string(view.Attribution))
}
