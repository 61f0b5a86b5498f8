package web_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/linkboard/internal/factory"
	"github.com/mcoot/linkboard/internal/testutil"
	"github.com/mcoot/linkboard/internal/web"
)

const testReleaseID = "2024-01-01-060000.abc1234567"

var testOrigin = &url.URL{Scheme: "http", Host: "example.com", Path: "/"}

// webTestServer drives the web router in-process, carrying cookies between
// requests so flash messages survive redirects.
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	jar     http.CookieJar
}

func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &webTestServer{
		t: t,
		handler: web.NewRouter(web.RouterConfig{
			Logger:          testutil.NopLogger(),
			BoardController: app.BoardController,
			HubManager:      app.HubManager,
			ReleaseID:       testReleaseID,
		}),
		app: app,
		jar: jar,
	}
}

func (ts *webTestServer) request(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range ts.jar.Cookies(testOrigin) {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	ts.jar.SetCookies(testOrigin, rr.Result().Cookies())
	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, false)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, false)
}

func (ts *webTestServer) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, true)
}

// createBoard submits the home page form with code queued as the next board id.
func (ts *webTestServer) createBoard(code string) string {
	ts.t.Helper()
	ts.app.MockRandom.QueueString(code)

	rr := ts.post("/boards", nil)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.Equal(ts.t, "/boards/"+code, rr.Header().Get("Location"))
	return code
}

// move posts a drop the same way public/js/main.js does.
func (ts *webTestServer) move(code, item, from, to, oldIndex, newIndex string) *httptest.ResponseRecorder {
	return ts.postHTMX("/boards/"+code+"/moves", url.Values{
		"item":      {item},
		"from":      {from},
		"to":        {to},
		"old_index": {oldIndex},
		"new_index": {newIndex},
	})
}

func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "redirect without Location")
	return ts.get(location)
}

func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// zoneIDs lists the tile ids inside a zone container in document order.
func zoneIDs(doc *goquery.Document, zone string) []string {
	return doc.Find("#" + zone + " .player-box").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("id", "")
	})
}

func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	assert.Positive(t, doc.Find(selector).Length(), "no element matches %q", selector)
}

func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	assert.Zero(t, doc.Find(selector).Length(), "unexpected element matches %q", selector)
}

func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	sel := doc.Find(selector)
	if assert.Positive(t, sel.Length(), "no element matches %q", selector) {
		assert.Contains(t, sel.Text(), text)
	}
}
