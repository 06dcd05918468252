package naturesite

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func stub(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!-- "+name+" -->")
		return err
	})
}

func stubViews() ViewFuncs {
	return ViewFuncs{
		Home:        func(PageData, []BlogPost, []Service) templ.Component { return stub("home") },
		About:       func(PageData) templ.Component { return stub("about") },
		Services:    func(PageData, []Service) templ.Component { return stub("services") },
		BlogIndex:   func(PageData, []BlogPost, string, []string) templ.Component { return stub("blog-index") },
		BlogPost:    func(PageData, BlogPost, []BlogPost) templ.Component { return stub("blog-post") },
		Calendar:    func(PageData, MonthGrid, string, string) templ.Component { return stub("calendar") },
		MapExplorer: func(PageData, []MapRegion) templ.Component { return stub("map") },
		Community:   func(PageData, []UserSubmission, string) templ.Component { return stub("community") },
		Contact:     func(PageData) templ.Component { return stub("contact") },
		AdminLogin: func(_ PageData, failed bool) templ.Component {
			if failed {
				return stub("admin-login-failed")
			}
			return stub("admin-login")
		},
		AdminDashboard:  func(PageData, DashboardStats) templ.Component { return stub("admin-dashboard") },
		AdminPosts:      func(PageData, []BlogPost, BlogPost, string) templ.Component { return stub("admin-posts") },
		AdminEvents:     func(PageData, []CalendarEvent, string) templ.Component { return stub("admin-events") },
		AdminModeration: func(PageData, []UserSubmission, string) templ.Component { return stub("admin-moderation") },
		AdminSettings:   func(PageData, string) templ.Component { return stub("admin-settings") },
		NotFound:        func(PageData) templ.Component { return stub("not-found") },
		ServerError:     func(PageData) templ.Component { return stub("server-error") },
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	opts := Options{
		AdminPassword: "hunter2",
		SessionSecret: "test-secret",
	}
	opts.setDefaults()

	app := &App{
		Options:   opts,
		Echo:      echo.New(),
		Views:     stubViews(),
		staticDir: "public",
	}
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	app.Store = NewStore(seed)
	app.Meta = NewMetadataSync(app.Store)
	app.loginLimiter = NewRateLimiter(5, time.Minute)
	app.submitLimiter = NewRateLimiter(10, time.Hour)
	return app
}

func doRequest(app *App, method, target string, form url.Values) (*httptest.ResponseRecorder, echo.Context) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := app.Echo.NewContext(req, rec)
	return rec, c
}

func TestHandleHomeRendersLatestPosts(t *testing.T) {
	app := newTestApp(t)
	rec, c := doRequest(app, http.MethodGet, "/", nil)

	if err := app.handleHome(c); err != nil {
		t.Fatalf("handleHome: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "home") {
		t.Fatalf("expected home component to render, got %q", rec.Body.String())
	}
}

func TestHandleBlogPostHidesDrafts(t *testing.T) {
	app := newTestApp(t)
	app.Store.AddPost(BlogPost{ID: "draft-1", Title: "Hidden", Status: PostDraft})

	rec, c := doRequest(app, http.MethodGet, "/blog/draft-1/", nil)
	c.SetParamNames("id")
	c.SetParamValues("draft-1")

	if err := app.handleBlogPost(c); err != nil {
		t.Fatalf("handleBlogPost: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not-found") {
		t.Fatalf("expected not-found page, got %q", rec.Body.String())
	}
}

func TestHandleCommunitySubmitForcesPending(t *testing.T) {
	app := newTestApp(t)
	before := len(app.Store.Submissions())

	form := url.Values{
		"userName":    {"Test Hiker"},
		"type":        {"photo"},
		"title":       {"Misty Morning"},
		"description": {"Fog over the valley."},
		"status":      {"approved"}, // must be ignored
	}
	rec, c := doRequest(app, http.MethodPost, "/community/submit/", form)

	if err := app.handleCommunitySubmit(c); err != nil {
		t.Fatalf("handleCommunitySubmit: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}

	all := app.Store.Submissions()
	if len(all) != before+1 {
		t.Fatalf("expected one new submission, got %d -> %d", before, len(all))
	}
	newest := all[0]
	if newest.Status != StatusPending {
		t.Fatalf("expected forced pending, got %q", newest.Status)
	}
	if newest.Type != SubmissionPhoto {
		t.Fatalf("expected photo type, got %q", newest.Type)
	}
}

func TestHandleCommunitySubmitValidation(t *testing.T) {
	app := newTestApp(t)
	before := len(app.Store.Submissions())

	form := url.Values{"userName": {"No Title"}}
	rec, c := doRequest(app, http.MethodPost, "/community/submit/", form)

	if err := app.handleCommunitySubmit(c); err != nil {
		t.Fatalf("handleCommunitySubmit: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderLocation), "msg=") {
		t.Fatalf("expected error message in redirect, got %q", rec.Header().Get(echo.HeaderLocation))
	}
	if len(app.Store.Submissions()) != before {
		t.Fatalf("expected no submission stored")
	}
}

func TestHandleCommunitySubmitUnknownTypeFallsBack(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{
		"userName":    {"Test Hiker"},
		"type":        {"nonsense"},
		"title":       {"A Thing"},
		"description": {"Details."},
	}
	_, c := doRequest(app, http.MethodPost, "/community/submit/", form)

	if err := app.handleCommunitySubmit(c); err != nil {
		t.Fatalf("handleCommunitySubmit: %v", err)
	}
	if got := app.Store.Submissions()[0].Type; got != SubmissionSighting {
		t.Fatalf("expected sighting fallback, got %q", got)
	}
}

func TestHandleCommunitySubmitRateLimited(t *testing.T) {
	app := newTestApp(t)
	app.submitLimiter = NewRateLimiter(1, time.Hour)

	form := url.Values{
		"userName":    {"Test Hiker"},
		"title":       {"First"},
		"description": {"ok"},
	}
	_, c := doRequest(app, http.MethodPost, "/community/submit/", form)
	if err := app.handleCommunitySubmit(c); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	rec, c := doRequest(app, http.MethodPost, "/community/submit/", form)
	if err := app.handleCommunitySubmit(c); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAdminHandlersRedirectWhenNotLoggedIn(t *testing.T) {
	app := newTestApp(t)

	handlers := map[string]echo.HandlerFunc{
		"posts":      app.handleAdminPosts,
		"events":     app.handleAdminEvents,
		"moderation": app.handleAdminModeration,
		"settings":   app.handleAdminSettings,
	}
	for name, h := range handlers {
		rec, c := doRequest(app, http.MethodGet, "/admin/"+name+"/", nil)
		if err := h(c); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected redirect, got %d", name, rec.Code)
		}
		if got := rec.Header().Get(echo.HeaderLocation); got != "/admin/" {
			t.Fatalf("%s: expected redirect to /admin/, got %q", name, got)
		}
	}
}

func TestHandleAdminShowsLoginWhenNotAuthenticated(t *testing.T) {
	app := newTestApp(t)

	rec, c := doRequest(app, http.MethodGet, "/admin/", nil)
	if err := app.handleAdmin(c); err != nil {
		t.Fatalf("handleAdmin: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "admin-login") {
		t.Fatalf("expected login page, got %q", rec.Body.String())
	}
}

func TestHandleAdminLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"password": {"wrong"}}
	rec, c := doRequest(app, http.MethodPost, "/admin/login/", form)
	if err := app.handleAdminLogin(c); err != nil {
		t.Fatalf("handleAdminLogin: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "admin-login-failed") {
		t.Fatalf("expected failed login page, got %q", rec.Body.String())
	}
}

func TestHandleAdminLoginRateLimited(t *testing.T) {
	app := newTestApp(t)
	app.loginLimiter = NewRateLimiter(1, time.Hour)

	form := url.Values{"password": {"wrong"}}
	_, c := doRequest(app, http.MethodPost, "/admin/login/", form)
	if err := app.handleAdminLogin(c); err != nil {
		t.Fatalf("first attempt: %v", err)
	}

	rec, c := doRequest(app, http.MethodPost, "/admin/login/", form)
	if err := app.handleAdminLogin(c); err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestHandleRobots(t *testing.T) {
	app := newTestApp(t)

	rec, c := doRequest(app, http.MethodGet, "/robots.txt", nil)
	if err := app.handleRobots(c); err != nil {
		t.Fatalf("handleRobots: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Disallow: /admin/") {
		t.Fatalf("expected admin disallow, got %q", body)
	}
	if !strings.Contains(body, "Sitemap: http://localhost:3000/sitemap.xml") {
		t.Fatalf("expected sitemap link, got %q", body)
	}
}

func TestHandleFeed(t *testing.T) {
	app := newTestApp(t)

	rec, c := doRequest(app, http.MethodGet, "/feed.xml", nil)
	if err := app.handleFeed(c); err != nil {
		t.Fatalf("handleFeed: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<rss") {
		t.Fatalf("expected rss document, got %q", body)
	}
	if !strings.Contains(body, "Understanding the Forest Ecosystem") {
		t.Fatalf("expected seed post in feed, got %q", body)
	}
}

func TestHandleCalendarExport(t *testing.T) {
	app := newTestApp(t)

	rec, c := doRequest(app, http.MethodGet, "/calendar/export.ics", nil)
	if err := app.handleCalendarExport(c); err != nil {
		t.Fatalf("handleCalendarExport: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Fatalf("expected calendar envelope, got %q", body)
	}
	if !strings.Contains(body, "SUMMARY:Morning Bird Walk") {
		t.Fatalf("expected seed event, got %q", body)
	}
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20231115") {
		t.Fatalf("expected all-day start, got %q", body)
	}
}

func TestHandleSitemap(t *testing.T) {
	app := newTestApp(t)

	rec, c := doRequest(app, http.MethodGet, "/sitemap.xml", nil)
	if err := app.handleSitemap(c); err != nil {
		t.Fatalf("handleSitemap: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<urlset") {
		t.Fatalf("expected urlset, got %q", body)
	}
	if !strings.Contains(body, "http://localhost:3000/blog/1/") {
		t.Fatalf("expected post url, got %q", body)
	}
}
