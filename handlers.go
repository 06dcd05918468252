package naturesite

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) pageData(c echo.Context) PageData {
	return PageData{
		Site: a.Store.Config(),
		Meta: a.Meta.Current(),
		CSRF: CsrfToken(c),
		URL:  a.Options.URL,
	}
}

func (a *App) handleHome(c echo.Context) error {
	posts := a.Store.PublishedPosts("")
	// Newest three on the front page.
	if len(posts) > 3 {
		posts = posts[len(posts)-3:]
	}
	return Render(c, a.Views.Home(a.pageData(c), posts, a.Store.Services()))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.pageData(c)))
}

func (a *App) handleServices(c echo.Context) error {
	return Render(c, a.Views.Services(a.pageData(c), a.Store.Services()))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	category := c.QueryParam("category")
	posts := a.Store.PublishedPosts(category)
	categories := Categories(a.Store.PublishedPosts(""))
	return Render(c, a.Views.BlogIndex(a.pageData(c), posts, category, categories))
}

func (a *App) handleBlogPost(c echo.Context) error {
	id := c.Param("id")
	post, ok := a.Store.GetPublishedPost(id)
	if !ok {
		return a.renderNotFound(c)
	}
	related := RelatedPosts(post, a.Store.PublishedPosts(""))
	return Render(c, a.Views.BlogPost(a.pageData(c), post, related))
}

func (a *App) handleCalendar(c echo.Context) error {
	year, month := ParseMonthParam(c.QueryParam("month"), time.Now())
	grid := BuildMonthGrid(year, month, a.Store.Events())
	py, pm := PrevMonth(year, month)
	ny, nm := NextMonth(year, month)
	prev := fmt.Sprintf("/calendar/?month=%04d-%02d", py, int(pm))
	next := fmt.Sprintf("/calendar/?month=%04d-%02d", ny, int(nm))
	return Render(c, a.Views.Calendar(a.pageData(c), grid, prev, next))
}

func (a *App) handleMap(c echo.Context) error {
	return Render(c, a.Views.MapExplorer(a.pageData(c), a.Store.Regions()))
}

func (a *App) handleCommunity(c echo.Context) error {
	msg := c.QueryParam("msg")
	return Render(c, a.Views.Community(a.pageData(c), a.Store.ApprovedSubmissions(), msg))
}

func (a *App) handleCommunitySubmit(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}
	userName := strings.TrimSpace(c.FormValue("userName"))
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	if userName == "" || title == "" || description == "" {
		return c.Redirect(http.StatusSeeOther, "/community/?msg=Name%2C+title%2C+and+description+are+required.")
	}
	subType := SubmissionType(c.FormValue("type"))
	if !ValidSubmissionType(subType) {
		subType = SubmissionSighting
	}
	// Status is forced to pending by the store regardless of form input.
	a.Store.AddSubmission(UserSubmission{
		UserName:    userName,
		Type:        subType,
		Title:       title,
		Description: description,
		ImageURL:    strings.TrimSpace(c.FormValue("imageUrl")),
		Date:        time.Now().Format("2006-01-02"),
	})
	return c.Redirect(http.StatusSeeOther, "/community/?msg=Submission+received.+Our+rangers+will+review+it+shortly.")
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.pageData(c)))
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Store.PublishedPosts(""))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Store.PublishedPosts(""))
}

func (a *App) handleCalendarExport(c echo.Context) error {
	return a.renderICS(c, a.Store.Events())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the canonical URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Options.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.pageData(c)))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.pageData(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
