package naturesite

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.pageData(c), false))
	}
	posts := a.Store.Posts()
	published := 0
	for _, p := range posts {
		if p.Status == PostPublished {
			published++
		}
	}
	stats := DashboardStats{
		Posts:     len(posts),
		Published: published,
		Events:    len(a.Store.Events()),
		Pending:   len(a.Store.PendingSubmissions()),
		Approved:  len(a.Store.ApprovedSubmissions()),
	}
	return Render(c, a.Views.AdminDashboard(a.pageData(c), stats))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Options.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminLogin(a.pageData(c), true))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// --- Posts ---

func (a *App) handleAdminPosts(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderAdminPosts(c, BlogPost{}, c.QueryParam("msg"))
}

func (a *App) handleAdminEditPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, ok := a.Store.GetPost(c.Param("id"))
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=Post+not+found.")
	}
	return a.renderAdminPosts(c, post, "")
}

func (a *App) handleAdminSavePost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=Title+is+required.")
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=Invalid+date+format.+Use+YYYY-MM-DD.")
	}
	status := PostDraft
	if c.FormValue("status") == string(PostPublished) {
		status = PostPublished
	}
	post := BlogPost{
		ID:       strings.TrimSpace(c.FormValue("id")),
		Title:    title,
		Excerpt:  c.FormValue("excerpt"),
		Content:  c.FormValue("content"),
		Author:   strings.TrimSpace(c.FormValue("author")),
		Date:     date,
		ImageURL: strings.TrimSpace(c.FormValue("imageUrl")),
		Category: strings.TrimSpace(c.FormValue("category")),
		Tags:     FilterEmpty(strings.Split(c.FormValue("tags"), ",")),
		Status:   status,
	}
	if post.ID == "" {
		a.Store.AddPost(post)
		return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=created")
	}
	if !a.Store.UpdatePost(post) {
		return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=Post+not+found.")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=saved")
}

func (a *App) handleAdminDeletePost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.Store.DeletePost(c.Param("id"))
	return c.Redirect(http.StatusSeeOther, "/admin/posts/?msg=deleted")
}

func (a *App) renderAdminPosts(c echo.Context, editing BlogPost, msg string) error {
	return Render(c, a.Views.AdminPosts(a.pageData(c), a.Store.Posts(), editing, msg))
}

// --- Events ---

func (a *App) handleAdminEvents(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminEvents(a.pageData(c), a.Store.Events(), c.QueryParam("msg")))
}

func (a *App) handleAdminSaveEvent(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	title := strings.TrimSpace(c.FormValue("title"))
	date := strings.TrimSpace(c.FormValue("date"))
	if title == "" || date == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/events/?msg=Title+and+date+are+required.")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/events/?msg=Invalid+date+format.+Use+YYYY-MM-DD.")
	}
	eventType := EventType(c.FormValue("type"))
	switch eventType {
	case EventHike, EventWorkshop, EventVolunteer, EventOther:
	default:
		eventType = EventOther
	}
	a.Store.AddEvent(CalendarEvent{
		Title:       title,
		Date:        date,
		Type:        eventType,
		Description: c.FormValue("description"),
	})
	return c.Redirect(http.StatusSeeOther, "/admin/events/?msg=created")
}

func (a *App) handleAdminDeleteEvent(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.Store.DeleteEvent(c.Param("id"))
	return c.Redirect(http.StatusSeeOther, "/admin/events/?msg=deleted")
}

// --- Moderation ---

func (a *App) handleAdminModeration(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminModeration(a.pageData(c), a.Store.Submissions(), c.QueryParam("msg")))
}

func (a *App) handleAdminApprove(c echo.Context) error {
	return a.moderate(c, StatusApproved)
}

func (a *App) handleAdminReject(c echo.Context) error {
	return a.moderate(c, StatusRejected)
}

func (a *App) moderate(c echo.Context, status SubmissionStatus) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	found, err := a.Store.UpdateSubmissionStatus(c.Param("id"), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !found {
		return c.Redirect(http.StatusSeeOther, "/admin/moderation/?msg=Submission+not+found.")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/moderation/?msg="+string(status))
}

// --- Settings ---

func (a *App) handleAdminSettings(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminSettings(a.pageData(c), c.QueryParam("msg")))
}

// handleAdminSaveSettings replaces the whole config record. The form carries
// every field, so the handler rebuilds the record rather than patching; that
// keeps UpdateConfig's replace-wholesale contract visible at the call site.
func (a *App) handleAdminSaveSettings(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	current := a.Store.Config()
	cfg := SiteConfig{
		SiteName:        strings.TrimSpace(c.FormValue("siteName")),
		SiteDescription: c.FormValue("siteDescription"),
		LogoURL:         current.LogoURL, // changed only via logo upload
		PrimaryColor:    strings.TrimSpace(c.FormValue("primaryColor")),
		ContactEmail:    strings.TrimSpace(c.FormValue("contactEmail")),
		SocialLinks: SocialLinks{
			Facebook:  strings.TrimSpace(c.FormValue("social.facebook")),
			Twitter:   strings.TrimSpace(c.FormValue("social.twitter")),
			Instagram: strings.TrimSpace(c.FormValue("social.instagram")),
		},
		SEO: SEOConfig{
			MetaTitle:       strings.TrimSpace(c.FormValue("seo.metaTitle")),
			MetaDescription: strings.TrimSpace(c.FormValue("seo.metaDescription")),
			Keywords:        strings.TrimSpace(c.FormValue("seo.keywords")),
		},
	}
	if cfg.SiteName == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/settings/?msg=Site+name+is+required.")
	}
	a.Store.UpdateConfig(cfg)
	return c.Redirect(http.StatusSeeOther, "/admin/settings/?msg=saved")
}
