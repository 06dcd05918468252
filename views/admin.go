package views

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

var adminNav = [][2]string{
	{"/admin/", "Overview"},
	{"/admin/posts/", "Blog Posts"},
	{"/admin/events/", "Events"},
	{"/admin/moderation/", "Moderation"},
	{"/admin/settings/", "Settings"},
}

func adminPage(d naturesite.PageData, body func(b *bytes.Buffer)) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<p>")
		for _, link := range adminNav {
			b.WriteString("<a href=\"" + link[0] + "\">" + link[1] + "</a> · ")
		}
		b.WriteString("</p><form method=\"POST\" action=\"/admin/logout/\" style=\"display:inline\">")
		csrfField(b, d.CSRF)
		b.WriteString("<button type=\"submit\">Log out</button></form>")
		body(b)
	})
}

// AdminLogin renders the password prompt for the dashboard.
func AdminLogin(d naturesite.PageData, showError bool) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Admin Login</h1>")
		if showError {
			b.WriteString("<p class=\"msg\">Wrong password.</p>")
		}
		b.WriteString("<form class=\"stack\" method=\"POST\" action=\"/admin/login/\">")
		csrfField(b, d.CSRF)
		b.WriteString("<label>Password</label><input type=\"password\" name=\"password\" autofocus/>")
		b.WriteString("<button type=\"submit\">Log in</button>")
		b.WriteString("</form>")
	})
}

// AdminDashboard renders the overview counters.
func AdminDashboard(d naturesite.PageData, stats naturesite.DashboardStats) templ.Component {
	return adminPage(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Dashboard Overview</h1>")
		cards := []struct {
			label string
			value int
		}{
			{"Total Posts", stats.Posts},
			{"Published", stats.Published},
			{"Events", stats.Events},
			{"Pending Submissions", stats.Pending},
			{"Approved Submissions", stats.Approved},
		}
		for _, card := range cards {
			b.WriteString("<div class=\"card\"><strong>" + card.label + "</strong>: " + strconv.Itoa(card.value) + "</div>")
		}
		if stats.Pending > 0 {
			b.WriteString("<p class=\"msg\"><a href=\"/admin/moderation/\">" + strconv.Itoa(stats.Pending) + " submission(s) waiting for review</a></p>")
		}
	})
}

// AdminPosts renders the post table plus the create/edit form. When editing
// holds an existing post its fields pre-fill the form.
func AdminPosts(d naturesite.PageData, posts []naturesite.BlogPost, editing naturesite.BlogPost, msg string) templ.Component {
	return adminPage(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Blog Posts</h1>")
		writeMsg(b, msg)

		b.WriteString("<table class=\"admin\"><tr><th>Title</th><th>Author</th><th>Date</th><th>Status</th><th></th></tr>")
		for _, p := range posts {
			b.WriteString("<tr><td><a href=\"/admin/posts/" + url.PathEscape(p.ID) + "/\">" + esc(p.Title) + "</a></td>")
			b.WriteString("<td>" + esc(p.Author) + "</td><td>" + esc(p.Date) + "</td>")
			badge := "badge"
			if p.Status == naturesite.PostDraft {
				badge = "badge draft"
			}
			b.WriteString("<td><span class=\"" + badge + "\">" + esc(string(p.Status)) + "</span></td><td>")
			b.WriteString("<form method=\"POST\" action=\"/admin/posts/" + url.PathEscape(p.ID) + "/delete/\">")
			csrfField(b, d.CSRF)
			b.WriteString("<button class=\"danger\" type=\"submit\">Delete</button></form>")
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")

		if editing.ID == "" {
			b.WriteString("<h2>New Post</h2>")
		} else {
			b.WriteString("<h2>Edit Post</h2>")
		}
		b.WriteString("<form class=\"stack\" method=\"POST\" action=\"/admin/posts/save/\">")
		csrfField(b, d.CSRF)
		b.WriteString("<input type=\"hidden\" name=\"id\" value=\"" + esc(editing.ID) + "\"/>")
		b.WriteString("<label>Title</label><input name=\"title\" required value=\"" + esc(editing.Title) + "\"/>")
		b.WriteString("<label>Excerpt</label><input name=\"excerpt\" value=\"" + esc(editing.Excerpt) + "\"/>")
		b.WriteString("<label>Content</label><textarea name=\"content\" rows=\"10\">" + esc(editing.Content) + "</textarea>")
		b.WriteString("<label>Author</label><input name=\"author\" value=\"" + esc(editing.Author) + "\"/>")
		b.WriteString("<label>Date</label><input name=\"date\" placeholder=\"YYYY-MM-DD\" value=\"" + esc(editing.Date) + "\"/>")
		b.WriteString("<label>Image URL</label><input name=\"imageUrl\" value=\"" + esc(editing.ImageURL) + "\"/>")
		b.WriteString("<label>Category</label><input name=\"category\" value=\"" + esc(editing.Category) + "\"/>")
		b.WriteString("<label>Tags (comma-separated)</label><input name=\"tags\" value=\"" + esc(strings.Join(editing.Tags, ", ")) + "\"/>")
		b.WriteString("<label>Status</label><select name=\"status\">")
		writeOption(b, "draft", string(editing.Status))
		writeOption(b, "published", string(editing.Status))
		b.WriteString("</select>")
		b.WriteString("<button type=\"submit\">Save</button>")
		b.WriteString("</form>")
	})
}

func writeOption(b *bytes.Buffer, value, selected string) {
	b.WriteString("<option value=\"" + value + "\"")
	if value == selected {
		b.WriteString(" selected")
	}
	b.WriteString(">" + value + "</option>")
}

// AdminEvents renders the event table and the add-event form. Events have no
// edit operation: add and delete only.
func AdminEvents(d naturesite.PageData, events []naturesite.CalendarEvent, msg string) templ.Component {
	return adminPage(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Events</h1>")
		writeMsg(b, msg)

		b.WriteString("<table class=\"admin\"><tr><th>Date</th><th>Title</th><th>Type</th><th></th></tr>")
		for _, e := range events {
			b.WriteString("<tr><td>" + esc(e.Date) + "</td><td>" + esc(e.Title) + "</td>")
			b.WriteString("<td><span class=\"badge\">" + esc(string(e.Type)) + "</span></td><td>")
			b.WriteString("<form method=\"POST\" action=\"/admin/events/" + url.PathEscape(e.ID) + "/delete/\">")
			csrfField(b, d.CSRF)
			b.WriteString("<button class=\"danger\" type=\"submit\">Delete</button></form>")
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")

		b.WriteString("<h2>Add Event</h2>")
		b.WriteString("<form class=\"stack\" method=\"POST\" action=\"/admin/events/save/\">")
		csrfField(b, d.CSRF)
		b.WriteString("<label>Title</label><input name=\"title\" required/>")
		b.WriteString("<label>Date</label><input name=\"date\" required placeholder=\"YYYY-MM-DD\"/>")
		b.WriteString("<label>Type</label><select name=\"type\">")
		for _, t := range []string{"hike", "workshop", "volunteer", "other"} {
			writeOption(b, t, "hike")
		}
		b.WriteString("</select>")
		b.WriteString("<label>Description</label><textarea name=\"description\" rows=\"3\"></textarea>")
		b.WriteString("<button type=\"submit\">Add</button>")
		b.WriteString("</form>")
	})
}

// AdminModeration renders the submission queue. Pending entries offer both
// actions; rejected entries can still be approved later.
func AdminModeration(d naturesite.PageData, submissions []naturesite.UserSubmission, msg string) templ.Component {
	return adminPage(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Moderation</h1>")
		writeMsg(b, msg)
		if len(submissions) == 0 {
			b.WriteString("<p>No submissions.</p>")
			return
		}
		for _, sub := range submissions {
			b.WriteString("<div class=\"card\">")
			badge := "badge"
			switch sub.Status {
			case naturesite.StatusPending:
				badge = "badge pending"
			case naturesite.StatusRejected:
				badge = "badge rejected"
			}
			b.WriteString("<p><span class=\"" + badge + "\">" + esc(string(sub.Status)) + "</span> <span class=\"badge\">" + esc(string(sub.Type)) + "</span></p>")
			b.WriteString("<h3>" + esc(sub.Title) + "</h3>")
			b.WriteString("<p>" + esc(sub.Description) + "</p>")
			if sub.ImageURL != "" {
				b.WriteString("<p><img src=\"" + esc(sub.ImageURL) + "\" alt=\"" + esc(sub.Title) + "\" width=\"300\"/></p>")
			}
			b.WriteString("<p class=\"byline\">By " + esc(sub.UserName) + " — " + esc(sub.Date) + "</p>")
			if sub.Status != naturesite.StatusApproved {
				b.WriteString("<form method=\"POST\" action=\"/admin/moderation/" + url.PathEscape(sub.ID) + "/approve/\" style=\"display:inline\">")
				csrfField(b, d.CSRF)
				b.WriteString("<button type=\"submit\">Approve</button></form> ")
			}
			if sub.Status == naturesite.StatusPending {
				b.WriteString("<form method=\"POST\" action=\"/admin/moderation/" + url.PathEscape(sub.ID) + "/reject/\" style=\"display:inline\">")
				csrfField(b, d.CSRF)
				b.WriteString("<button class=\"danger\" type=\"submit\">Reject</button></form>")
			}
			b.WriteString("</div>")
		}
	})
}

// AdminSettings renders the site configuration form. Saving replaces the
// whole config record; the logo has its own upload form below.
func AdminSettings(d naturesite.PageData, msg string) templ.Component {
	return adminPage(d, func(b *bytes.Buffer) {
		cfg := d.Site
		b.WriteString("<h1>Site Settings</h1>")
		writeMsg(b, msg)

		b.WriteString("<form class=\"stack\" method=\"POST\" action=\"/admin/settings/save/\">")
		csrfField(b, d.CSRF)
		b.WriteString("<label>Site Name</label><input name=\"siteName\" required value=\"" + esc(cfg.SiteName) + "\"/>")
		b.WriteString("<label>Site Description</label><textarea name=\"siteDescription\" rows=\"2\">" + esc(cfg.SiteDescription) + "</textarea>")
		b.WriteString("<label>Primary Color</label><input name=\"primaryColor\" value=\"" + esc(cfg.PrimaryColor) + "\"/>")
		b.WriteString("<label>Contact Email</label><input name=\"contactEmail\" value=\"" + esc(cfg.ContactEmail) + "\"/>")
		b.WriteString("<label>Facebook</label><input name=\"social.facebook\" value=\"" + esc(cfg.SocialLinks.Facebook) + "\"/>")
		b.WriteString("<label>Twitter</label><input name=\"social.twitter\" value=\"" + esc(cfg.SocialLinks.Twitter) + "\"/>")
		b.WriteString("<label>Instagram</label><input name=\"social.instagram\" value=\"" + esc(cfg.SocialLinks.Instagram) + "\"/>")
		b.WriteString("<label>Meta Title</label><input name=\"seo.metaTitle\" value=\"" + esc(cfg.SEO.MetaTitle) + "\"/>")
		b.WriteString("<label>Meta Description</label><textarea name=\"seo.metaDescription\" rows=\"2\">" + esc(cfg.SEO.MetaDescription) + "</textarea>")
		b.WriteString("<label>Keywords</label><input name=\"seo.keywords\" value=\"" + esc(cfg.SEO.Keywords) + "\"/>")
		b.WriteString("<button type=\"submit\">Save Settings</button>")
		b.WriteString("</form>")

		b.WriteString("<h2>Logo</h2>")
		if cfg.LogoURL != "" {
			b.WriteString("<p><img src=\"" + esc(cfg.LogoURL) + "\" alt=\"Current logo\" height=\"48\"/></p>")
		}
		b.WriteString("<form class=\"stack\" method=\"POST\" action=\"/admin/settings/logo/\" enctype=\"multipart/form-data\">")
		csrfField(b, d.CSRF)
		b.WriteString("<label>Upload new logo</label><input type=\"file\" name=\"logo\" accept=\"image/*\"/>")
		b.WriteString("<button type=\"submit\">Upload</button>")
		b.WriteString("</form>")
	})
}
