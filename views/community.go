package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

// Community renders the approved-submission gallery and the entry form. New
// entries always land in the moderation queue before appearing here.
func Community(d naturesite.PageData, approved []naturesite.UserSubmission, msg string) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Community Field Notes</h1>")
		b.WriteString("<p>Share your sightings, reviews, and photos with fellow explorers.</p>")
		writeMsg(b, msg)

		if len(approved) == 0 {
			b.WriteString("<p>No submissions yet. Be the first to share!</p>")
		}
		for _, sub := range approved {
			b.WriteString("<div class=\"card\">")
			if sub.ImageURL != "" {
				b.WriteString("<img src=\"" + esc(sub.ImageURL) + "\" alt=\"" + esc(sub.Title) + "\" width=\"400\"/>")
			}
			b.WriteString("<p><span class=\"badge\">" + esc(string(sub.Type)) + "</span></p>")
			b.WriteString("<h3>" + esc(sub.Title) + "</h3>")
			b.WriteString("<p>" + esc(sub.Description) + "</p>")
			b.WriteString("<p class=\"byline\">By " + esc(sub.UserName) + " — " + esc(sub.Date) + "</p>")
			b.WriteString("</div>")
		}

		b.WriteString("<h2>Submit an Entry</h2>")
		b.WriteString("<form class=\"stack\" method=\"POST\" action=\"/community/submit/\">")
		csrfField(b, d.CSRF)
		b.WriteString("<label>Your Name</label><input name=\"userName\" required placeholder=\"Explorer Name\"/>")
		b.WriteString("<label>Entry Type</label><select name=\"type\">")
		b.WriteString("<option value=\"sighting\">Wildlife Sighting</option>")
		b.WriteString("<option value=\"review\">Location Review</option>")
		b.WriteString("<option value=\"photo\">Photo Share</option>")
		b.WriteString("</select>")
		b.WriteString("<label>Title</label><input name=\"title\" required placeholder=\"What did you see?\"/>")
		b.WriteString("<label>Description / Story</label><textarea name=\"description\" rows=\"4\" required></textarea>")
		b.WriteString("<label>Image URL (optional)</label><input name=\"imageUrl\" placeholder=\"https://...\"/>")
		b.WriteString("<button type=\"submit\">Submit for Review</button>")
		b.WriteString("</form>")
	})
}
