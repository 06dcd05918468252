package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

// Home renders the landing page: hero, latest published posts, and a
// services teaser.
func Home(d naturesite.PageData, posts []naturesite.BlogPost, services []naturesite.Service) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>" + esc(d.Site.SiteName) + "</h1>")
		b.WriteString("<p>" + esc(d.Site.SiteDescription) + "</p>")

		b.WriteString("<h2>From the Field Journal</h2>")
		for _, p := range posts {
			writePostCard(b, p)
		}
		b.WriteString("<p><a href=\"/blog/\">All posts →</a></p>")

		b.WriteString("<h2>What We Offer</h2>")
		for _, s := range services {
			b.WriteString("<div class=\"card\"><h3>" + esc(s.Title) + "</h3><p>" + esc(s.Description) + "</p></div>")
		}
		b.WriteString("<p><a href=\"/services/\">See all services →</a></p>")
	})
}

// About renders the static about page.
func About(d naturesite.PageData) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>About " + esc(d.Site.SiteName) + "</h1>")
		b.WriteString("<div class=\"card\"><p>We are naturalists, educators, and trail stewards helping people read the landscape around them. ")
		b.WriteString("What began as a weekend bird walk has grown into guided hikes, school programs, and a community of field observers.</p>")
		b.WriteString("<p>Our rangers review every community submission and keep the event calendar stocked through the seasons.</p></div>")
	})
}

// Services renders the read-only service catalog.
func Services(d naturesite.PageData, services []naturesite.Service) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Services</h1>")
		for _, s := range services {
			b.WriteString("<div class=\"card\"><h2>" + esc(s.Title) + "</h2>")
			b.WriteString("<p>" + esc(s.Description) + "</p>")
			if s.Price != "" {
				b.WriteString("<p><strong>" + esc(s.Price) + "</strong></p>")
			}
			b.WriteString("</div>")
		}
	})
}

// Contact renders the contact page from the current site configuration.
func Contact(d naturesite.PageData) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Get in Touch</h1>")
		b.WriteString("<div class=\"card\">")
		if d.Site.ContactEmail != "" {
			b.WriteString("<p>Email us at <a href=\"mailto:" + esc(d.Site.ContactEmail) + "\">" + esc(d.Site.ContactEmail) + "</a>.</p>")
		}
		b.WriteString("<p>Planning a cleanup, a study group, or a school visit? We love community-led initiatives — write to the organizers and we will get back to you.</p>")
		b.WriteString("</div>")
	})
}
