// Package views holds the templ components for every page of the site. The
// components are built in plain Go with templ.ComponentFunc, writing HTML
// into a buffer; all dynamic values pass through esc before output.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

func component(fn func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		fn(&b)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// navLinks are the public navigation entries, in display order.
var navLinks = [][2]string{
	{"/", "Home"},
	{"/about/", "About"},
	{"/services/", "Services"},
	{"/blog/", "Blog"},
	{"/calendar/", "Calendar"},
	{"/map/", "Map"},
	{"/community/", "Community"},
	{"/contact/", "Contact"},
}

// page wraps body in the site shell. The document title and meta description
// come from the metadata snapshot, which tracks the config's SEO block.
func page(d naturesite.PageData, body func(b *bytes.Buffer)) templ.Component {
	return component(func(b *bytes.Buffer) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString("<meta charset=\"utf-8\"/>")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		b.WriteString("<title>" + esc(d.Meta.Title) + "</title>")
		b.WriteString("<meta name=\"description\" content=\"" + esc(d.Meta.Description) + "\"/>")
		if d.Meta.Keywords != "" {
			b.WriteString("<meta name=\"keywords\" content=\"" + esc(d.Meta.Keywords) + "\"/>")
		}
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
		if d.Site.PrimaryColor != "" {
			b.WriteString("<style>:root{--primary:" + esc(d.Site.PrimaryColor) + ";}</style>")
		}
		b.WriteString(`<script type="application/ld+json">` + naturesite.WebsiteJsonLD(d.Site, d.URL) + `</script>`)
		b.WriteString("</head><body>")

		b.WriteString("<header class=\"site\"><a class=\"brand\" href=\"/\">")
		if d.Site.LogoURL != "" {
			b.WriteString("<img class=\"logo\" src=\"" + esc(d.Site.LogoURL) + "\" alt=\"" + esc(d.Site.SiteName) + "\"/> ")
		}
		b.WriteString(esc(d.Site.SiteName) + "</a><nav>")
		for _, link := range navLinks {
			b.WriteString("<a href=\"" + link[0] + "\">" + link[1] + "</a>")
		}
		b.WriteString("</nav></header><main>")

		body(b)

		b.WriteString("</main><footer class=\"site\"><p>" + esc(d.Site.SiteDescription) + "</p>")
		writeSocialLinks(b, d.Site.SocialLinks)
		if d.Site.ContactEmail != "" {
			b.WriteString("<p><a href=\"mailto:" + esc(d.Site.ContactEmail) + "\">" + esc(d.Site.ContactEmail) + "</a></p>")
		}
		b.WriteString("</footer></body></html>")
	})
}

func writeSocialLinks(b *bytes.Buffer, links naturesite.SocialLinks) {
	entries := [][2]string{
		{"Facebook", links.Facebook},
		{"Twitter", links.Twitter},
		{"Instagram", links.Instagram},
	}
	var parts []string
	for _, e := range entries {
		if e[1] == "" {
			continue
		}
		parts = append(parts, "<a href=\""+esc(e[1])+"\" rel=\"noopener\">"+e[0]+"</a>")
	}
	if len(parts) > 0 {
		b.WriteString("<p>" + strings.Join(parts, " · ") + "</p>")
	}
}

func writeMsg(b *bytes.Buffer, msg string) {
	if msg != "" {
		b.WriteString("<p class=\"msg\">" + esc(msg) + "</p>")
	}
}

func csrfField(b *bytes.Buffer, token string) {
	b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(token) + "\"/>")
}
