package views

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

func writePostCard(b *bytes.Buffer, p naturesite.BlogPost) {
	b.WriteString("<article class=\"card\">")
	b.WriteString("<h3><a href=\"/blog/" + url.PathEscape(p.ID) + "/\">" + esc(p.Title) + "</a></h3>")
	b.WriteString("<p class=\"byline\">" + esc(p.Author) + " — " + esc(p.Date))
	if p.Category != "" {
		b.WriteString(" — <span class=\"badge\">" + esc(p.Category) + "</span>")
	}
	b.WriteString("</p>")
	b.WriteString("<p>" + esc(p.Excerpt) + "</p>")
	b.WriteString("</article>")
}

// BlogIndex renders the published post list with a category filter.
func BlogIndex(d naturesite.PageData, posts []naturesite.BlogPost, active string, categories []string) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Field Journal</h1>")
		if len(categories) > 0 {
			b.WriteString("<p><a href=\"/blog/\">All</a>")
			for _, cat := range categories {
				b.WriteString(" <a href=\"/blog/?category=" + url.QueryEscape(cat) + "\">")
				if cat == active {
					b.WriteString("<strong>" + esc(cat) + "</strong>")
				} else {
					b.WriteString(esc(cat))
				}
				b.WriteString("</a>")
			}
			b.WriteString("</p>")
		}
		if len(posts) == 0 {
			b.WriteString("<p>No posts here yet.</p>")
			return
		}
		for _, p := range posts {
			writePostCard(b, p)
		}
	})
}

// BlogPost renders a single published post with its related entries.
func BlogPost(d naturesite.PageData, post naturesite.BlogPost, related []naturesite.BlogPost) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<article>")
		b.WriteString("<h1>" + esc(post.Title) + "</h1>")
		b.WriteString("<p class=\"byline\">" + esc(post.Author) + " — " + esc(post.Date) + "</p>")
		if post.ImageURL != "" {
			b.WriteString("<p><img src=\"" + esc(post.ImageURL) + "\" alt=\"" + esc(post.Title) + "\" width=\"800\"/></p>")
		}
		writeProse(b, post.Content)
		if len(post.Tags) > 0 {
			b.WriteString("<p>")
			for _, t := range post.Tags {
				b.WriteString("<span class=\"badge\">" + esc(t) + "</span> ")
			}
			b.WriteString("</p>")
		}
		b.WriteString(`<script type="application/ld+json">` + naturesite.BlogPostingJsonLD(post, d.Site, d.URL) + `</script>`)
		b.WriteString("</article>")

		if len(related) > 0 {
			b.WriteString("<h2>Related posts</h2>")
			for _, p := range related {
				writePostCard(b, p)
			}
		}
	})
}

// writeProse renders post content as paragraphs with a light markdown
// subset: #/## headings, - lists, and **bold**. Content is plain text in
// the fixtures, so anything fancier falls through as-is.
func writeProse(b *bytes.Buffer, content string) {
	inList := false
	flushList := func() {
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
	}
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flushList()
		case strings.HasPrefix(line, "## "):
			flushList()
			b.WriteString("<h3>" + inline(line[3:]) + "</h3>")
		case strings.HasPrefix(line, "# "):
			flushList()
			b.WriteString("<h2>" + inline(line[2:]) + "</h2>")
		case strings.HasPrefix(line, "- "):
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			b.WriteString("<li>" + inline(line[2:]) + "</li>")
		default:
			flushList()
			b.WriteString("<p>" + inline(line) + "</p>")
		}
	}
	flushList()
}

func inline(s string) string {
	out := esc(s)
	for strings.Count(out, "**") >= 2 {
		out = strings.Replace(out, "**", "<strong>", 1)
		out = strings.Replace(out, "**", "</strong>", 1)
	}
	return out
}
