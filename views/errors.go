package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

// NotFound renders the 404 page.
func NotFound(d naturesite.PageData) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Page Not Found</h1>")
		b.WriteString("<p>The trail you followed leads nowhere. <a href=\"/\">Head back home</a>.</p>")
	})
}

// ServerError renders the 500 page.
func ServerError(d naturesite.PageData) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Something Went Wrong</h1>")
		b.WriteString("<p>An unexpected error occurred. Please try again later.</p>")
	})
}
