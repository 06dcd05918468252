package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

var weekdayHeads = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Calendar renders the month grid with prev/next navigation and an ICS
// export link.
func Calendar(d naturesite.PageData, grid naturesite.MonthGrid, prev, next string) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Event Calendar</h1>")
		b.WriteString("<p><a href=\"" + esc(prev) + "\">← previous</a> ")
		b.WriteString("<strong>" + grid.MonthName() + " " + strconv.Itoa(grid.Year) + "</strong> ")
		b.WriteString("<a href=\"" + esc(next) + "\">next →</a></p>")

		b.WriteString("<div class=\"calendar\">")
		for _, h := range weekdayHeads {
			b.WriteString("<div class=\"head\">" + h + "</div>")
		}
		for _, cell := range grid.Cells {
			if cell.Day == 0 {
				b.WriteString("<div class=\"cell blank\"></div>")
				continue
			}
			b.WriteString("<div class=\"cell\"><span>" + strconv.Itoa(cell.Day) + "</span>")
			for _, ev := range cell.Events {
				b.WriteString("<div class=\"event " + esc(string(ev.Type)) + "\" title=\"" + esc(ev.Description) + "\">" + esc(ev.Title) + "</div>")
			}
			b.WriteString("</div>")
		}
		b.WriteString("</div>")

		b.WriteString("<p><a href=\"/calendar/export.ics\">Subscribe (iCal)</a></p>")
	})
}
