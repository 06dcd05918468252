package naturesite

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const icsProductID = "-//Navigating Nature//Event Calendar//EN"

// renderICS writes the event collection as an iCalendar file of all-day
// events, so visitors can subscribe from their own calendar apps.
func (a *App) renderICS(c echo.Context, events []CalendarEvent) error {
	cfg := a.Store.Config()
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/calendar; charset=utf-8")
	w.Header().Set(echo.HeaderContentDisposition, `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", icsProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:%s Events\n", icsEscape(cfg.SiteName))
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	now := time.Now().UTC().Format("20060102T150405Z")
	for _, event := range events {
		date, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}
		writeICSEvent(w, event, date, now)
	}

	fmt.Fprintln(w, "END:VCALENDAR")
	return nil
}

func writeICSEvent(w io.Writer, event CalendarEvent, date time.Time, stamp string) {
	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s@navigatingnature\n", event.ID)
	fmt.Fprintf(w, "DTSTAMP:%s\n", stamp)
	fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", date.Format("20060102"))
	fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", date.AddDate(0, 0, 1).Format("20060102"))
	fmt.Fprintf(w, "SUMMARY:%s\n", icsEscape(event.Title))
	fmt.Fprintf(w, "DESCRIPTION:%s\n", icsEscape(event.Description))
	fmt.Fprintf(w, "CATEGORIES:%s\n", strings.ToUpper(string(event.Type)))
	fmt.Fprintln(w, "END:VEVENT")
}

// icsEscape escapes the characters RFC 5545 requires in text values.
func icsEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
