package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/navigatingnature/naturesite"
)

// MapExplorer renders each region image with its points of interest placed
// by percentage coordinates, plus a legend below.
func MapExplorer(d naturesite.PageData, regions []naturesite.MapRegion) templ.Component {
	return page(d, func(b *bytes.Buffer) {
		b.WriteString("<h1>Explore the Land</h1>")
		for _, region := range regions {
			b.WriteString("<h2>" + esc(region.Name) + "</h2>")
			b.WriteString("<p>" + esc(region.Description) + "</p>")
			b.WriteString("<div class=\"map-region\">")
			b.WriteString("<img src=\"" + esc(region.ImageURL) + "\" alt=\"" + esc(region.Name) + "\"/>")
			for i, poi := range region.PointsOfInterest {
				b.WriteString(fmt.Sprintf(
					"<span class=\"poi\" style=\"left:%.0f%%;top:%.0f%%\" title=\"%s\">%d</span>",
					poi.X, poi.Y, esc(poi.Name+" — "+poi.Description), i+1,
				))
			}
			b.WriteString("</div><ol>")
			for _, poi := range region.PointsOfInterest {
				b.WriteString("<li><strong>" + esc(poi.Name) + "</strong> <span class=\"badge\">" + esc(string(poi.Type)) + "</span> " + esc(poi.Description) + "</li>")
			}
			b.WriteString("</ol>")
		}
	})
}
