package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/nextfinance"
)

// gridColor is the colour of the horizontal guides at 25, 50 and 75.
const gridColor = "#374151"

// SVGPath converts projected points into SVG path commands: "M 0 100 L 50 0 L 100 100".
func SVGPath(points []nextfinance.ProjectedPoint) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %s %s", cmd, num(p.XPct), num(p.YPct))
	}
	return b.String()
}

// SVG draws a chart in a 100x100 view box. ok false renders the no data placeholder.
func SVG(points []nextfinance.ProjectedPoint, ok bool, color string) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" preserveAspectRatio="none">` + "\n")
	if !ok {
		b.WriteString(`  <text x="50" y="50" text-anchor="middle" fill="#6B7280" font-size="6">No data available</text>` + "\n")
		b.WriteString("</svg>\n")
		return b.String()
	}
	fmt.Fprintf(&b, `  <path d="M0 25 L100 25 M0 50 L100 50 M0 75 L100 75" stroke="%s" stroke-width="0.5" vector-effect="non-scaling-stroke"/>`+"\n", gridColor)
	fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round" vector-effect="non-scaling-stroke"/>`+"\n", SVGPath(points), color)
	b.WriteString("</svg>\n")
	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
