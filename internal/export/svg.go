package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/thermochem/internal/analysis"
)

const (
	svgMargin     = 50.0
	svgBackground = "#0a0a0a"
	svgAxis       = "#666688"
)

// SweepToSVG draws one property of a sweep against temperature. It returns
// an empty string when there are fewer than two points.
func SweepToSVG(sw analysis.Sweep, label string, get func(analysis.SweepPoint) float64, width, height int, strokeColor string) string {
	if len(sw.Points) < 2 {
		return ""
	}

	ts := sw.Column(func(p analysis.SweepPoint) float64 { return p.T })
	ys := sw.Column(get)
	tr := analysis.ColumnRange(ts)
	yr := analysis.ColumnRange(ys)

	rangeT := tr.Max - tr.Min
	if rangeT == 0 {
		rangeT = 1
	}
	rangeY := yr.Max - yr.Min
	if rangeY == 0 {
		rangeY = 1
	}
	yr.Min -= rangeY * 0.05
	yr.Max += rangeY * 0.05
	rangeY = yr.Max - yr.Min

	plotW := float64(width) - 2*svgMargin
	plotH := float64(height) - 2*svgMargin

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)

	fmt.Fprintf(&sb, `<g stroke="%s" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, svgAxis,
		svgMargin, svgMargin+plotH, svgMargin+plotW, svgMargin+plotH,
		svgMargin, svgMargin, svgMargin, svgMargin+plotH)

	fmt.Fprintf(&sb, `<g fill="%s" font-family="monospace" font-size="11">
<text x="%.1f" y="%.1f">%.4g K</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g K</text>
<text x="%.1f" y="%.1f">%.4g</text>
<text x="%.1f" y="%.1f">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="middle">%s %s</text>
</g>
`, svgAxis,
		svgMargin, svgMargin+plotH+16, tr.Min,
		svgMargin+plotW, svgMargin+plotH+16, tr.Max,
		4.0, svgMargin+plotH, yr.Min,
		4.0, svgMargin+10, yr.Max,
		svgMargin+plotW/2, svgMargin/2, escape(sw.Species), escape(label))

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)
	for i := range ts {
		x := svgMargin + (ts[i]-tr.Min)/rangeT*plotW
		y := svgMargin + plotH - (ys[i]-yr.Min)/rangeY*plotH
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
