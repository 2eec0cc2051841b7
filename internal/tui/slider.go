package tui

import (
	"math"
	"strings"

	"github.com/Iron-Ham/veboost/internal/tui/styles"
)

const (
	sliderFill  = "━"
	sliderTrack = "─"
	sliderThumb = "●"
)

// sliderPosition maps v within [lo, hi] to a cell index in [0, width-1].
// Values outside the range are pinned to the ends.
func sliderPosition(v, lo, hi float64, width int) int {
	if width <= 1 || !(hi > lo) || math.IsNaN(v) {
		return 0
	}
	frac := (v - lo) / (hi - lo)
	frac = math.Min(math.Max(frac, 0), 1)
	return int(math.Round(frac * float64(width-1)))
}

// renderSlider draws a one-line slider of width cells.
func renderSlider(st *styles.ThemedStyles, v, lo, hi float64, width int, disabled bool) string {
	if width < 1 {
		return ""
	}
	pos := sliderPosition(v, lo, hi, width)
	left := strings.Repeat(sliderFill, pos)
	right := strings.Repeat(sliderTrack, width-pos-1)

	if disabled {
		return st.SliderDisabled.Render(left + sliderThumb + right)
	}
	return st.SliderFill.Render(left) + st.SliderThumb.Render(sliderThumb) + st.SliderTrack.Render(right)
}

// scaleMarkers lays out "1×" through "5×" evenly under a boost slider.
func scaleMarkers(width int) string {
	const markers = 5
	const markerWidth = 2
	if width < markers*markerWidth {
		return "1×  5×"
	}
	cells := []rune(strings.Repeat(" ", width))
	for i := 0; i < markers; i++ {
		pos := i * (width - markerWidth) / (markers - 1)
		cells[pos] = rune('1' + i)
		cells[pos+1] = '×'
	}
	return string(cells)
}
