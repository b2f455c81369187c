// ABOUTME: Sparkline widget renders mini charts using block characters
// ABOUTME: Used for savings percentages across the rows of the scenario table

package widgets

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// SparklineBlocks are the Unicode block characters for different heights
var SparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values (oldest first) in width cells
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := sampleValues(values, width)
	lo, hi := slices.Min(sampled), slices.Max(sampled)

	result := make([]rune, len(sampled))
	for i, v := range sampled {
		result[i] = valueToBlock(v, lo, hi)
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(string(result))
}

// sampleValues keeps the most recent values when there are more than width
// and pads with the first value when there are fewer
func sampleValues(values []float64, width int) []float64 {
	if len(values) >= width {
		return values[len(values)-width:]
	}

	result := make([]float64, width)
	padding := width - len(values)
	for i := range padding {
		result[i] = values[0]
	}
	copy(result[padding:], values)
	return result
}

func valueToBlock(value, lo, hi float64) rune {
	if hi == lo {
		return SparklineBlocks[len(SparklineBlocks)/2]
	}

	idx := int((value - lo) / (hi - lo) * float64(len(SparklineBlocks)-1))
	idx = min(max(idx, 0), len(SparklineBlocks)-1)
	return SparklineBlocks[idx]
}
