package renderer

import (
	"bytes"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// Ranges are the time ranges offered above a chart. They are not wired to the data.
var Ranges = []string{"1D", "1W", "1M", "3M", "1Y", "All"}

// RangeSelector renders the time ranges with the active one highlighted.
func RangeSelector(active string) string {
	labels := make([]string, len(Ranges))
	for i, r := range Ranges {
		if r == active {
			labels[i] = "**[" + r + "]**"
		} else {
			labels[i] = r
		}
	}
	return strings.Join(labels, " · ")
}

// fence wraps text in a fenced code block.
func fence(text string) string {
	return "```text\n" + text + "\n```"
}
