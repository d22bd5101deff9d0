// Package grapheme wraps uniseg for the cluster-level text handling shared by
// the buffer and the terminal host.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters back into a string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
//
// Tabs advance to the next multiple of tabWidth measured from cell.
func Width(cluster string, cell, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		if cell < 0 {
			cell = 0
		}
		return tabWidth - cell%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Cells returns the cell offset of each cluster boundary in clusters: the
// result has len(clusters)+1 entries, the last being the total width.
func Cells(clusters []string, tabWidth int) []int {
	out := make([]int, len(clusters)+1)
	cell := 0
	for i, c := range clusters {
		out[i] = cell
		cell += Width(c, cell, tabWidth)
	}
	out[len(clusters)] = cell
	return out
}
