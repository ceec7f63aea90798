package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// clampDim sizes one modal dimension: a fraction of the available space,
// clamped between min and max and never larger than the space itself.
func clampDim(total int, frac float64, min, max int) int {
	d := int(float64(total) * frac)
	if d < min {
		d = min
	}
	if max > 0 && d > max {
		d = max
	}
	if d > total {
		d = total
	}
	return d
}

// responsiveModal centers its content on the screen, re-deriving the modal
// size from the terminal size on every resize.
type responsiveModal struct {
	*tview.Flex
	content      tview.Primitive
	minW, minH   int
	maxW, maxH   int
	fracW, fracH float64
	lastW, lastH int
}

func newResponsiveModal(p tview.Primitive, minW, minH, maxW, maxH int, fracW, fracH float64) *responsiveModal {
	r := &responsiveModal{
		Flex:    tview.NewFlex(),
		content: p,
		minW:    minW, minH: minH,
		maxW: maxW, maxH: maxH,
		fracW: fracW, fracH: fracH,
	}

	// Initial layout before the first draw: content at minimum size between
	// proportional spacers.
	column := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(p, minH, 0, true).
		AddItem(nil, 0, 1, false)
	r.Flex.AddItem(nil, 0, 1, false).
		AddItem(column, minW, 0, true).
		AddItem(nil, 0, 1, false)

	return r
}

func (r *responsiveModal) Draw(screen tcell.Screen) {
	_, _, w, h := r.GetRect()
	if w != r.lastW || h != r.lastH {
		mw := clampDim(w, r.fracW, r.minW, r.maxW)
		mh := clampDim(h, r.fracH, r.minH, r.maxH)

		column := tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, (h-mh)/2, 0, false).
			AddItem(r.content, mh, 0, true).
			AddItem(nil, 0, 1, false)

		r.Flex.Clear().
			AddItem(nil, (w-mw)/2, 0, false).
			AddItem(column, mw, 0, true).
			AddItem(nil, 0, 1, false)

		r.lastW, r.lastH = w, h
	}
	r.Flex.Draw(screen)
}

// responsiveSplit is a two-pane horizontal split that keeps the left pane at
// a fixed ratio without letting either pane fall below its minimum width.
type responsiveSplit struct {
	*tview.Flex
	left, right  tview.Primitive
	ratio        float64
	minLeft      int
	minRight     int
	lastW, lastH int
}

func newResponsiveSplit(left, right tview.Primitive, ratio float64, minLeft, minRight int) *responsiveSplit {
	r := &responsiveSplit{
		Flex:     tview.NewFlex(),
		left:     left,
		right:    right,
		ratio:    ratio,
		minLeft:  minLeft,
		minRight: minRight,
	}
	r.Flex.AddItem(left, 0, 1, true)
	r.Flex.AddItem(right, 0, 1, false)
	return r
}

func (r *responsiveSplit) Draw(screen tcell.Screen) {
	x, y, w, h := r.GetRect()
	if w != r.lastW || h != r.lastH {
		leftW := int(float64(w) * r.ratio)
		if leftW < r.minLeft {
			leftW = r.minLeft
		}
		if w-leftW < r.minRight {
			leftW = w - r.minRight
		}
		if leftW < 0 {
			leftW = 0
		}

		r.Flex.SetRect(x, y, w, h)
		r.Flex.ResizeItem(r.left, leftW, 0)
		r.Flex.ResizeItem(r.right, 0, 1)

		r.lastW, r.lastH = w, h
	}
	r.Flex.Draw(screen)
}

// makeRow builds one labeled line of the preview pane.
func makeRow(label string, content *tview.TextView) *tview.Flex {
	f := tview.NewFlex().SetDirection(tview.FlexColumn)
	f.AddItem(tview.NewTextView().SetText(label).SetTextColor(tcell.ColorYellow), 8, 0, false)
	f.AddItem(content, 0, 1, false)
	return f
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
