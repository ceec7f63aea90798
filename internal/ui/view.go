package ui

import (
	"fmt"

	"tunemint/internal/preview"

	"github.com/rivo/tview"
)

var uiViewFlex *tview.Flex

func setupViewPane() {
	uiViewIdentity = tview.NewTextView().SetDynamicColors(true)
	uiViewAudio = tview.NewTextView().SetDynamicColors(true)
	uiViewImage = tview.NewTextView().SetDynamicColors(true)
	uiViewStatus = tview.NewTextView().SetDynamicColors(true)

	uiViewFlex = tview.NewFlex().SetDirection(tview.FlexRow)
	uiViewFlex.SetBorder(true).SetTitle(" Release Preview ")

	uiViewFlex.AddItem(tview.NewTextView().SetText(""), 1, 0, false)
	uiViewFlex.AddItem(makeRow("Wallet:", uiViewIdentity), 1, 0, false)
	uiViewFlex.AddItem(tview.NewTextView().SetText(""), 1, 0, false)
	uiViewFlex.AddItem(makeRow("Audio:", uiViewAudio), 1, 0, false)
	uiViewFlex.AddItem(makeRow("Cover:", uiViewImage), 1, 0, false)
	uiViewFlex.AddItem(tview.NewTextView().SetText(""), 1, 0, false)
	uiViewFlex.AddItem(uiViewStatus, 0, 1, false)

	refreshViewPane()
}

func uiViewFlexPane() tview.Primitive {
	return uiViewFlex
}

// refreshViewPane mirrors session and file-selection state into the right
// pane. The status line is managed separately by setStatus.
func refreshViewPane() {
	if id, ok := uiSession.Identity(); ok {
		uiViewIdentity.SetText("[green]" + id + "[-]")
	} else {
		uiViewIdentity.SetText("[yellow]not connected[-]")
	}

	uiViewAudio.SetText(slotText(preview.SlotAudio, ".mp3 file"))
	uiViewImage.SetText(slotText(preview.SlotImage, "image file"))
}

func slotText(slot preview.Slot, hint string) string {
	h := uiPreviews.Get(slot)
	if h == nil {
		return fmt.Sprintf("[gray]none (%s)[-]", hint)
	}
	return fmt.Sprintf("%s [gray](%s)[-]", h.Name, formatBytes(h.Size))
}

func setStatus(text string) {
	uiViewStatus.SetText(text)
}
