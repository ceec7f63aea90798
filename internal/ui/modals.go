package ui

import (
	"github.com/rivo/tview"
)

func setupModals() {
	uiSuccessModal = tview.NewModal().
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(index int, label string) {
			uiPages.SwitchToPage("main")
			uiApp.SetFocus(uiMintForm)
		})
	uiPages.AddPage("success", uiSuccessModal, true, false)
}

func showSuccessModal(identifier string) {
	uiSuccessModal.SetText("Minted!\n\n" + identifier + "\n\n(identifier copied to clipboard)")
	uiPages.SwitchToPage("success")
}
