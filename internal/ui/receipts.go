package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func setupReceipts() {
	uiReceiptList = tview.NewList().ShowSecondaryText(true)
	uiReceiptList.SetBorder(true).SetTitle(" Minted Releases (Esc to close) ")
	uiReceiptList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			uiPages.SwitchToPage("main")
			uiApp.SetFocus(uiMintForm)
		}
		return event
	})
	uiPages.AddPage("receipts", newResponsiveModal(uiReceiptList, 50, 15, 90, 30, 0.6, 0.65), true, false)
}

func showReceipts() {
	uiReceiptList.Clear()
	receipts, err := uiReceipts.List()
	if err != nil {
		uiLog.Warn("receipt.list_failed", "err", err.Error())
	}
	if len(receipts) == 0 {
		uiReceiptList.AddItem("No mints yet", "", 0, nil)
	}
	for _, r := range receipts {
		main := fmt.Sprintf("%s  (%d × %s SOL)", r.Title, r.Copies, r.Price)
		second := fmt.Sprintf("%s  %s", r.MintedAt.Local().Format("2006-01-02 15:04"), r.Identifier)
		uiReceiptList.AddItem(main, second, 0, nil)
	}
	uiPages.SwitchToPage("receipts")
}
