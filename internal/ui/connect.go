package ui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	qrcode "github.com/skip2/go-qrcode"
)

func setupConnect() {
	uiConnectStatus = tview.NewTextView().SetDynamicColors(true)
	uiConnectQR = tview.NewTextView().SetDynamicColors(false).SetTextAlign(tview.AlignCenter)
	uiConnectForm = tview.NewForm()

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(uiConnectStatus, 2, 0, false).
		AddItem(uiConnectQR, 0, 1, false).
		AddItem(uiConnectForm, 9, 0, true)
	layout.SetBorder(true).SetTitle(" Wallet ").SetTitleAlign(tview.AlignCenter)

	uiPages.AddPage("connect", newResponsiveModal(layout, 48, 18, 90, 40, 0.6, 0.8), true, true)

	refreshConnect()
}

func showConnect() {
	refreshConnect()
	uiPages.SwitchToPage("connect")
	uiApp.SetFocus(uiConnectForm)
}

// refreshConnect rebuilds the wallet page for the current session state:
// loading, signed out, or signed in.
func refreshConnect() {
	uiConnectForm.Clear(true)
	uiConnectQR.SetText("")

	if !uiSessionReady {
		uiConnectStatus.SetText("[yellow]Loading wallet state...[-]")
		return
	}

	if id, ok := uiSession.Identity(); ok {
		uiConnectStatus.SetText("[green]Connected:[-] " + id)
		uiConnectQR.SetText(addressQR(id))
		uiConnectForm.AddButton("Copy Address", func() {
			if clipboard.WriteAll(id) == nil {
				uiConnectStatus.SetText("[green]Connected:[-] " + id + "  [green]✓ copied[-]")
			}
		})
		uiConnectForm.AddButton("Continue", func() {
			uiPages.SwitchToPage("main")
			uiApp.SetFocus(uiMintForm)
		})
		uiConnectForm.AddButton("Disconnect", func() { disconnectWallet() })
		styleForm(uiConnectForm)
		return
	}

	if uiSession.KeystoreExists() {
		label := "the wallet"
		if addr := uiSession.KeystoreAddress(); addr != "" {
			label = addr
		}
		uiConnectStatus.SetText("[yellow]Enter your passphrase to unlock[-] " + label + "[yellow].[-]")
	} else {
		uiConnectStatus.SetText("[yellow]No wallet yet. Choose a passphrase to create one.[-]")
	}

	uiConnectForm.AddPasswordField("Passphrase", "", 0, '*', nil)
	uiConnectForm.AddButton("Connect", func() { connectWallet() })
	uiConnectForm.AddButton("Quit", func() { uiApp.Stop() })
	uiConnectForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			connectWallet()
			return nil
		}
		return event
	})
	styleForm(uiConnectForm)
}

func connectWallet() {
	item := uiConnectForm.GetFormItemByLabel("Passphrase")
	if item == nil {
		return
	}
	pass := item.(*tview.InputField).GetText()
	if pass == "" {
		uiConnectStatus.SetText("[red]Passphrase is required.[-]")
		return
	}

	uiConnectStatus.SetText("[yellow]Connecting...[-]")

	go func() {
		err := uiSession.Connect(context.Background(), []byte(pass))
		uiApp.QueueUpdateDraw(func() {
			if uiTornDown {
				return
			}
			if err != nil {
				uiLog.Warn("wallet.connect_failed", "err", err.Error())
				uiConnectStatus.SetText("[red]" + err.Error() + "[-]")
				return
			}
			refreshConnect()
			refreshViewPane()
			uiPages.SwitchToPage("main")
			uiApp.SetFocus(uiMintForm)
		})
	}()
}

func disconnectWallet() {
	if err := uiSession.Disconnect(); err != nil {
		uiConnectStatus.SetText("[red]" + err.Error() + "[-]")
		return
	}
	refreshConnect()
	refreshViewPane()
}

// addressQR renders the wallet address as a terminal QR code so it can be
// scanned for deposits.
func addressQR(address string) string {
	q, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return ""
	}
	return q.ToSmallString(false)
}
