package ui

import (
	"log/slog"

	"tunemint/internal/config"
	"tunemint/internal/mint"
	"tunemint/internal/preview"
	"tunemint/internal/receipt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewApp wires the UI to its collaborators. The session, orchestrator,
// previews and receipts are injected so the view layer never constructs the
// chain-facing pieces itself.
func NewApp(c config.AppConfig, sess walletSession, orch submitter, previews *preview.Manager, receipts *receipt.Store, log *slog.Logger) *AppHandle {
	uiCfg = c
	uiDataDir = config.ExpandPath(uiCfg.DataDir)
	uiSession = sess
	uiOrch = orch
	uiPreviews = previews
	uiReceipts = receipts
	uiLog = log
	uiMeta = mint.DefaultMetadata()
	uiSessionReady = false
	uiTornDown = false

	setupUI()
	uiPages.SwitchToPage("connect")

	// The connect page shows a loading state until the wallet surface has
	// reported whether a keystore exists.
	go func() {
		uiApp.QueueUpdateDraw(func() {
			if uiTornDown {
				return
			}
			uiSessionReady = true
			refreshConnect()
		})
	}()

	return &AppHandle{}
}

type AppHandle struct{}

// Run blocks until the UI exits, then releases everything the view owns.
func (a *AppHandle) Run() error {
	err := uiApp.SetRoot(uiPages, true).EnableMouse(true).Run()
	teardown()
	return err
}

// teardown releases held preview handles and drops late mint callbacks.
func teardown() {
	uiTornDown = true
	if uiPreviews != nil {
		uiPreviews.Close()
	}
}

func setupUI() {
	tview.Styles.ContrastBackgroundColor = colorUnfocusedBg
	tview.Styles.TitleColor = tcell.ColorLightSkyBlue

	setupConnect()
	setupMainLayout()
	setupFileBrowser()
	setupReceipts()
	setupModals()
}

func setupMainLayout() {
	setupMintForm()
	setupViewPane()

	formFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(uiMintForm, 0, 1, true)
	formFlex.SetBorder(true).SetTitle(" New Release (Ctrl+R Receipts | Ctrl+W Wallet) ")

	mainFlex := newResponsiveSplit(formFlex, uiViewFlexPane(), 0.55, 40, 30)

	mainFlex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlR:
			showReceipts()
			return nil
		case tcell.KeyCtrlW:
			showConnect()
			return nil
		case tcell.KeyCtrlQ:
			uiApp.Stop()
			return nil
		case tcell.KeyEsc:
			uiApp.SetFocus(uiMintForm)
			return nil
		default:
			return event
		}
	})

	uiPages.AddPage("main", mainFlex, true, false)
}
