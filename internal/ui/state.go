package ui

import (
	"context"
	"log/slog"

	"tunemint/internal/config"
	"tunemint/internal/mint"
	"tunemint/internal/preview"
	"tunemint/internal/receipt"

	"github.com/rivo/tview"
)

// walletSession is the narrow surface of the wallet collaborator the UI uses:
// read identity, connect, disconnect. It is never reached into directly.
type walletSession interface {
	Identity() (string, bool)
	HasWallet() bool
	HasConnection() bool
	KeystoreExists() bool
	KeystoreAddress() string
	Connect(ctx context.Context, passphrase []byte) error
	Disconnect() error
}

type submitter interface {
	Submit(ctx context.Context, meta mint.Metadata, audioPath, imagePath string, sess mint.Session) mint.Outcome
	InFlight() bool
}

var (
	uiApp   = tview.NewApplication()
	uiPages = tview.NewPages()

	uiCfg     config.AppConfig
	uiDataDir string
	uiLog     *slog.Logger

	uiSession  walletSession
	uiOrch     submitter
	uiPreviews *preview.Manager
	uiReceipts *receipt.Store

	uiMeta mint.Metadata

	uiSessionReady bool
	uiTornDown     bool

	uiConnectForm   *tview.Form
	uiConnectStatus *tview.TextView
	uiConnectQR     *tview.TextView

	uiMintForm     *tview.Form
	uiArtistField  *tview.InputField
	uiTitleField   *tview.InputField
	uiCopiesField  *tview.InputField
	uiPriceField   *tview.InputField
	uiDescArea     *tview.TextArea
	uiSubmitButton *tview.Button

	uiViewIdentity *tview.TextView
	uiViewAudio    *tview.TextView
	uiViewImage    *tview.TextView
	uiViewStatus   *tview.TextView

	uiFileBrowser      *tview.TreeView
	uiFileBrowserModal tview.Primitive
	uiBrowseSlot       preview.Slot

	uiReceiptList  *tview.List
	uiSuccessModal *tview.Modal
)
