package ui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"tunemint/internal/mint"
	"tunemint/internal/preview"
	"tunemint/internal/receipt"

	"github.com/rivo/tview"
)

type fakeWallet struct {
	address      string
	wallet       bool
	connection   bool
	keystore     bool
	keystoreAddr string
	connectErr   error
	connects     int
	disconnects  int
}

func (f *fakeWallet) Identity() (string, bool) { return f.address, f.wallet }
func (f *fakeWallet) HasWallet() bool          { return f.wallet }
func (f *fakeWallet) HasConnection() bool      { return f.connection }
func (f *fakeWallet) KeystoreExists() bool     { return f.keystore }
func (f *fakeWallet) KeystoreAddress() string  { return f.keystoreAddr }

func (f *fakeWallet) Connect(ctx context.Context, passphrase []byte) error {
	f.connects++
	if f.connectErr != nil {
		return f.connectErr
	}
	f.wallet = true
	f.connection = true
	return nil
}

func (f *fakeWallet) Disconnect() error {
	f.disconnects++
	f.wallet = false
	f.connection = false
	return nil
}

type fakeSubmitter struct {
	inFlight bool
	calls    int
	outcome  mint.Outcome
}

func (f *fakeSubmitter) Submit(ctx context.Context, meta mint.Metadata, audioPath, imagePath string, sess mint.Session) mint.Outcome {
	f.calls++
	return f.outcome
}

func (f *fakeSubmitter) InFlight() bool { return f.inFlight }

func resetUITestState(t *testing.T, sess walletSession, orch submitter) {
	t.Helper()

	uiApp = tview.NewApplication()
	uiPages = tview.NewPages()
	uiLog = slog.New(slog.NewTextHandler(io.Discard, nil))
	uiSession = sess
	uiOrch = orch

	previews, err := preview.NewManager(filepath.Join(t.TempDir(), "previews"), 8)
	if err != nil {
		t.Fatalf("preview manager: %v", err)
	}
	uiPreviews = previews
	uiReceipts = receipt.NewStore(t.TempDir())

	uiMeta = mint.DefaultMetadata()
	uiSessionReady = true
	uiTornDown = false

	setupUI()
	uiPages.SwitchToPage("main")
}

func stageTestFile(t *testing.T, slot preview.Slot, name string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("payload"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := uiPreviews.Select(slot, path); err != nil {
		t.Fatalf("select %s: %v", name, err)
	}
}

func frontPageName() string {
	name, _ := uiPages.GetFrontPage()
	return name
}
