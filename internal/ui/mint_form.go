package ui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tunemint/internal/common"
	"tunemint/internal/mint"
	"tunemint/internal/preview"
	"tunemint/internal/receipt"

	"github.com/atotto/clipboard"
	"github.com/rivo/tview"
)

func setupMintForm() {
	uiMintForm = tview.NewForm()

	uiArtistField = tview.NewInputField().SetLabel("Artist").SetFieldWidth(40)
	uiMintForm.AddFormItem(uiArtistField)

	uiTitleField = tview.NewInputField().SetLabel("Title").SetFieldWidth(40)
	uiMintForm.AddFormItem(uiTitleField)

	uiCopiesField = tview.NewInputField().SetLabel("Copies").SetFieldWidth(10).
		SetAcceptanceFunc(tview.InputFieldInteger)
	uiMintForm.AddFormItem(uiCopiesField)

	uiPriceField = tview.NewInputField().SetLabel("Price (SOL)").SetFieldWidth(10).
		SetAcceptanceFunc(tview.InputFieldFloat)
	uiMintForm.AddFormItem(uiPriceField)

	uiDescArea = tview.NewTextArea().SetLabel("Description")
	uiDescArea.SetSize(4, 40)
	uiMintForm.AddFormItem(uiDescArea)

	uiMintForm.AddButton("Audio File", func() { browseFor(preview.SlotAudio) })
	uiMintForm.AddButton("Cover Image", func() { browseFor(preview.SlotImage) })

	mintButtonIndex := uiMintForm.GetButtonCount()
	uiMintForm.AddButton("Mint", func() { submit() })
	uiSubmitButton = uiMintForm.GetButton(mintButtonIndex)

	uiMintForm.AddButton("Clear", func() { clearForm() })

	styleForm(uiMintForm)
	applyMetadata()
}

// collectMetadata reads the form fields into a Metadata value. Unparseable
// numbers collapse to zero and are caught by validation.
func collectMetadata() mint.Metadata {
	copies, _ := strconv.Atoi(strings.TrimSpace(uiCopiesField.GetText()))
	price, _ := strconv.ParseFloat(strings.TrimSpace(uiPriceField.GetText()), 64)
	return mint.Metadata{
		ArtistName:  uiArtistField.GetText(),
		Title:       uiTitleField.GetText(),
		Description: uiDescArea.GetText(),
		Copies:      copies,
		Price:       price,
	}
}

// applyMetadata writes uiMeta back into the form fields.
func applyMetadata() {
	uiArtistField.SetText(uiMeta.ArtistName)
	uiTitleField.SetText(uiMeta.Title)
	uiCopiesField.SetText(strconv.Itoa(uiMeta.Copies))
	uiPriceField.SetText(common.PriceString(uiMeta.Price))
	uiDescArea.SetText(uiMeta.Description, false)
}

func clearForm() {
	uiMeta.Reset()
	applyMetadata()
	uiPreviews.Clear()
	refreshViewPane()
	setStatus("")
}

// submit is the form's mint action. Submitting while signed out opens the
// wallet page instead of validating; the user resubmits after connecting.
func submit() {
	if uiOrch.InFlight() {
		return
	}
	if !uiSession.HasWallet() {
		showConnect()
		return
	}

	uiMeta = collectMetadata()
	audio := uiPreviews.Get(preview.SlotAudio)
	image := uiPreviews.Get(preview.SlotImage)

	if msg := mint.Validate(uiMeta, audio != nil, image != nil); msg != "" {
		setStatus("[red]" + msg + "[-]")
		return
	}

	meta := uiMeta
	audioPath := audio.StagedPath()
	imagePath := image.StagedPath()

	setStatus("[yellow]Minting... this can take a moment.[-]")
	uiSubmitButton.SetDisabled(true)

	go func() {
		out := uiOrch.Submit(context.Background(), meta, audioPath, imagePath, uiSession)
		uiApp.QueueUpdateDraw(func() { deliverOutcome(out) })
	}()
}

// deliverOutcome hands a finished submission to the view. A mint that
// completes after teardown is dropped: its handles are already released and
// the widgets must not be touched.
func deliverOutcome(out mint.Outcome) {
	if uiTornDown {
		return
	}
	applyOutcome(out)
}

// applyOutcome reacts to a finished submission: reset and celebrate on
// success, keep everything as entered on failure.
func applyOutcome(out mint.Outcome) {
	uiSubmitButton.SetDisabled(false)

	if !out.OK {
		setStatus("[red]" + out.Message + "[-]")
		return
	}

	if err := uiReceipts.Append(receipt.Receipt{
		Title:      strings.TrimSpace(uiMeta.Title),
		Identifier: out.Identifier,
		Copies:     uint64(uiMeta.Copies),
		Price:      common.PriceString(uiMeta.Price),
		MintedAt:   time.Now().UTC(),
	}); err != nil {
		uiLog.Warn("receipt.append_failed", "err", err.Error())
	}
	_ = clipboard.WriteAll(out.Identifier)

	uiMeta.Reset()
	applyMetadata()
	uiPreviews.Clear()
	refreshViewPane()
	setStatus("")
	showSuccessModal(out.Identifier)
}

func browseFor(slot preview.Slot) {
	uiBrowseSlot = slot
	openFileBrowserHome()
}
