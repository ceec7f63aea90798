package ui

import (
	"strings"
	"testing"

	"tunemint/internal/preview"
)

func TestRefreshViewPaneSignedOutNoFiles(t *testing.T) {
	resetUITestState(t, &fakeWallet{}, &fakeSubmitter{})

	refreshViewPane()

	if got := uiViewIdentity.GetText(true); !strings.Contains(got, "not connected") {
		t.Fatalf("expected not-connected wallet row, got %q", got)
	}
	if got := uiViewAudio.GetText(true); !strings.Contains(got, "none (.mp3 file)") {
		t.Fatalf("expected empty audio row with hint, got %q", got)
	}
	if got := uiViewImage.GetText(true); !strings.Contains(got, "none (image file)") {
		t.Fatalf("expected empty cover row with hint, got %q", got)
	}
}

func TestRefreshViewPaneShowsSelections(t *testing.T) {
	resetUITestState(t, &fakeWallet{wallet: true, connection: true, address: "addr"}, &fakeSubmitter{})

	stageTestFile(t, preview.SlotAudio, "track.mp3")
	stageTestFile(t, preview.SlotImage, "cover.png")
	refreshViewPane()

	if got := uiViewIdentity.GetText(true); !strings.Contains(got, "addr") {
		t.Fatalf("expected address in wallet row, got %q", got)
	}
	if got := uiViewAudio.GetText(true); !strings.Contains(got, "track.mp3") {
		t.Fatalf("expected audio file name, got %q", got)
	}
	if got := uiViewImage.GetText(true); !strings.Contains(got, "cover.png") {
		t.Fatalf("expected cover file name, got %q", got)
	}
}

func TestSlotAccepts(t *testing.T) {
	cases := []struct {
		slot preview.Slot
		name string
		want bool
	}{
		{preview.SlotAudio, "track.mp3", true},
		{preview.SlotAudio, "track.MP3", true},
		{preview.SlotAudio, "track.wav", false},
		{preview.SlotAudio, "cover.png", false},
		{preview.SlotImage, "cover.png", true},
		{preview.SlotImage, "cover.jpeg", true},
		{preview.SlotImage, "cover.webp", true},
		{preview.SlotImage, "track.mp3", false},
	}
	for _, c := range cases {
		if got := slotAccepts(c.slot, c.name); got != c.want {
			t.Fatalf("slotAccepts(%v, %q) = %v, want %v", c.slot, c.name, got, c.want)
		}
	}
}
