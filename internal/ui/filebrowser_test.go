package ui

import (
	"os"
	"path/filepath"
	"testing"

	"tunemint/internal/preview"

	"github.com/rivo/tview"
)

func TestAddNodesFiltersByBrowseSlot(t *testing.T) {
	resetUITestState(t, &fakeWallet{}, &fakeSubmitter{})

	dir := t.TempDir()
	for _, name := range []string{"track.mp3", "cover.png", "notes.txt", ".hidden.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "albums"), 0700); err != nil {
		t.Fatal(err)
	}

	uiBrowseSlot = preview.SlotAudio
	root := tview.NewTreeNode(dir)
	addNodes(root, dir)

	var names []string
	for _, n := range root.GetChildren() {
		names = append(names, n.GetText())
	}
	if len(names) != 2 {
		t.Fatalf("expected directory and mp3 only, got %v", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["albums"] || !seen["track.mp3"] {
		t.Fatalf("expected albums and track.mp3, got %v", names)
	}
}

func TestPickFileStagesAndReturnsToMain(t *testing.T) {
	resetUITestState(t, &fakeWallet{}, &fakeSubmitter{})

	path := filepath.Join(t.TempDir(), "track.mp3")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	pickFile(preview.SlotAudio, path)

	h := uiPreviews.Get(preview.SlotAudio)
	if h == nil || h.Name != "track.mp3" {
		t.Fatalf("expected staged audio handle, got %+v", h)
	}
	if frontPageName() != "main" {
		t.Fatalf("expected to return to main, got %q", frontPageName())
	}
}

func TestPickFileErrorShowsStatus(t *testing.T) {
	resetUITestState(t, &fakeWallet{}, &fakeSubmitter{})

	pickFile(preview.SlotAudio, filepath.Join(t.TempDir(), "missing.mp3"))

	if uiPreviews.Get(preview.SlotAudio) != nil {
		t.Fatalf("expected no handle for a missing file")
	}
	if uiViewStatus.GetText(true) == "" {
		t.Fatalf("expected an error message in the status line")
	}
}
