package ui

import (
	"os"
	"path/filepath"
	"strings"

	"tunemint/internal/preview"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Accept hints per slot. The hints only filter what the browser lists; the
// preview manager takes whatever path it is handed.
var (
	audioExts = map[string]bool{".mp3": true}
	imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}
)

func setupFileBrowser() {
	uiFileBrowser = tview.NewTreeView()
	uiFileBrowser.SetBorder(true).SetTitle(" Select File (Enter to Pick, Esc Cancel) ")
	uiFileBrowser.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			uiPages.SwitchToPage("main")
			uiApp.SetFocus(uiMintForm)
		}
		return event
	})

	uiFileBrowserModal = newResponsiveModal(uiFileBrowser, 50, 20, 100, 40, 0.7, 0.75)
	uiPages.AddPage("filebrowser", uiFileBrowserModal, true, false)
}

func openFileBrowserHome() {
	home, _ := os.UserHomeDir()
	openFileBrowser(home)
}

// openFileBrowser opens the picker at the given path, listing directories and
// files matching the browse slot's accept hint.
func openFileBrowser(path string) {
	rootDir, _ := filepath.Abs(path)
	rootNode := tview.NewTreeNode(rootDir).SetColor(tcell.ColorYellow).SetReference(rootDir)
	uiFileBrowser.SetRoot(rootNode).SetCurrentNode(rootNode)
	addNodes(rootNode, rootDir)

	uiFileBrowser.SetSelectedFunc(func(node *tview.TreeNode) {
		ref := node.GetReference()
		if ref == nil {
			return
		}
		path := ref.(string)
		fi, err := os.Stat(path)
		if err != nil {
			return
		}

		if fi.IsDir() {
			if len(node.GetChildren()) == 0 {
				addNodes(node, path)
			}
			node.SetExpanded(!node.IsExpanded())
			return
		}

		pickFile(uiBrowseSlot, path)
	})
	uiPages.SwitchToPage("filebrowser")
}

// pickFile stages the chosen file into the browse slot, replacing (and
// releasing) whatever the slot held before.
func pickFile(slot preview.Slot, path string) {
	if _, err := uiPreviews.Select(slot, path); err != nil {
		setStatus("[red]" + err.Error() + "[-]")
	} else {
		setStatus("")
	}
	refreshViewPane()
	uiPages.SwitchToPage("main")
	uiApp.SetFocus(uiMintForm)
}

func addNodes(target *tview.TreeNode, path string) {
	files, err := os.ReadDir(path)
	if err != nil {
		return
	}
	for _, f := range files {
		if strings.HasPrefix(f.Name(), ".") {
			continue
		}
		if !f.IsDir() && !slotAccepts(uiBrowseSlot, f.Name()) {
			continue
		}
		node := tview.NewTreeNode(f.Name()).SetReference(filepath.Join(path, f.Name()))
		if f.IsDir() {
			node.SetColor(tcell.ColorSkyblue)
		}
		target.AddChild(node)
	}
}

func slotAccepts(slot preview.Slot, name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if slot == preview.SlotAudio {
		return audioExts[ext]
	}
	return imageExts[ext]
}
