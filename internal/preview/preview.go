package preview

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Slot identifies which of the two file inputs a handle belongs to.
type Slot int

const (
	SlotAudio Slot = iota
	SlotImage
)

func (s Slot) String() string {
	if s == SlotAudio {
		return "audio"
	}
	return "image"
}

// Handle is a live preview of a selected file: a staged snapshot copy plus an
// open descriptor over it. Both are real resources; a handle must be released
// on every exit path (replacement, removal, manager teardown).
type Handle struct {
	SourcePath string
	Name       string
	Size       int64

	staged   string
	file     *os.File
	released bool
}

// StagedPath returns the path of the staged snapshot. The snapshot stays
// stable even if the user moves or edits the source file after selection.
func (h *Handle) StagedPath() string {
	return h.staged
}

// Manager owns the preview handles for one form session. It is mutated only
// from the UI event loop, so there is no locking.
type Manager struct {
	dir    string
	budget int
	seq    int
	live   int
	slots  map[Slot]*Handle
}

// NewManager creates a manager staging previews under dir. budget caps the
// number of simultaneously live handles; correct release keeps it at two at
// most, a leak on replacement would exhaust it.
func NewManager(dir string, budget int) (*Manager, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Manager{
		dir:    dir,
		budget: budget,
		slots:  make(map[Slot]*Handle),
	}, nil
}

// Select stages the file at path into the given slot, releasing any handle
// the slot already holds first. At most one handle is live per slot.
func (m *Manager) Select(slot Slot, path string) (*Handle, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	m.Remove(slot)

	if m.live >= m.budget {
		return nil, fmt.Errorf("preview handle budget exhausted (%d live)", m.live)
	}

	m.seq++
	staged := filepath.Join(m.dir, fmt.Sprintf("%d_%s", m.seq, filepath.Base(path)))
	if err := copyFile(path, staged); err != nil {
		return nil, err
	}

	f, err := os.Open(staged)
	if err != nil {
		_ = os.Remove(staged)
		return nil, err
	}

	h := &Handle{
		SourcePath: path,
		Name:       filepath.Base(path),
		Size:       fi.Size(),
		staged:     staged,
		file:       f,
	}
	m.slots[slot] = h
	m.live++
	return h, nil
}

// Get returns the slot's live handle, or nil.
func (m *Manager) Get(slot Slot) *Handle {
	return m.slots[slot]
}

// Remove releases the slot's handle, if any, and empties the slot.
func (m *Manager) Remove(slot Slot) {
	if h := m.slots[slot]; h != nil {
		m.release(h)
		delete(m.slots, slot)
	}
}

// Clear releases both slots.
func (m *Manager) Clear() {
	m.Remove(SlotAudio)
	m.Remove(SlotImage)
}

// Close releases every held handle. Called on teardown of the owning view.
func (m *Manager) Close() {
	m.Clear()
}

// Live reports the number of currently held handles.
func (m *Manager) Live() int {
	return m.live
}

func (m *Manager) release(h *Handle) {
	if h.released {
		return
	}
	h.released = true
	if h.file != nil {
		_ = h.file.Close()
	}
	_ = os.Remove(h.staged)
	m.live--
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
