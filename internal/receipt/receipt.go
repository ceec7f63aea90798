package receipt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Receipt records one successful mint.
type Receipt struct {
	Title      string    `json:"title"`
	Identifier string    `json:"identifier"`
	Copies     uint64    `json:"copies"`
	Price      string    `json:"price"`
	MintedAt   time.Time `json:"minted_at"`
}

// Store persists receipts as a JSON array in the data directory.
type Store struct {
	path string
}

func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "receipts.json")}
}

// Append adds a receipt to the log.
func (s *Store) Append(r Receipt) error {
	receipts, err := s.load()
	if err != nil {
		return err
	}
	receipts = append(receipts, r)

	data, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// List returns all receipts, newest first.
func (s *Store) List() ([]Receipt, error) {
	receipts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(receipts)-1; i < j; i, j = i+1, j-1 {
		receipts[i], receipts[j] = receipts[j], receipts[i]
	}
	return receipts, nil
}

func (s *Store) load() ([]Receipt, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var receipts []Receipt
	if err := json.Unmarshal(data, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}
