package mint

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"tunemint/internal/common"
)

// Request is the normalized payload handed to the Minter. Audio and image
// paths point at staged preview snapshots, not the user's originals.
type Request struct {
	ArtistName  string
	Title       string
	Description string
	Copies      uint64
	Price       string
	AudioPath   string
	ImagePath   string
}

// Minter performs the on-chain mint. Implementations own the wire protocol;
// the orchestrator only interprets the returned identifier or error.
type Minter interface {
	Mint(ctx context.Context, req Request) (identifier string, err error)
}

// Session is the narrow view of the wallet session the orchestrator needs.
// Wallet handle and chain connection are checked separately: their absence
// produces distinct errors.
type Session interface {
	HasWallet() bool
	HasConnection() bool
}

// Outcome is the result of one submission attempt.
type Outcome struct {
	OK         bool
	Identifier string
	Message    string
}

// Orchestrator serializes mint submissions: at most one may be in flight.
// No retries; a failed mint requires the user to resubmit.
type Orchestrator struct {
	minter Minter
	log    *slog.Logger

	mu       sync.Mutex
	inFlight bool
}

func NewOrchestrator(minter Minter, log *slog.Logger) *Orchestrator {
	return &Orchestrator{minter: minter, log: log}
}

// InFlight reports whether a submission is currently outstanding.
func (o *Orchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight
}

// Submit runs one mint attempt end to end: validation, session checks,
// in-flight guard, delegation, error normalization. The in-flight flag is
// cleared on every path, including a recovered panic from the minter.
func (o *Orchestrator) Submit(ctx context.Context, meta Metadata, audioPath, imagePath string, sess Session) Outcome {
	if msg := Validate(meta, audioPath != "", imagePath != ""); msg != "" {
		return Outcome{Message: msg}
	}
	if sess == nil || !sess.HasWallet() {
		return Outcome{Message: MsgNoWallet}
	}
	if !sess.HasConnection() {
		return Outcome{Message: MsgNoConnection}
	}

	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return Outcome{Message: MsgInFlight}
	}
	o.inFlight = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.inFlight = false
		o.mu.Unlock()
	}()

	req := Request{
		ArtistName:  strings.TrimSpace(meta.ArtistName),
		Title:       strings.TrimSpace(meta.Title),
		Description: strings.TrimSpace(meta.Description),
		Copies:      uint64(meta.Copies),
		Price:       common.PriceString(meta.Price),
		AudioPath:   audioPath,
		ImagePath:   imagePath,
	}

	o.log.Info("mint.submit", "title", req.Title, "copies", req.Copies, "price", req.Price)

	id, err := o.callMinter(ctx, req)
	if err != nil {
		msg := classifyError(err)
		o.log.Warn("mint.failed", "title", req.Title, "err", err.Error())
		return Outcome{Message: msg}
	}

	o.log.Info("mint.success", "title", req.Title, "identifier", id)
	return Outcome{OK: true, Identifier: id}
}

// callMinter isolates the external call so a panic inside the collaborator
// surfaces as a failed outcome, not a crash of the view.
func (o *Orchestrator) callMinter(ctx context.Context, req Request) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errUnknown
			}
		}
	}()
	return o.minter.Mint(ctx, req)
}
