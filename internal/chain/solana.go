package chain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"tunemint/internal/common"
	"tunemint/internal/mint"
	"tunemint/internal/wallet"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/memo"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	// Account sizes for rent-exemption math.
	mintAccountSize  = 82
	tokenAccountSize = 165

	// Margin on top of the rent deposits to cover the transaction fee.
	feeMarginLamports = 10_000
)

// Minter mints a music SFT class on Solana: a 0-decimal token mint whose
// supply is the copy count, with the release metadata attached as a memo.
// It implements mint.Minter.
type Minter struct {
	sess *wallet.Session
	log  *slog.Logger
}

func NewMinter(sess *wallet.Session, log *slog.Logger) *Minter {
	return &Minter{sess: sess, log: log}
}

// classMetadata is the memo payload recorded alongside the mint.
type classMetadata struct {
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Artist        string `json:"artist,omitempty"`
	Description   string `json:"description,omitempty"`
	Copies        uint64 `json:"copies"`
	Price         string `json:"price"`
	PriceLamports uint64 `json:"price_lamports"`
	AudioSHA256   string `json:"audio_sha256"`
	ImageSHA256   string `json:"image_sha256"`
}

// buildClassMetadata assembles the memo payload. The price arrives as a
// decimal SOL string and is recorded both ways.
func buildClassMetadata(req mint.Request, audioHash, imageHash string) (classMetadata, error) {
	lamports, err := common.SOLToLamports(req.Price)
	if err != nil {
		return classMetadata{}, fmt.Errorf("invalid price %q: %w", req.Price, err)
	}
	return classMetadata{
		Kind:          "tunemint/sft",
		Title:         req.Title,
		Artist:        req.ArtistName,
		Description:   req.Description,
		Copies:        req.Copies,
		Price:         req.Price,
		PriceLamports: lamports,
		AudioSHA256:   audioHash,
		ImageSHA256:   imageHash,
	}, nil
}

// Mint creates and initializes the class mint account, mints the copies to
// the owner's token account and attaches the metadata memo, in one
// transaction. Returns the transaction signature as the identifier.
func (m *Minter) Mint(ctx context.Context, req mint.Request) (string, error) {
	client := m.sess.Client()
	if client == nil {
		return "", fmt.Errorf("no chain connection")
	}
	key := m.sess.Key()
	if key == nil {
		return "", fmt.Errorf("wallet not connected")
	}
	owner := key.PublicKey()

	// The class account is derived from the title, so the same title can
	// only be minted once per wallet.
	seed := classSeed(req.Title)
	mintAccount, err := solana.CreateWithSeed(owner, seed, token.ProgramID)
	if err != nil {
		return "", fmt.Errorf("failed to derive token class account: %w", err)
	}

	info, err := client.GetAccountInfo(ctx, mintAccount)
	if err != nil && !isNotFoundError(err) {
		return "", fmt.Errorf("failed to check token class account: %w", err)
	}
	if err == nil && info.Value != nil {
		return "", fmt.Errorf("token class ID already exists for title %q", req.Title)
	}

	if err := m.checkStorageDeposit(ctx, client, owner); err != nil {
		return "", err
	}

	audioHash, err := fileSHA256(req.AudioPath)
	if err != nil {
		return "", fmt.Errorf("failed to hash audio file: %w", err)
	}
	imageHash, err := fileSHA256(req.ImagePath)
	if err != nil {
		return "", fmt.Errorf("failed to hash cover image: %w", err)
	}

	meta, err := buildClassMetadata(req, audioHash, imageHash)
	if err != nil {
		return "", err
	}
	memoJSON, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}

	mintRent, err := client.GetMinimumBalanceForRentExemption(ctx, mintAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get rent exemption: %w", err)
	}

	recent, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	ownerTokenAccount, _, err := solana.FindAssociatedTokenAddress(owner, mintAccount)
	if err != nil {
		return "", fmt.Errorf("failed to find owner token account: %w", err)
	}

	instructions := []solana.Instruction{
		system.NewCreateAccountWithSeedInstruction(
			owner, seed, mintRent, mintAccountSize, token.ProgramID,
			owner, mintAccount, owner,
		).Build(),
		token.NewInitializeMintInstruction(
			0, owner, owner,
			mintAccount, solana.SysVarRentPubkey,
		).Build(),
		associatedtokenaccount.NewCreateInstruction(
			owner, owner, mintAccount,
		).Build(),
		token.NewMintToInstruction(
			req.Copies, mintAccount, ownerTokenAccount, owner, []solana.PublicKey{},
		).Build(),
		memo.NewMemoInstruction(memoJSON, owner).Build(),
	}

	tx, err := solana.NewTransaction(instructions, recent.Value.Blockhash, solana.TransactionPayer(owner))
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(k solana.PublicKey) *solana.PrivateKey {
		if key.PublicKey().Equals(k) {
			return &key
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	m.log.Info("chain.minted", "class", mintAccount.String(), "signature", sig.String(), "copies", req.Copies)
	return sig.String(), nil
}

// checkStorageDeposit verifies the wallet can cover the rent for the mint
// account and the owner token account, plus the fee margin.
func (m *Minter) checkStorageDeposit(ctx context.Context, client *rpc.Client, owner solana.PublicKey) error {
	mintRent, err := client.GetMinimumBalanceForRentExemption(ctx, mintAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("failed to get mint rent exemption: %w", err)
	}
	ataRent, err := client.GetMinimumBalanceForRentExemption(ctx, tokenAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("failed to get token account rent exemption: %w", err)
	}

	balance, err := client.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	required := mintRent + ataRent + feeMarginLamports
	if balance.Value < required {
		return fmt.Errorf("insufficient deposit: minting needs %s SOL for storage, wallet holds %s SOL",
			common.LamportsToSOL(required), common.LamportsToSOL(balance.Value))
	}
	return nil
}

// classSeed derives the create-with-seed string for a title. Seeds are capped
// at 32 bytes, so the title is hashed rather than embedded.
func classSeed(title string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(title))))
	return hex.EncodeToString(sum[:])[:32]
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// isNotFoundError checks if the RPC error indicates a missing account.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
