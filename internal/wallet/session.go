package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Session owns the signed-in wallet state: the decrypted private key (wallet
// handle) and the RPC client (chain-connection handle). The rest of the app
// reaches it only through the narrow read/connect/disconnect surface.
type Session struct {
	keystorePath string
	rpcURL       string
	params       KDFParams
	log          *slog.Logger

	key    solana.PrivateKey
	client *rpc.Client
}

func NewSession(keystorePath, rpcURL string, log *slog.Logger) *Session {
	return &Session{
		keystorePath: keystorePath,
		rpcURL:       rpcURL,
		params:       DefaultKDFParams(),
		log:          log,
	}
}

// KeystoreExists reports whether a keystore file is already on disk. When it
// is not, Connect creates a fresh wallet under the given passphrase.
func (s *Session) KeystoreExists() bool {
	_, err := os.Stat(s.keystorePath)
	return err == nil
}

// KeystoreAddress returns the address recorded in the keystore file without
// decrypting it. Empty when no keystore exists.
func (s *Session) KeystoreAddress() string {
	return KeystoreAddress(s.keystorePath)
}

// Connect opens the session: decrypt (or create) the keystore and dial the
// RPC endpoint. A failed health check leaves the session signed out.
func (s *Session) Connect(ctx context.Context, passphrase []byte) error {
	var key solana.PrivateKey
	var err error

	if s.KeystoreExists() {
		key, err = LoadKey(s.keystorePath, passphrase, s.params)
		if err != nil {
			return err
		}
	} else {
		key, err = solana.NewRandomPrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate wallet: %w", err)
		}
		if err := SaveKey(s.keystorePath, key, passphrase, s.params); err != nil {
			return err
		}
		s.log.Info("wallet.created", "address", key.PublicKey().String(), "keystore", s.keystorePath)
	}

	client := rpc.New(s.rpcURL)
	if _, err := client.GetHealth(ctx); err != nil {
		clear(key)
		return fmt.Errorf("chain endpoint unreachable: %w", err)
	}

	s.key = key
	s.client = client
	s.log.Info("wallet.connected", "address", key.PublicKey().String())
	return nil
}

// Disconnect zeroes the key and drops the connection handle.
func (s *Session) Disconnect() error {
	if s.key != nil {
		addr := s.key.PublicKey().String()
		clear(s.key)
		s.key = nil
		s.log.Info("wallet.disconnected", "address", addr)
	}
	s.client = nil
	return nil
}

// Identity returns the signed-in wallet address, if any.
func (s *Session) Identity() (string, bool) {
	if s.key == nil {
		return "", false
	}
	return s.key.PublicKey().String(), true
}

func (s *Session) HasWallet() bool {
	return s.key != nil
}

func (s *Session) HasConnection() bool {
	return s.client != nil
}

// Key returns the wallet handle. Nil while signed out.
func (s *Session) Key() solana.PrivateKey {
	return s.key
}

// Client returns the chain-connection handle. Nil while signed out.
func (s *Session) Client() *rpc.Client {
	return s.client
}

// Address returns the signed-in public key. Zero value while signed out.
func (s *Session) Address() solana.PublicKey {
	if s.key == nil {
		return solana.PublicKey{}
	}
	return s.key.PublicKey()
}
