package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/scrypt"
)

// KDFParams control the scrypt cost of the keystore passphrase derivation.
type KDFParams struct {
	N      int
	R      int
	P      int
	KeyLen int
}

// DefaultKDFParams trades startup time for brute-force cost; the key is only
// derived once per sign-in.
func DefaultKDFParams() KDFParams {
	return KDFParams{N: 1 << 18, R: 8, P: 1, KeyLen: 32}
}

const (
	saltLen  = 32
	nonceLen = 12
)

// keystoreFile is the on-disk JSON layout. Only the address is readable
// without the passphrase.
type keystoreFile struct {
	Address    string `json:"address"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"ciphertext"`
}

// SaveKey encrypts the 64-byte private key under the passphrase and writes
// the keystore file. The caller should zero both slices after use.
func SaveKey(path string, key solana.PrivateKey, passphrase []byte, params KDFParams) error {
	if len(key) != 64 {
		return errors.New("invalid private key length: expected 64 bytes")
	}
	if len(passphrase) == 0 {
		return errors.New("passphrase cannot be empty")
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	derived, err := scrypt.Key(passphrase, salt, params.N, params.R, params.P, params.KeyLen)
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("failed to create GCM: %w", err)
	}

	ciphertext := aesGCM.Seal(nil, nonce, key, nil)

	ks := keystoreFile{
		Address:    key.PublicKey().String(),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}
	data, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keystore: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadKey decrypts the keystore file with the passphrase. The caller should
// zero the passphrase after use.
func LoadKey(path string, passphrase []byte, params KDFParams) (solana.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ks keystoreFile
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, fmt.Errorf("failed to parse keystore: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(ks.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(ks.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(ks.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	derived, err := scrypt.Key(passphrase, salt, params.N, params.R, params.P, params.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plain, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("wrong passphrase or corrupted keystore")
	}
	if len(plain) != 64 {
		return nil, errors.New("keystore holds an invalid key")
	}

	return solana.PrivateKey(plain), nil
}

// KeystoreAddress reads the wallet address from the keystore without
// decrypting the key. Returns "" if the file is missing or unreadable.
func KeystoreAddress(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var ks keystoreFile
	if err := json.Unmarshal(data, &ks); err != nil {
		return ""
	}
	return ks.Address
}
