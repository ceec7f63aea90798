package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	DataDir       string `json:"data_dir" envconfig:"TUNEMINT_DATA_DIR"`
	RPCURL        string `json:"rpc_url" envconfig:"TUNEMINT_RPC_URL"`
	KeystorePath  string `json:"keystore_path" envconfig:"TUNEMINT_KEYSTORE_PATH"`
	PreviewBudget int    `json:"preview_budget" envconfig:"TUNEMINT_PREVIEW_BUDGET"`
}

func defaults() AppConfig {
	return AppConfig{
		DataDir:       "~/.tunemint/data",
		RPCURL:        "https://api.mainnet-beta.solana.com",
		KeystorePath:  "~/.tunemint/wallet.key",
		PreviewBudget: 8,
	}
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func configPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tunemint", "config.json")
}

// LoadOrInit loads the config file, overlays environment overrides and writes
// the resolved file back so a fresh install ends up with a config on disk.
func LoadOrInit() AppConfig {
	cfg := defaults()

	data, err := os.ReadFile(configPath())
	if err == nil {
		var loaded AppConfig
		if json.Unmarshal(data, &loaded) == nil {
			merge(&cfg, loaded)
		}
	}

	var env AppConfig
	if envconfig.Process("", &env) == nil {
		merge(&cfg, env)
	}

	_ = Save(cfg)
	return cfg
}

func merge(dst *AppConfig, src AppConfig) {
	if src.DataDir != "" {
		dst.DataDir = src.DataDir
	}
	if src.RPCURL != "" {
		dst.RPCURL = src.RPCURL
	}
	if src.KeystorePath != "" {
		dst.KeystorePath = src.KeystorePath
	}
	if src.PreviewBudget > 0 {
		dst.PreviewBudget = src.PreviewBudget
	}
}

func Save(cfg AppConfig) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
