package contract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/astranode/astranode-nft/host"
)

// Keys for state storage
const (
	keyConfig    = "config"
	keyNftPrefix = "nfts/" // nfts/<token_id>
)

// PaymentDenom is the only denomination accepted as payment.
const PaymentDenom = "uastra"

// Config is the singleton registry metadata, written once at instantiation.
type Config struct {
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol"`
	StrictMint bool     `json:"strict_mint,omitempty"`
	Minters    []string `json:"minters,omitempty"`
}

// IsAuthorizedMinter reports whether sender may mint. An empty minter list
// means anyone may.
func (c Config) IsAuthorizedMinter(sender host.Address) bool {
	if len(c.Minters) == 0 {
		return true
	}
	for _, m := range c.Minters {
		if host.Address(m) == sender {
			return true
		}
	}
	return false
}

// NftData is one token record. TokenURI is set once at mint; Owner changes
// on buy, Price on update_price.
type NftData struct {
	Owner    host.Address `json:"owner"`
	TokenURI string       `json:"token_uri"`
	Price    host.Uint128 `json:"price"`
}

func nftKey(tokenID string) string {
	return keyNftPrefix + tokenID
}

func saveConfig(store host.Storage, cfg Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	store.Set(keyConfig, string(raw))
	return nil
}

func loadConfig(store host.Storage) (Config, error) {
	raw, ok := store.Get(keyConfig)
	if !ok {
		return Config{}, fmt.Errorf("config not initialized")
	}
	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func saveNft(store host.Storage, tokenID string, nft NftData) error {
	raw, err := json.Marshal(nft)
	if err != nil {
		return fmt.Errorf("encode token %s: %w", tokenID, err)
	}
	store.Set(nftKey(tokenID), string(raw))
	return nil
}

func loadNft(store host.Storage, tokenID string) (NftData, error) {
	raw, ok := store.Get(nftKey(tokenID))
	if !ok {
		return NftData{}, fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
	}
	var nft NftData
	if err := json.Unmarshal([]byte(raw), &nft); err != nil {
		return NftData{}, fmt.Errorf("decode token %s: %w", tokenID, err)
	}
	return nft, nil
}

func hasNft(store host.Storage, tokenID string) bool {
	_, ok := store.Get(nftKey(tokenID))
	return ok
}

// rangeNfts walks records in ascending token_id order, starting strictly
// after startAfter when given and stopping after limit records when limit
// is positive.
func rangeNfts(store host.Storage, startAfter string, limit int, fn func(tokenID string, nft NftData) error) error {
	for _, key := range store.Keys(keyNftPrefix) {
		tokenID := strings.TrimPrefix(key, keyNftPrefix)
		if startAfter != "" && tokenID <= startAfter {
			continue
		}
		nft, err := loadNft(store, tokenID)
		if err != nil {
			return err
		}
		if err := fn(tokenID, nft); err != nil {
			return err
		}
		if limit > 0 {
			limit--
			if limit == 0 {
				return nil
			}
		}
	}
	return nil
}
