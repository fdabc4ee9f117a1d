package contract

import "github.com/astranode/astranode-nft/host"

// InstantiateMsg fixes the registry metadata at deployment. StrictMint and
// Minters are optional policy knobs; their zero values preserve the
// permissive defaults (overwrite-mint allowed, anyone may mint).
type InstantiateMsg struct {
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol"`
	StrictMint bool     `json:"strict_mint,omitempty"`
	Minters    []string `json:"minters,omitempty"`
}

// ExecuteMsg is a one-of: exactly one field is set per message.
type ExecuteMsg struct {
	Mint        *MintMsg        `json:"mint,omitempty"`
	Buy         *BuyMsg         `json:"buy,omitempty"`
	UpdatePrice *UpdatePriceMsg `json:"update_price,omitempty"`
}

type MintMsg struct {
	TokenID  string       `json:"token_id"`
	Owner    string       `json:"owner"`
	TokenURI string       `json:"token_uri"`
	Price    host.Uint128 `json:"price"`
}

type BuyMsg struct {
	TokenID string `json:"token_id"`
}

type UpdatePriceMsg struct {
	TokenID  string       `json:"token_id"`
	NewPrice host.Uint128 `json:"new_price"`
}

// QueryMsg is a one-of over the read-only lookups.
type QueryMsg struct {
	GetNft     *GetNftQuery     `json:"get_nft,omitempty"`
	GetAllNfts *GetAllNftsQuery `json:"get_all_nfts,omitempty"`
}

type GetNftQuery struct {
	TokenID string `json:"token_id"`
}

// GetAllNftsQuery scans every record in ascending token_id order. StartAfter
// and Limit bound the scan per call; when Limit is omitted the full
// unbounded scan is kept for compatibility. A Limit of zero bounds the
// page to nothing.
type GetAllNftsQuery struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type NftInfoResponse struct {
	TokenID  string       `json:"token_id"`
	Owner    host.Address `json:"owner"`
	TokenURI string       `json:"token_uri"`
	Price    host.Uint128 `json:"price"`
}

type AllNftsResponse struct {
	Nfts []NftInfoResponse `json:"nfts"`
}
