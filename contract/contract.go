// Package contract implements the AstraNode asset registry: mint a unique
// token, buy it by paying the asking price to the previous owner, and
// reprice it as the owner. Each command runs to completion inside one
// host-managed transaction; on any error the host rolls back every write.
package contract

import (
	"fmt"

	"github.com/astranode/astranode-nft/host"
)

// Deps bundles the host services a handler needs.
type Deps struct {
	Storage host.Storage
	API     host.API
}

// Attribute is one audit key/value emitted with a successful command.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the structured result of a command: audit attributes plus
// fund-transfer instructions the host executes atomically with the state
// writes of this execution.
type Response struct {
	Attributes []Attribute     `json:"attributes"`
	Messages   []host.BankSend `json:"messages,omitempty"`
}

func (r *Response) addAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Instantiate writes the singleton registry config. It runs exactly once
// per deployment by host convention; no authorization is enforced here.
func Instantiate(deps Deps, _ host.Env, _ host.MessageInfo, msg InstantiateMsg) (*Response, error) {
	for _, m := range msg.Minters {
		if err := deps.API.ValidateAddress(m); err != nil {
			return nil, fmt.Errorf("minter %s: %w", m, ErrInvalidAddress)
		}
	}
	cfg := Config{
		Name:       msg.Name,
		Symbol:     msg.Symbol,
		StrictMint: msg.StrictMint,
		Minters:    msg.Minters,
	}
	if err := saveConfig(deps.Storage, cfg); err != nil {
		return nil, err
	}
	resp := &Response{}
	return resp.addAttribute("method", "instantiate"), nil
}

// Execute dispatches one mutating command.
func Execute(deps Deps, env host.Env, info host.MessageInfo, msg ExecuteMsg) (*Response, error) {
	switch {
	case msg.Mint != nil:
		return executeMint(deps, env, info, *msg.Mint)
	case msg.Buy != nil:
		return executeBuy(deps, env, info, *msg.Buy)
	case msg.UpdatePrice != nil:
		return executeUpdatePrice(deps, env, info, *msg.UpdatePrice)
	default:
		return nil, fmt.Errorf("empty execute message")
	}
}

func executeMint(deps Deps, _ host.Env, info host.MessageInfo, msg MintMsg) (*Response, error) {
	cfg, err := loadConfig(deps.Storage)
	if err != nil {
		return nil, err
	}
	if !cfg.IsAuthorizedMinter(info.Sender) {
		return nil, fmt.Errorf("%s: %w", info.Sender, ErrNotMinter)
	}
	if err := deps.API.ValidateAddress(msg.Owner); err != nil {
		return nil, fmt.Errorf("owner %s: %w", msg.Owner, ErrInvalidAddress)
	}
	if cfg.StrictMint && hasNft(deps.Storage, msg.TokenID) {
		return nil, fmt.Errorf("token %s: %w", msg.TokenID, ErrAlreadyExists)
	}

	nft := NftData{
		Owner:    host.Address(msg.Owner),
		TokenURI: msg.TokenURI,
		Price:    msg.Price,
	}
	if err := saveNft(deps.Storage, msg.TokenID, nft); err != nil {
		return nil, err
	}

	resp := &Response{}
	return resp.
		addAttribute("action", "mint").
		addAttribute("token_id", msg.TokenID), nil
}

func executeBuy(deps Deps, _ host.Env, info host.MessageInfo, msg BuyMsg) (*Response, error) {
	nft, err := loadNft(deps.Storage, msg.TokenID)
	if err != nil {
		return nil, err
	}

	// Only uastra counts toward the price; other denominations are ignored.
	var payment *host.Coin
	for i := range info.Funds {
		if info.Funds[i].Denom == PaymentDenom {
			payment = &info.Funds[i]
			break
		}
	}
	if payment == nil {
		return nil, fmt.Errorf("token %s: %w", msg.TokenID, ErrNoFundsSent)
	}
	if payment.Amount.Lt(nft.Price) {
		return nil, fmt.Errorf("token %s: sent %s, price %s: %w",
			msg.TokenID, payment.Amount, nft.Price, ErrInsufficientFunds)
	}

	// Attached funds are already in the contract balance, so forwarding the
	// price (not the full payment) to the previous owner is covered.
	// Overpayment stays in the contract balance.
	transfer := host.BankSend{
		ToAddress: nft.Owner,
		Amount:    []host.Coin{{Denom: PaymentDenom, Amount: nft.Price}},
	}

	nft.Owner = info.Sender
	if err := saveNft(deps.Storage, msg.TokenID, nft); err != nil {
		return nil, err
	}

	resp := &Response{Messages: []host.BankSend{transfer}}
	return resp.
		addAttribute("action", "buy").
		addAttribute("token_id", msg.TokenID).
		addAttribute("new_owner", info.Sender.String()), nil
}

func executeUpdatePrice(deps Deps, _ host.Env, info host.MessageInfo, msg UpdatePriceMsg) (*Response, error) {
	nft, err := loadNft(deps.Storage, msg.TokenID)
	if err != nil {
		return nil, err
	}
	if nft.Owner != info.Sender {
		return nil, fmt.Errorf("token %s: %w", msg.TokenID, ErrNotOwner)
	}

	nft.Price = msg.NewPrice
	if err := saveNft(deps.Storage, msg.TokenID, nft); err != nil {
		return nil, err
	}

	resp := &Response{}
	return resp.
		addAttribute("action", "update_price").
		addAttribute("token_id", msg.TokenID), nil
}
