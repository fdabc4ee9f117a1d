// Package sdk is the Go client for the AstraNode NFT registry. It submits
// execute messages through a chain gateway's GraphQL endpoint and reads
// contract state through the gateway's smart-query REST API.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/hasura/go-graphql-client"

	"github.com/astranode/astranode-nft/contract"
	"github.com/astranode/astranode-nft/host"
	"github.com/astranode/astranode-nft/schemas"
)

// Config locates the gateway and identifies the submitting account.
type Config struct {
	Endpoint string // gateway base URL, e.g. http://localhost:4000
	Sender   string // account submitting transactions
	Contract string // registry contract address
}

// Client provides SDK methods for registry operations.
type Client struct {
	config Config
	gql    *graphql.Client
	http   *http.Client
}

// NewClient creates a new registry client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		gql:    graphql.NewClient(config.Endpoint+"/api/v1/graphql", nil),
		http:   &http.Client{},
	}
}

// Mint creates (or, on a permissive registry, replaces) a token record.
func (c *Client) Mint(ctx context.Context, tokenID, owner, tokenURI string, price host.Uint128) (string, error) {
	msg := contract.ExecuteMsg{Mint: &contract.MintMsg{
		TokenID:  tokenID,
		Owner:    owner,
		TokenURI: tokenURI,
		Price:    price,
	}}
	return c.broadcast(ctx, msg, nil)
}

// Buy purchases a token, attaching payment in uastra.
func (c *Client) Buy(ctx context.Context, tokenID string, payment host.Uint128) (string, error) {
	msg := contract.ExecuteMsg{Buy: &contract.BuyMsg{TokenID: tokenID}}
	funds := []host.Coin{{Denom: contract.PaymentDenom, Amount: payment}}
	return c.broadcast(ctx, msg, funds)
}

// UpdatePrice sets a new asking price on a token the sender owns.
func (c *Client) UpdatePrice(ctx context.Context, tokenID string, newPrice host.Uint128) (string, error) {
	msg := contract.ExecuteMsg{UpdatePrice: &contract.UpdatePriceMsg{
		TokenID:  tokenID,
		NewPrice: newPrice,
	}}
	return c.broadcast(ctx, msg, nil)
}

// broadcast validates the message against its schema and submits it through
// the gateway's GraphQL mutation. It returns the transaction id.
func (c *Client) broadcast(ctx context.Context, msg contract.ExecuteMsg, funds []host.Coin) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal execute message: %w", err)
	}
	if err := schemas.ValidateExecute(payload); err != nil {
		return "", fmt.Errorf("invalid execute message: %w", err)
	}

	fundsJSON, err := json.Marshal(funds)
	if err != nil {
		return "", fmt.Errorf("failed to marshal funds: %w", err)
	}

	var mutation struct {
		SubmitContractCall struct {
			Id graphql.String `graphql:"id"`
		} `graphql:"submitContractCall(contract: $contract, sender: $sender, msg: $msg, funds: $funds)"`
	}

	err = c.gql.Mutate(ctx, &mutation, map[string]interface{}{
		"contract": graphql.String(c.config.Contract),
		"sender":   graphql.String(c.config.Sender),
		"msg":      graphql.String(payload),
		"funds":    graphql.String(fundsJSON),
	})
	if err != nil {
		log.Printf("Failed to broadcast transaction: %v", err)
		return "", fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	return string(mutation.SubmitContractCall.Id), nil
}

// GetNft fetches one token record.
func (c *Client) GetNft(ctx context.Context, tokenID string) (*contract.NftInfoResponse, error) {
	query := contract.QueryMsg{GetNft: &contract.GetNftQuery{TokenID: tokenID}}

	var nft contract.NftInfoResponse
	if err := c.smartQuery(ctx, query, &nft); err != nil {
		return nil, err
	}
	return &nft, nil
}

// GetAllNfts fetches records in ascending token_id order. startAfter and
// limit page through large registries; pass nil for the full scan.
func (c *Client) GetAllNfts(ctx context.Context, startAfter *string, limit *uint32) ([]contract.NftInfoResponse, error) {
	query := contract.QueryMsg{GetAllNfts: &contract.GetAllNftsQuery{
		StartAfter: startAfter,
		Limit:      limit,
	}}

	var resp contract.AllNftsResponse
	if err := c.smartQuery(ctx, query, &resp); err != nil {
		return nil, err
	}
	return resp.Nfts, nil
}

// smartQuery posts a query message to the gateway's smart-query endpoint
// and decodes the contract's JSON response into out.
func (c *Client) smartQuery(ctx context.Context, query contract.QueryMsg, out interface{}) error {
	payload, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}
	if err := schemas.ValidateQuery(payload); err != nil {
		return fmt.Errorf("invalid query message: %w", err)
	}

	queryURL := fmt.Sprintf("%s/api/v1/contracts/%s/smart",
		c.config.Endpoint, url.PathEscape(c.config.Contract))

	req, err := http.NewRequestWithContext(ctx, "POST", queryURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Failed to query contract: %v", err)
		return fmt.Errorf("failed to query contract: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse query response: %w", err)
	}
	return nil
}
