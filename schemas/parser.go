package schemas

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/astranode/astranode-nft/contract"
	"github.com/astranode/astranode-nft/host"
)

// ParseExecute parses and validates an execute message from JSON bytes.
func ParseExecute(data []byte) (*contract.ExecuteMsg, error) {
	if err := ValidateExecute(data); err != nil {
		return nil, err
	}
	var msg contract.ExecuteMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &msg, nil
}

// ParseQuery parses and validates a query message from JSON bytes.
func ParseQuery(data []byte) (*contract.QueryMsg, error) {
	if err := ValidateQuery(data); err != nil {
		return nil, err
	}
	var msg contract.QueryMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &msg, nil
}

// ParseExecuteFromQueryParams builds an execute message from URL query
// parameters, e.g. "action=mint&token_id=t1&owner=astra1...&price=100".
func ParseExecuteFromQueryParams(query string) (*contract.ExecuteMsg, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query string: %w", err)
	}

	tokenID := values.Get("token_id")
	if tokenID == "" {
		return nil, ValidationError{Field: "token_id", Message: "token_id is required"}
	}

	switch action := values.Get("action"); action {
	case "mint":
		owner := values.Get("owner")
		if owner == "" {
			return nil, ValidationError{Field: "owner", Message: "owner is required"}
		}
		price, err := parseAmount(values.Get("price"), "price")
		if err != nil {
			return nil, err
		}
		return &contract.ExecuteMsg{Mint: &contract.MintMsg{
			TokenID:  tokenID,
			Owner:    owner,
			TokenURI: values.Get("token_uri"),
			Price:    price,
		}}, nil
	case "buy":
		return &contract.ExecuteMsg{Buy: &contract.BuyMsg{TokenID: tokenID}}, nil
	case "update_price":
		newPrice, err := parseAmount(values.Get("new_price"), "new_price")
		if err != nil {
			return nil, err
		}
		return &contract.ExecuteMsg{UpdatePrice: &contract.UpdatePriceMsg{
			TokenID:  tokenID,
			NewPrice: newPrice,
		}}, nil
	default:
		return nil, ValidationError{Field: "action", Message: "unknown action " + strconv.Quote(action)}
	}
}

// ParseExecuteFromMemo accepts either JSON or URL query parameter form.
func ParseExecuteFromMemo(memo string) (*contract.ExecuteMsg, error) {
	memo = strings.TrimSpace(memo)
	if strings.HasPrefix(memo, "{") && strings.HasSuffix(memo, "}") {
		return ParseExecute([]byte(memo))
	}
	return ParseExecuteFromQueryParams(memo)
}

func parseAmount(raw, field string) (host.Uint128, error) {
	if raw == "" {
		return host.Uint128{}, ValidationError{Field: field, Message: field + " is required"}
	}
	amount, err := host.ParseUint128(raw)
	if err != nil {
		return host.Uint128{}, ValidationError{Field: field, Message: err.Error()}
	}
	return amount, nil
}
