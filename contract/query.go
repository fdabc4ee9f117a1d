package contract

import (
	"encoding/json"
	"fmt"

	"github.com/astranode/astranode-nft/host"
)

// Query dispatches one read-only lookup and returns its JSON encoding.
// Queries never mutate state.
func Query(deps Deps, _ host.Env, msg QueryMsg) (json.RawMessage, error) {
	switch {
	case msg.GetNft != nil:
		resp, err := queryNft(deps, msg.GetNft.TokenID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	case msg.GetAllNfts != nil:
		resp, err := queryAllNfts(deps, *msg.GetAllNfts)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	default:
		return nil, fmt.Errorf("empty query message")
	}
}

func queryNft(deps Deps, tokenID string) (NftInfoResponse, error) {
	nft, err := loadNft(deps.Storage, tokenID)
	if err != nil {
		return NftInfoResponse{}, err
	}
	return NftInfoResponse{
		TokenID:  tokenID,
		Owner:    nft.Owner,
		TokenURI: nft.TokenURI,
		Price:    nft.Price,
	}, nil
}

func queryAllNfts(deps Deps, q GetAllNftsQuery) (AllNftsResponse, error) {
	startAfter := ""
	if q.StartAfter != nil {
		startAfter = *q.StartAfter
	}
	resp := AllNftsResponse{Nfts: []NftInfoResponse{}}

	// A limit given as zero bounds the page to nothing; only an omitted
	// limit means the full scan.
	limit := 0
	if q.Limit != nil {
		if *q.Limit == 0 {
			return resp, nil
		}
		limit = int(*q.Limit)
	}

	err := rangeNfts(deps.Storage, startAfter, limit, func(tokenID string, nft NftData) error {
		resp.Nfts = append(resp.Nfts, NftInfoResponse{
			TokenID:  tokenID,
			Owner:    nft.Owner,
			TokenURI: nft.TokenURI,
			Price:    nft.Price,
		})
		return nil
	})
	if err != nil {
		return AllNftsResponse{}, err
	}
	return resp, nil
}
