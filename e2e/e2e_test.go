package e2e

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astranode/astranode-nft/contract"
	"github.com/astranode/astranode-nft/host"
	"github.com/astranode/astranode-nft/schemas"
	"github.com/astranode/astranode-nft/services/marketplace"
)

type testEnv struct {
	deps  contract.Deps
	env   host.Env
	store *marketplace.Store
}

const (
	creatorAddr = "astra1qpzry9x8gf2"
	aliceAddr   = "astra1ce6mua7l2tv"
	bobAddr     = "astra1k8d0s3jn5mt"
)

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	store, err := marketplace.OpenStore(filepath.Join(t.TempDir(), "listings.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &testEnv{
		deps: contract.Deps{
			Storage: host.NewMemStorage(),
			API:     host.NewBech32API("astra"),
		},
		env: host.Env{
			BlockHeight: 1,
			BlockTime:   "2023-11-14T22:13:20Z",
			Contract:    host.Address("astra1regqstryxz0"),
		},
		store: store,
	}
}

// execWire drives the contract the way the gateway does: raw JSON through
// schema validation, then dispatch.
func execWire(t *testing.T, te *testEnv, sender string, funds []host.Coin, raw string) (*contract.Response, error) {
	t.Helper()
	msg, err := schemas.ParseExecute([]byte(raw))
	require.NoError(t, err, "wire message must pass schema validation")
	return contract.Execute(te.deps, te.env, host.MessageInfo{
		Sender: host.Address(sender),
		Funds:  funds,
	}, *msg)
}

func queryAll(t *testing.T, te *testEnv) contract.AllNftsResponse {
	t.Helper()
	raw, err := contract.Query(te.deps, te.env, contract.QueryMsg{
		GetAllNfts: &contract.GetAllNftsQuery{},
	})
	require.NoError(t, err)
	var resp contract.AllNftsResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func TestFullRegistryFlow(t *testing.T) {
	te := setupTestEnvironment(t)

	t.Run("Instantiate", func(t *testing.T) {
		resp, err := contract.Instantiate(te.deps, te.env, host.MessageInfo{
			Sender: host.Address(creatorAddr),
		}, contract.InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRA"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Attributes)
	})

	t.Run("MintFromWireMessages", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			raw := fmt.Sprintf(`{"mint":{"token_id":"t%d","owner":%q,"token_uri":"ipfs://Qm%d","price":"%d"}}`,
				i, aliceAddr, i, i*100)
			_, err := execWire(t, te, creatorAddr, nil, raw)
			require.NoError(t, err)
		}

		all := queryAll(t, te)
		require.Len(t, all.Nfts, 3)
		require.Equal(t, "t1", all.Nfts[0].TokenID)
		require.Equal(t, aliceAddr, string(all.Nfts[0].Owner))
	})

	t.Run("BuyTransfersOwnershipAndFunds", func(t *testing.T) {
		resp, err := execWire(t, te, bobAddr,
			[]host.Coin{{Denom: "uastra", Amount: host.MustUint128("250")}},
			`{"buy":{"token_id":"t2"}}`)
		require.NoError(t, err)

		require.Len(t, resp.Messages, 1)
		require.Equal(t, aliceAddr, string(resp.Messages[0].ToAddress))
		require.Len(t, resp.Messages[0].Amount, 1)
		require.Equal(t, "200", resp.Messages[0].Amount[0].Amount.String())

		all := queryAll(t, te)
		require.Equal(t, bobAddr, string(all.Nfts[1].Owner))
	})

	t.Run("RepriceByNewOwner", func(t *testing.T) {
		// Ownership moved at purchase, so the seller lost reprice rights.
		_, err := execWire(t, te, aliceAddr, nil,
			`{"update_price":{"token_id":"t2","new_price":"1"}}`)
		require.ErrorIs(t, err, contract.ErrNotOwner)

		_, err = execWire(t, te, bobAddr, nil,
			`{"update_price":{"token_id":"t2","new_price":"900"}}`)
		require.NoError(t, err)

		all := queryAll(t, te)
		require.Equal(t, "900", all.Nfts[1].Price.String())
	})

	t.Run("QueryPagination", func(t *testing.T) {
		start := "t1"
		limit := uint32(1)
		raw, err := contract.Query(te.deps, te.env, contract.QueryMsg{
			GetAllNfts: &contract.GetAllNftsQuery{StartAfter: &start, Limit: &limit},
		})
		require.NoError(t, err)

		var resp contract.AllNftsResponse
		require.NoError(t, json.Unmarshal(raw, &resp))
		require.Len(t, resp.Nfts, 1)
		require.Equal(t, "t2", resp.Nfts[0].TokenID)
	})

	t.Run("SyncMarketplace", func(t *testing.T) {
		// Mirror registry state into the storefront database.
		for _, nft := range queryAll(t, te).Nfts {
			require.NoError(t, te.store.Upsert(marketplace.Listing{
				NftID:       nft.TokenID,
				Owner:       string(nft.Owner),
				Price:       nft.Price.String(),
				Denom:       "uastra",
				MetadataURI: nft.TokenURI,
			}))
		}

		l, ok, err := te.store.Get("t2")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, bobAddr, l.Owner)
		require.Equal(t, "900", l.Price)

		require.NoError(t, te.store.Delist("t3", aliceAddr))
		_, ok, err = te.store.Get("t3")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
