package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astranode/astranode-nft/host"
)

func TestGetNftNotFound(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})

	_, err := Query(deps, testEnv(), QueryMsg{GetNft: &GetNftQuery{TokenID: "ghost"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllNftsAscendingOrder(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})

	// mint out of order
	mint(t, deps, alice, "t3", alice, "ipfs://3", "30")
	mint(t, deps, alice, "t1", alice, "ipfs://1", "10")
	mint(t, deps, alice, "t2", bob, "ipfs://2", "20")

	all, err := queryAllNfts(deps, GetAllNftsQuery{})
	require.NoError(t, err)
	require.Len(t, all.Nfts, 3)
	assert.Equal(t, "t1", all.Nfts[0].TokenID)
	assert.Equal(t, "t2", all.Nfts[1].TokenID)
	assert.Equal(t, "t3", all.Nfts[2].TokenID)
	assert.Equal(t, host.Address(bob), all.Nfts[1].Owner)
}

func TestGetAllNftsEmpty(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})

	all, err := queryAllNfts(deps, GetAllNftsQuery{})
	require.NoError(t, err)
	assert.Empty(t, all.Nfts)
}

func TestGetAllNftsPagination(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		mint(t, deps, alice, id, alice, "ipfs://"+id, "1")
	}

	limit := uint32(2)
	page, err := queryAllNfts(deps, GetAllNftsQuery{Limit: &limit})
	require.NoError(t, err)
	require.Len(t, page.Nfts, 2)
	assert.Equal(t, "a", page.Nfts[0].TokenID)
	assert.Equal(t, "b", page.Nfts[1].TokenID)

	after := "b"
	page, err = queryAllNfts(deps, GetAllNftsQuery{StartAfter: &after, Limit: &limit})
	require.NoError(t, err)
	require.Len(t, page.Nfts, 2)
	assert.Equal(t, "c", page.Nfts[0].TokenID)
	assert.Equal(t, "d", page.Nfts[1].TokenID)

	after = "d"
	page, err = queryAllNfts(deps, GetAllNftsQuery{StartAfter: &after})
	require.NoError(t, err)
	require.Len(t, page.Nfts, 1)
	assert.Equal(t, "e", page.Nfts[0].TokenID)
}

func TestGetAllNftsZeroLimitReturnsEmptyPage(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})
	mint(t, deps, alice, "a", alice, "ipfs://a", "1")

	// An explicit zero limit is a bound, not a request for everything.
	zero := uint32(0)
	page, err := queryAllNfts(deps, GetAllNftsQuery{Limit: &zero})
	require.NoError(t, err)
	assert.Empty(t, page.Nfts)

	page, err = queryAllNfts(deps, GetAllNftsQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Nfts, 1)
}

func TestGetAllNftsCountsEveryMint(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})

	mint(t, deps, alice, "t1", alice, "ipfs://1", "10")
	mint(t, deps, alice, "t2", alice, "ipfs://2", "20")
	// overwrite does not add a record
	mint(t, deps, alice, "t2", bob, "ipfs://2b", "25")

	all, err := queryAllNfts(deps, GetAllNftsQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Nfts, 2)
}

func TestQueryWireFormat(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})
	mint(t, deps, alice, "t1", alice, "ipfs://Qm123", "340282366920938463463374607431768211455")

	raw, err := Query(deps, testEnv(), QueryMsg{GetNft: &GetNftQuery{TokenID: "t1"}})
	require.NoError(t, err)

	// price travels as a decimal string, full 128-bit range
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "340282366920938463463374607431768211455", decoded["price"])
	assert.Equal(t, alice, decoded["owner"])
	assert.Equal(t, "ipfs://Qm123", decoded["token_uri"])
	assert.Equal(t, "t1", decoded["token_id"])
}

func TestQueryEmptyMessage(t *testing.T) {
	deps, _ := testDeps()
	instantiate(t, deps, InstantiateMsg{Name: "AstraNode Art", Symbol: "ASTRART"})

	_, err := Query(deps, testEnv(), QueryMsg{})
	assert.Error(t, err)
}
