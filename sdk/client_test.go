package sdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astranode/astranode-nft/contract"
	"github.com/astranode/astranode-nft/host"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(Config{
		Endpoint: srv.URL,
		Sender:   "astra1qpzry9x8gf2",
		Contract: "astra1registryxz0",
	})
	return client, srv
}

func TestGetNft(t *testing.T) {
	var gotBody []byte
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/contracts/astra1registryxz0/smart", r.URL.Path)
		require.Equal(t, "POST", r.Method)
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(contract.NftInfoResponse{
			TokenID:  "t1",
			Owner:    "astra1ce6mua7l2tv",
			TokenURI: "ipfs://Qm123",
			Price:    host.MustUint128("100"),
		})
	}))
	defer srv.Close()

	nft, err := client.GetNft(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", nft.TokenID)
	assert.Equal(t, host.Address("astra1ce6mua7l2tv"), nft.Owner)
	assert.Equal(t, host.MustUint128("100"), nft.Price)

	assert.JSONEq(t, `{"get_nft": {"token_id": "t1"}}`, string(gotBody))
}

func TestGetAllNftsPaging(t *testing.T) {
	var gotBody []byte
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(contract.AllNftsResponse{Nfts: []contract.NftInfoResponse{
			{TokenID: "t2", Owner: "astra1ce6mua7l2tv", Price: host.MustUint128("1")},
			{TokenID: "t3", Owner: "astra1ce6mua7l2tv", Price: host.MustUint128("2")},
		}})
	}))
	defer srv.Close()

	after := "t1"
	limit := uint32(2)
	nfts, err := client.GetAllNfts(context.Background(), &after, &limit)
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	assert.Equal(t, "t2", nfts[0].TokenID)

	assert.JSONEq(t, `{"get_all_nfts": {"start_after": "t1", "limit": 2}}`, string(gotBody))
}

func TestGetNftGatewayError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := client.GetNft(context.Background(), "ghost")
	assert.ErrorContains(t, err, "status 404")
}

func TestBroadcastRejectsInvalidMessage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid message must not reach the gateway")
	}))
	defer srv.Close()

	// empty token_id fails schema validation client-side
	_, err := client.Buy(context.Background(), "", host.MustUint128("100"))
	assert.ErrorContains(t, err, "invalid execute message")
}

func TestMintBroadcast(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/graphql", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"submitContractCall": {"id": "tx123"}}}`))
	}))
	defer srv.Close()

	txid, err := client.Mint(context.Background(), "t1", "astra1ce6mua7l2tv", "ipfs://Qm123", host.MustUint128("100"))
	require.NoError(t, err)
	assert.Equal(t, "tx123", txid)
}
