// Package host defines the surface of the ledger runtime as seen by the
// registry contract: ordered key-value state, address validation, the
// transaction context (sender and attached funds), and queued fund-transfer
// instructions. The real chain provides these services; the in-memory
// implementations here back tests and local tooling.
package host

// Storage is durable contract state keyed by string. Writes are only durable
// if the enclosing transaction commits; within one execution reads observe
// earlier writes.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	// Keys returns every stored key with the given prefix in ascending order.
	// Each call re-opens the scan.
	Keys(prefix string) []string
}

// API exposes host-side account helpers to the contract.
type API interface {
	// ValidateAddress reports whether addr is a well-formed account
	// identifier under the host's address rules.
	ValidateAddress(addr string) error
}
