package host

// Address is a ledger account identifier, e.g. "astra1x7k...".
type Address string

func (a Address) String() string { return string(a) }

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}

// Env carries block-level context supplied by the host for one execution.
type Env struct {
	BlockHeight uint64  `json:"block_height"`
	BlockTime   string  `json:"block_time"`
	Contract    Address `json:"contract"`
}

// MessageInfo identifies the caller of a command and the funds attached to
// the transaction. The host moves attached funds into the contract balance
// before execution begins.
type MessageInfo struct {
	Sender Address `json:"sender"`
	Funds  []Coin  `json:"funds"`
}

// BankSend instructs the host to move coins out of the contract balance.
// The host executes it atomically with the state writes of the same
// execution; if it fails everything rolls back.
type BankSend struct {
	ToAddress Address `json:"to_address"`
	Amount    []Coin  `json:"amount"`
}
