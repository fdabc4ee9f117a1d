package marketplace

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// VerifySignature checks an EVM personal-sign signature over message and
// reports whether it was produced by the key behind address. The signature
// is a 65-byte hex string; both the raw 0/1 and the legacy 27/28 recovery
// id encodings are accepted.
func VerifySignature(address, message, signature string) (bool, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return false, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return false, fmt.Errorf("recover public key: %w", err)
	}

	recovered := crypto.PubkeyToAddress(*pub)
	return strings.EqualFold(recovered.Hex(), address), nil
}
