package host

import (
	"fmt"
	"strings"
)

// bech32 data charset, used for the syntactic account check
const addrCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Bech32API validates bech32-shaped account identifiers such as
// "astra1x7kz...". It checks prefix, separator, charset and length; checksum
// verification stays with the chain itself.
type Bech32API struct {
	Prefix string
}

// NewBech32API returns an API for the given human-readable prefix.
func NewBech32API(prefix string) Bech32API {
	return Bech32API{Prefix: prefix}
}

func (b Bech32API) ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}
	if len(addr) > 90 {
		return fmt.Errorf("address too long: %d chars", len(addr))
	}
	if addr != strings.ToLower(addr) {
		return fmt.Errorf("address must be lowercase: %s", addr)
	}
	want := b.Prefix + "1"
	if !strings.HasPrefix(addr, want) {
		return fmt.Errorf("address %s does not start with %q", addr, want)
	}
	data := addr[len(want):]
	if len(data) < 6 {
		return fmt.Errorf("address data part too short: %s", addr)
	}
	for _, c := range data {
		if !strings.ContainsRune(addrCharset, c) {
			return fmt.Errorf("invalid character %q in address %s", c, addr)
		}
	}
	return nil
}
