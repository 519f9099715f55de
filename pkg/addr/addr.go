package addr

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Tron and Solana addresses share the base58 alphabet (no 0, O, I, l).
var (
	tronPattern   = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)
	solanaPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
)

// IsValid reports whether address matches at least one supported chain format:
// Ethereum-style ("0x" + 40 hex chars), Tron-style ("T" + 33 base58 chars) or
// Solana-style (32-44 base58 chars). Only the shape is checked; no checksum
// verification is performed against the actual chain encoding.
func IsValid(address string) bool {
	if strings.HasPrefix(address, "0x") && common.IsHexAddress(address) {
		return true
	}

	if tronPattern.MatchString(address) {
		return true
	}

	return solanaPattern.MatchString(address)
}

// Canonical returns the lower-cased form of address used as the storage key.
func Canonical(address string) string {
	return strings.ToLower(address)
}
