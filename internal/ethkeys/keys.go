package ethkeys

import (
	"crypto/ecdsa"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var privateKeyHex = regexp.MustCompile("^[0-9a-fA-F]{64}$")

// ParsePrivateKey accepts a 64 character hex key with or without the 0x prefix.
func ParsePrivateKey(key string) (*ecdsa.PrivateKey, error) {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")
	if !privateKeyHex.MatchString(key) {
		return nil, fmt.Errorf("private key must be 64 hex characters")
	}

	privateKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return privateKey, nil
}

func AddressFromPrivateKey(privateKey *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(privateKey.PublicKey)
}
