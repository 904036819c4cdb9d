package common

import (
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/klaybind/klaybind/internal/logger"
	"github.com/klaybind/klaybind/pkg/contract"
)

// SimTransactOpts is useful to generate just the calldata for a given binding method.
func SimTransactOpts() *bind.TransactOpts {
	return &bind.TransactOpts{Signer: func(address common.Address, transaction *types.Transaction) (*types.Transaction, error) {
		return transaction, nil
	}, From: common.HexToAddress("0x0"), NoSend: true, GasLimit: 1_000_000, GasPrice: big.NewInt(0)}
}

// DecodeReceiptLogs decodes every log of receipt emitted by c. Logs of other
// contracts and logs with unknown topics are skipped.
func DecodeReceiptLogs(l *zerolog.Logger, c *contract.Contract, receipt *types.Receipt) []logger.DecodedLog {
	var decoded []logger.DecodedLog
	for _, log := range receipt.Logs {
		if log.Address != c.Address() {
			continue
		}
		ev, fields, err := c.DecodeLog(*log)
		if err != nil {
			l.Debug().Err(err).Uint("index", log.Index).Msg("Skipping undecodable log")
			continue
		}
		entry := logger.DecodedLog{Event: ev.Name, Log: log, Fields: fields}
		l.Debug().Object("Event", entry).Msgf("%s event emitted", ev.Name)
		decoded = append(decoded, entry)
	}
	return decoded
}

func WriteYamlToFile(v any, filePath string) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, out, 0600)
}

// ToStringSlice converts a slice of any type to a slice of strings.
// If an element is a byte slice, it prints it as hex.
func ToStringSlice(args []any) []string {
	result := make([]string, len(args))
	for i, v := range args {
		switch b := v.(type) {
		case []byte, [32]byte:
			result[i] = fmt.Sprintf("0x%x", b)
		case [][]byte:
			hexStrings := make([]string, len(b))
			for j, bb := range b {
				hexStrings[j] = fmt.Sprintf("0x%x", bb)
			}
			result[i] = fmt.Sprintf("[%s]", strings.Join(hexStrings, ", "))
		case [][32]byte:
			hexStrings := make([]string, len(b))
			for j, bb := range b {
				hexStrings[j] = fmt.Sprintf("0x%x", bb)
			}
			result[i] = fmt.Sprintf("[%s]", strings.Join(hexStrings, ", "))
		case common.Address:
			result[i] = b.Hex()
		default:
			result[i] = fmt.Sprintf("%v", v)
		}
	}
	return result
}

// FormatFields renders decoded event or call fields as sorted key=value pairs.
func FormatFields(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = fields[k]
	}
	rendered := ToStringSlice(values)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + rendered[i]
	}
	return strings.Join(pairs, " ")
}
