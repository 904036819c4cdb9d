package logger

import (
	"encoding/hex"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// EventFields logs decoded event or call fields. Fixed byte arrays are written as hex,
// addresses and hashes in their checksummed/0x form and big integers in base 10.
type EventFields map[string]any

func (f EventFields) MarshalZerologObject(e *zerolog.Event) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch v := f[key].(type) {
		case common.Address:
			e.Str(key, v.Hex())
		case common.Hash:
			e.Str(key, v.Hex())
		case *big.Int:
			if v == nil {
				e.Str(key, "<nil>")
				continue
			}
			e.Str(key, v.String())
		case [32]byte:
			e.Str(key, hex.EncodeToString(v[:]))
		case [4]byte:
			e.Str(key, hex.EncodeToString(v[:]))
		case []byte:
			e.Str(key, "0x"+hex.EncodeToString(v))
		default:
			e.Interface(key, v)
		}
	}
}

// DecodedLog is a log entry paired with the event that decoded it.
type DecodedLog struct {
	Event  string
	Log    *types.Log
	Fields EventFields
}

func (d DecodedLog) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Event", d.Event)
	if d.Log != nil {
		e.Str("Address", d.Log.Address.Hex())
		e.Uint64("BlockNumber", d.Log.BlockNumber)
		e.Str("TxHash", d.Log.TxHash.Hex())
		e.Uint("Index", d.Log.Index)
		e.Bool("Removed", d.Log.Removed)
	}
	if d.Fields != nil {
		e.Object("Fields", d.Fields)
	}
}
