package settings

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/params"

	"github.com/klaybind/klaybind/internal/constants"
)

// TxSettings mirrors klaybind.toml.
type TxSettings struct {
	GasLimit     uint64  `toml:"gas-limit"`
	GasPriceGwei float64 `toml:"gas-price-gwei"`
	Timeout      string  `toml:"timeout"`
}

// LoadTxSettings decodes path. A missing file yields zero settings.
func LoadTxSettings(path string) (TxSettings, error) {
	var tx TxSettings
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tx, nil
	}

	md, err := toml.DecodeFile(path, &tx)
	if err != nil {
		return TxSettings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return TxSettings{}, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	if _, err := tx.TimeoutDuration(); err != nil {
		return TxSettings{}, fmt.Errorf("invalid timeout in %s: %w", path, err)
	}
	if tx.GasPriceGwei < 0 {
		return TxSettings{}, fmt.Errorf("gas-price-gwei in %s must not be negative", path)
	}
	return tx, nil
}

func (t TxSettings) TimeoutDuration() (time.Duration, error) {
	if t.Timeout == "" {
		return constants.DefaultTxTimeout, nil
	}
	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", t.Timeout)
	}
	return d, nil
}

// GasPrice returns nil when unset so the node suggests one.
func (t TxSettings) GasPrice() *big.Int {
	if t.GasPriceGwei == 0 {
		return nil
	}
	gwei := new(big.Float).Mul(big.NewFloat(t.GasPriceGwei), big.NewFloat(params.GWei))
	wei, _ := gwei.Int(nil)
	return wei
}
