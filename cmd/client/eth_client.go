package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/ethkeys"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/pkg/contract"
)

var (
	ErrChainIDMismatch = errors.New("chain id mismatch")
	ErrNoSigner        = errors.New("no private key configured")
)

// Backend is the chain access the CLI needs on top of the contract proxy.
type Backend interface {
	contract.Backend
	ethereum.TransactionReader
	ethereum.ChainIDReader
}

// EthClient is a connected backend plus the signing key and transaction settings of the CLI user.
type EthClient struct {
	Backend Backend
	Network constants.Network
	ChainID *big.Int

	logger *zerolog.Logger
	key    *ecdsa.PrivateKey
	tx     settings.TxSettings
	close  func()
}

// NewEthClient wraps an already connected backend. An empty privateKey yields a read-only client.
func NewEthClient(logger *zerolog.Logger, backend Backend, network constants.Network, chainID *big.Int, privateKey string, tx settings.TxSettings) (*EthClient, error) {
	c := &EthClient{
		Backend: backend,
		Network: network,
		ChainID: chainID,
		logger:  logger,
		tx:      tx,
	}

	if privateKey == "" {
		logger.Debug().Msg("No private key provided, commands that write to chain work only in unsigned mode")
		return c, nil
	}
	key, err := ethkeys.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", settings.EthPrivateKeyEnvVar, err)
	}
	c.key = key
	return c, nil
}

func (c *EthClient) HasSigner() bool {
	return c.key != nil
}

// From is the signing address, or the zero address for a read-only client.
func (c *EthClient) From() common.Address {
	if c.key == nil {
		return common.Address{}
	}
	return ethkeys.AddressFromPrivateKey(c.key)
}

func (c *EthClient) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: c.From()}
}

// TransactOpts signs with the configured key and applies gas settings from klaybind.toml.
func (c *EthClient) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, fmt.Errorf("%w: set %s or use --%s", ErrNoSigner, settings.EthPrivateKeyEnvVar, settings.Flags.RawTxFlag.Name)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.GasLimit = c.tx.GasLimit
	opts.GasPrice = c.tx.GasPrice()
	return opts, nil
}

// WaitContext bounds receipt polling by the configured transaction timeout.
func (c *EthClient) WaitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout, err := c.tx.TimeoutDuration()
	if err != nil {
		timeout = constants.DefaultTxTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *EthClient) Close() {
	if c.close != nil {
		c.close()
	}
}

type DialConfig struct {
	Attempts   uint
	Delay      time.Duration
	Timeout    time.Duration
	HTTPClient *http.Client
}

func DefaultDialConfig() DialConfig {
	return DialConfig{
		Attempts: 3,
		Delay:    time.Second,
		Timeout:  constants.DefaultDialTimeout,
	}
}

// Dial connects to url and probes eth_chainId, retrying transient failures.
// When network has a known chain id a different answer fails without retrying.
func Dial(ctx context.Context, logger *zerolog.Logger, url string, network constants.Network, cfg DialConfig) (*ethclient.Client, *big.Int, error) {
	type dialed struct {
		client  *ethclient.Client
		chainID *big.Int
	}

	var opts []rpc.ClientOption
	if cfg.HTTPClient != nil {
		opts = append(opts, rpc.WithHTTPClient(cfg.HTTPClient))
	}

	result, err := retry.DoWithData(
		func() (dialed, error) {
			attemptCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()

			rpcClient, err := rpc.DialOptions(attemptCtx, url, opts...)
			if err != nil {
				return dialed{}, err
			}
			ec := ethclient.NewClient(rpcClient)

			chainID, err := ec.ChainID(attemptCtx)
			if err != nil {
				ec.Close()
				return dialed{}, err
			}
			if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
				ec.Close()
				return dialed{}, retry.Unrecoverable(fmt.Errorf("%w: %s reports %s, %s expects %d", ErrChainIDMismatch, url, chainID, network.Name, network.ChainID))
			}
			return dialed{client: ec, chainID: chainID}, nil
		},
		retry.Attempts(cfg.Attempts),
		retry.Delay(cfg.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug().Uint("attempt", n+1).Str("url", url).Err(err).Msg("RPC dial failed, retrying")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	logger.Debug().Str("url", url).Str("chain_id", result.chainID.String()).Msg("Connected to RPC node")
	return result.client, result.chainID, nil
}
