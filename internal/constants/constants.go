package constants

import (
	"time"
)

const (
	// Limits
	MaxAbiFileSize      = 5 * 1024 * 1024
	MaxBytecodeFileSize = 10 * 1024 * 1024

	// Default Values
	DefaultTxTimeout   = 2 * time.Minute
	DefaultDialTimeout = 10 * time.Second
	DefaultChainName   = "kairos"

	DefaultCypressRpcUrl = "https://public-en.node.kaia.io"
	DefaultKairosRpcUrl  = "https://public-en-kairos.node.kaia.io"
	DefaultLocalRpcUrl   = "http://127.0.0.1:8545"

	DefaultProjectSettingsFileName = "klaybind.yaml"
	DefaultTxSettingsFileName      = "klaybind.toml"
	DefaultEnvFileName             = ".env"

	DefaultContractsDir              = "contracts"
	DefaultContractsConfigFileName   = "contracts.yaml"
	DefaultDeployedContractsFileName = "deployed_contracts.yaml"
	DefaultAbiDir                    = "contracts/evm/src/abi"
	DefaultBindingsDir               = "contracts/evm/src/generated"

	// Runtime module the generated bindings import
	RuntimeModule = "github.com/klaybind/klaybind"

	EnvVarPrivateKey = "KLAYBIND_PRIVATE_KEY"
	EnvVarRpcURL     = "KLAYBIND_RPC_URL"

	TestAddress      = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	TestAddress2     = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	TestAddress3     = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	TestPrivateKey   = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	TestPrivateKey2  = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	TestPrivateKey3  = "5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"
	TestAnvilChainID = 31337 // Anvil chain ID
	TestSimChainID   = 1337  // ethclient/simulated chain ID
)

// Network is a Klaytn-compatible chain the CLI knows by name.
type Network struct {
	Name    string
	ChainID uint64
	RpcURL  string
	Testnet bool
}

// Networks is keyed by the name accepted by --chain.
var Networks = map[string]Network{
	"cypress":   {Name: "cypress", ChainID: 8217, RpcURL: DefaultCypressRpcUrl},
	"baobab":    {Name: "baobab", ChainID: 1001, RpcURL: DefaultKairosRpcUrl, Testnet: true},
	"kairos":    {Name: "kairos", ChainID: 1001, RpcURL: DefaultKairosRpcUrl, Testnet: true},
	"localhost": {Name: "localhost", ChainID: TestAnvilChainID, RpcURL: DefaultLocalRpcUrl, Testnet: true},
	"simulated": {Name: "simulated", ChainID: TestSimChainID, Testnet: true},
}

// NetworkByChainID returns the first network name for id in a stable order,
// so baobab wins over its kairos alias.
func NetworkByChainID(id uint64) (Network, bool) {
	for _, name := range []string{"cypress", "baobab", "kairos", "localhost", "simulated"} {
		if n := Networks[name]; n.ChainID == id {
			return n, true
		}
	}
	return Network{}, false
}
