package settings

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/internal/constants"
)

func IsValidChainName(name string) bool {
	_, ok := constants.Networks[name]
	return ok
}

// ChainNames returns the known network names, sorted.
func ChainNames() []string {
	names := make([]string, 0, len(constants.Networks))
	for name := range constants.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetChain picks the network: --chain, then default-chain of klaybind.yaml, then the built-in default.
func (s *Settings) GetChain(v *viper.Viper) (constants.Network, error) {
	name := v.GetString(Flags.Chain.Name)
	if name == "" {
		name = s.Project.DefaultChain
	}
	if name == "" {
		name = constants.DefaultChainName
	}

	network, ok := constants.Networks[name]
	if !ok {
		return constants.Network{}, fmt.Errorf("unknown chain %q, expected one of %v", name, ChainNames())
	}
	return network, nil
}

// GetRpcUrl resolves the endpoint for chainName. Precedence: --rpc-url, KLAYBIND_RPC_URL,
// the rpcs list of klaybind.yaml, the network's public endpoint.
func (s *Settings) GetRpcUrl(v *viper.Viper, chainName string) (string, error) {
	if url := v.GetString(Flags.RpcURL.Name); url != "" {
		return url, nil
	}
	if s.User.RpcURL != "" {
		return s.User.RpcURL, nil
	}
	for _, rpc := range s.Project.RPCs {
		if rpc.ChainName == chainName && rpc.Url != "" {
			return rpc.Url, nil
		}
	}
	if network, ok := constants.Networks[chainName]; ok && network.RpcURL != "" {
		return network.RpcURL, nil
	}

	return "", fmt.Errorf("rpc url not found for chain %s: set --%s, %s or add it to %s", chainName, Flags.RpcURL.Name, RpcURLEnvVar, constants.DefaultProjectSettingsFileName)
}
