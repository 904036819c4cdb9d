package contract

import (
	"github.com/spf13/cobra"

	"github.com/klaybind/klaybind/cmd/contract/call"
	"github.com/klaybind/klaybind/cmd/contract/deploy"
	"github.com/klaybind/klaybind/cmd/contract/logs"
	"github.com/klaybind/klaybind/cmd/contract/selectors"
	"github.com/klaybind/klaybind/cmd/contract/send"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	contractCmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploys and interacts with smart contracts",
		Long: `The contract command deploys the contracts of a project and calls, transacts with and
inspects them through their ABI.`,
	}

	deployCmd := deploy.New(runtimeContext)
	settings.AddChainFlags(deployCmd)

	contractCmd.AddCommand(deployCmd)
	contractCmd.AddCommand(call.New(runtimeContext))
	contractCmd.AddCommand(send.New(runtimeContext))
	contractCmd.AddCommand(logs.New(runtimeContext))
	contractCmd.AddCommand(selectors.New(runtimeContext))

	return contractCmd
}
