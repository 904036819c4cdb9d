package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klaybind/klaybind/internal/runtime"
)

// Default placeholder value
var Version = "development"

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the klaybind version",
		Long:  "This command prints the current version of klaybind, which is also the runtime version generated bindings depend on",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "klaybind", Version)
			return nil
		},
	}

	return versionCmd
}
