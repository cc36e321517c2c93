package root

import (
	"github.com/amberarrow/helloplanet/cmd/helloplanet/list"
	"github.com/amberarrow/helloplanet/cmd/helloplanet/version"
	"github.com/amberarrow/helloplanet/internal/logging"
	"github.com/spf13/cobra"
)

// flagVerbose is parsed by subcommands; the root scans for it by hand in
// runGreet because its flag parsing is disabled.
var flagVerbose bool

// NewRootCmd creates the root command for helloplanet. The root itself is
// the greeting: `helloplanet <index>` prints a hello for the planet at that
// orbital index.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helloplanet <index>",
		Short: "Greet a planet of the solar system by its orbital index",
		// With subcommands present, cobra would otherwise reject any
		// positional that is not a subcommand name before RunE runs.
		Args: cobra.ArbitraryArgs,
		// Flag parsing is off on the root so a negative index such as -1
		// reaches the lookup instead of being read as a flag. Subcommands
		// parse their own flags as usual.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runGreet,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(list.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
