package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/amberarrow/helloplanet/internal/logging"
	"github.com/amberarrow/helloplanet/internal/planet"
	"github.com/spf13/cobra"
)

type missingArgumentError struct{}

func (missingArgumentError) Error() string { return "Need planet index" }
func (missingArgumentError) ExitCode() int { return 1 }

// runGreet resolves the single positional index and prints the greeting.
// Because the root disables flag parsing, help and verbose flags are picked
// out of the raw argument list here. Only leading flags are recognized:
// anything after the first positional counts as an argument.
func runGreet(cmd *cobra.Command, args []string) error {
	verbose := false
	positional := args
scan:
	for len(positional) > 0 {
		switch positional[0] {
		case "-h", "--help":
			return cmd.Help()
		case "-v", "--verbose":
			verbose = true
			positional = positional[1:]
		default:
			break scan
		}
	}
	logging.Setup(verbose)

	if len(positional) == 0 {
		return missingArgumentError{}
	}
	if len(positional) > 1 {
		return fmt.Errorf("expected a single planet index, got %d arguments", len(positional))
	}

	idx, err := planet.ParseIndex(positional[0])
	if err != nil {
		return err
	}
	name, err := planet.Name(idx)
	if err != nil {
		return err
	}
	slog.Debug("planet resolved", "index", idx, "name", name)

	_, err = fmt.Fprintf(os.Stdout, "Hello %s\n", name)
	return err
}
