package list

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/amberarrow/helloplanet/internal/planet"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagFormat string

// Cmd implements `helloplanet list`.
var Cmd = &cobra.Command{
	Use:           "list",
	Short:         "List the planets in orbital order",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(os.Stdout, flagFormat)
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format (table, json, yaml)")
}

func render(w io.Writer, format string) error {
	planets := planet.All()
	switch format {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tNAME")
		for _, p := range planets {
			fmt.Fprintf(tw, "%d\t%s\n", p.Index, p.Name)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(planets)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(planets); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", format)
	}
}
