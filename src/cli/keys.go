package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kvbackup/src/jsonval"
	"kvbackup/src/kvstore"
)

func newKeysCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the keys in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			client, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			keys, err := client.Keys()
			if err != nil {
				return err
			}
			switch output {
			case "json":
				if keys == nil {
					keys = []string{}
				}
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(keys)
			case "table", "":
				return renderKeysTable(stdout, client, keys)
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderKeysTable(w io.Writer, client kvstore.Client, keys []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTYPE")
	for _, k := range keys {
		v, err := client.Get(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", k, jsonval.TypeName(v))
	}
	return tw.Flush()
}
