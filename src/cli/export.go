package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kvbackup/src/backup/export"
)

func newExportCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every key in the store to the backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, stdout, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Backup file path (default from config, then "+defaultOutputHelp+")")
	return cmd
}

func runExport(cmd *cobra.Command, stdout io.Writer, output string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	client, src, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	dest := cfg.Output
	if output != "" {
		dest = output
	}
	log.Debugw("starting export", "store", src.String(), "output", dest)

	sum, err := export.Export(client, dest)
	if err != nil {
		return err
	}
	log.Infow("export complete", "keys", sum.Keys, "bytes", sum.Bytes)
	fmt.Fprintf(stdout, "Database has been backed up to %s\n", sum.Path)
	return nil
}
