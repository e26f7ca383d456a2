package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kvbackup/src/backup/restore"
	"kvbackup/src/safety"
)

func newRestoreCmd(stdout, stderr io.Writer) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Load a backup file back into the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			path := cfg.Output
			if file != "" {
				path = file
			}
			data, err := restore.Load(path)
			if err != nil {
				return err
			}

			opts := getSafetyOptions(cmd)
			if opts.DryRun {
				fmt.Fprintf(stdout, "Would restore %d keys from %s\n", len(data), path)
				return nil
			}
			client, src, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			question := fmt.Sprintf("Restore %d keys into %s? Existing values will be overwritten.", len(data), src.String())
			ok, err := safety.Confirm(opts, cmd.InOrStdin(), stdout, question)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(stdout, "Aborted.")
				return nil
			}

			n, err := restore.Apply(client, data)
			if err != nil {
				return err
			}
			log.Infow("restore complete", "keys", n, "file", path)
			fmt.Fprintf(stdout, "Restored %d keys from %s\n", n, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Backup file to load (default from config, then "+defaultOutputHelp+")")
	return cmd
}
