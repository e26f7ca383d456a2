package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kvbackup/src/config"
	"kvbackup/src/kvstore"
	"kvbackup/src/logging"
	"kvbackup/src/safety"
	"kvbackup/src/source"
)

const defaultOutputHelp = config.DefaultOutput

// addGlobalFlags adds persistent flags shared by every command.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to YAML config file (default $KVBACKUP_CONFIG)")
	cmd.PersistentFlags().String("store", "", "Store locator, e.g. sqlite:/path/data.db or https://kv.example.com/v0/<token> (default $KVBACKUP_STORE)")
	cmd.PersistentFlags().String("log-level", "", "Diagnostics level: debug|info|warn|error")
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned actions without making changes")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
}

// getSafetyOptions reads the global flags into a safety.Options struct.
func getSafetyOptions(cmd *cobra.Command) safety.Options {
	dry, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	return safety.Options{DryRun: dry, Yes: yes}
}

// setup resolves configuration (flags beat environment beat file) and
// builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *zap.SugaredLogger, error) {
	flags := cmd.Root().PersistentFlags()
	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if v, _ := flags.GetString("store"); v != "" {
		cfg.Store = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// openStore connects to the configured store.
func openStore(cfg *config.Config) (kvstore.Client, source.Source, error) {
	if cfg.Store == "" {
		return nil, source.Source{}, errors.New("no store configured; pass --store, set KVBACKUP_STORE, or add 'store:' to the config file")
	}
	src, err := source.Parse(cfg.Store)
	if err != nil {
		return nil, source.Source{}, err
	}
	client, err := source.Open(src)
	if err != nil {
		return nil, source.Source{}, err
	}
	return client, src, nil
}
