package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-nodegen/internal/config"
	"github.com/goliatone/go-nodegen/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nodegen",
		Short:         "Convert actor input schemas into node parameter descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "", "minimum log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		newConvertCmd(),
		newFormatsCmd(),
	)
	return root
}

// flagOverrides maps the flags the user actually set onto config keys so
// unset flags never shadow the environment.
func flagOverrides(cmd *cobra.Command, keys map[string]string) (map[string]any, error) {
	overrides := make(map[string]any, len(keys))
	flags := cmd.Flags()
	for flag, key := range keys {
		if !flags.Changed(flag) {
			continue
		}
		value, err := flagValue(cmd, flag)
		if err != nil {
			return nil, err
		}
		overrides[key] = value
	}
	return overrides, nil
}

func flagValue(cmd *cobra.Command, name string) (any, error) {
	flag := cmd.Flags().Lookup(name)
	if flag.Value.Type() == "bool" {
		return cmd.Flags().GetBool(name)
	}
	return flag.Value.String(), nil
}

func loadConfig(cmd *cobra.Command, keys map[string]string) (*config.Config, logger.Logger, error) {
	all := map[string]string{
		"log-level": "log.level",
		"log-json":  "log.json",
	}
	for flag, key := range keys {
		all[flag] = key
	}

	overrides, err := flagOverrides(cmd, all)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Config{
		Level:  logger.Level(cfg.Log.Level),
		Output: cmd.ErrOrStderr(),
		JSON:   cfg.Log.JSON,
	})
	return cfg, log, nil
}
