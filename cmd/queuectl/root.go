package main

import (
	"github.com/spf13/cobra"

	"github.com/zestagio/queue-composer/internal/buildinfo"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "queuectl",
		Short:         "Validate and send seed messages without the browser",
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "configs/config.toml", "Path to config file")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newSendCmd())
	return root
}
