package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sqsclient "github.com/zestagio/queue-composer/internal/clients/sqs"
	"github.com/zestagio/queue-composer/internal/config"
	"github.com/zestagio/queue-composer/internal/draft"
	"github.com/zestagio/queue-composer/internal/logger"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
)

var errNotSent = errors.New("some messages were not sent")

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <seed>",
		Short: "Send every valid seed message with the connection from the config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ParseAndValidate(configPath)
			if err != nil {
				return fmt.Errorf("parse and validate config %q: %v", configPath, err)
			}

			if err := logger.Init(logger.NewOptions(cfg.Log.Level)); err != nil {
				return fmt.Errorf("init logger: %v", err)
			}
			defer logger.Sync()

			conn := settingsrepo.Connection{
				Region:          cfg.Connection.Region,
				AccessKeyID:     cfg.Connection.AccessKeyID,
				SecretAccessKey: cfg.Connection.SecretAccessKey,
				SessionToken:    cfg.Connection.SessionToken,
				QueueURL:        cfg.Connection.QueueURL,
			}
			if err := conn.Validate(); err != nil {
				return fmt.Errorf("connection not configured: %v", err)
			}

			sender, err := sqsclient.NewFactory(sqsclient.NewFactoryOptions(
				cfg.Clients.SQS.Endpoint,
				cfg.Clients.SQS.DebugMode,
			))
			if err != nil {
				return fmt.Errorf("create sqs client factory: %v", err)
			}

			msgs, err := loadSeed(cmd, args[0])
			if err != nil {
				return err
			}

			failed := 0
			for i, msg := range msgs {
				if !printVerdict(cmd.OutOrStdout(), i, msg) {
					failed++
					continue
				}

				req, err := draft.BuildSendRequest(conn.QueueURL, msg)
				if err != nil {
					return fmt.Errorf("build send request #%d: %v", i, err)
				}

				sent, err := sender.SendMessage(cmd.Context(), conn, req)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "    not sent: %v\n", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "    sent: %s\n", sent.MessageID)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errNotSent, failed, len(msgs))
			}
			return nil
		},
	}
}
