package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	seedclient "github.com/zestagio/queue-composer/internal/clients/seed"
	"github.com/zestagio/queue-composer/internal/draft"
)

var errInvalidMessages = errors.New("some messages are invalid")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <seed>",
		Short: "Print the validation verdict of every seed message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := loadSeed(cmd, args[0])
			if err != nil {
				return err
			}

			invalid := 0
			for i, msg := range msgs {
				if !printVerdict(cmd.OutOrStdout(), i, msg) {
					invalid++
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidMessages, invalid, len(msgs))
			}
			return nil
		},
	}
}

func loadSeed(cmd *cobra.Command, source string) ([]draft.Message, error) {
	c, err := seedclient.New(seedclient.NewOptions())
	if err != nil {
		return nil, fmt.Errorf("create seed client: %v", err)
	}

	raws, err := c.Load(cmd.Context(), source)
	if err != nil {
		return nil, fmt.Errorf("load seed %q: %v", source, err)
	}

	msgs := make([]draft.Message, 0, len(raws))
	for _, raw := range raws {
		msgs = append(msgs, draft.Import(raw))
	}
	return msgs, nil
}

// printVerdict reports whether the message is valid.
func printVerdict(w io.Writer, i int, msg draft.Message) bool {
	reasons := msg.Errors()
	if len(reasons) == 0 {
		fmt.Fprintf(w, "#%d: OK\n", i)
		return true
	}

	fmt.Fprintf(w, "#%d: INVALID\n", i)
	for _, r := range reasons {
		fmt.Fprintf(w, "    %s\n", r)
	}
	return false
}
