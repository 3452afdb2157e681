package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiehdog/havenmind-front/internal/api"
	"github.com/hsiehdog/havenmind-front/internal/mutation"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Show the conversation, optionally sending a message first",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		thread := mutation.NewChatThread(client, cache)

		if _, err := thread.Load(ctx); err != nil {
			return err
		}

		if len(args) > 0 {
			if _, err := thread.Send(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
		}

		for _, message := range thread.Messages() {
			prefix := "HavenMind"
			if message.Role == api.RoleUser {
				prefix = "You"
			}
			if message.IsOptimistic {
				prefix += " (sending)"
			}
			fmt.Printf("%s: %s\n", headingStyle.Render(prefix), message.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
