package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiehdog/havenmind-front/internal/api"
)

var (
	profileName     string
	currentPassword string
	newPassword     string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Update the profile or change the password",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		changed := false

		if profileName != "" {
			if err := client.UpdateUserProfile(ctx, api.UpdateUserPayload{Name: profileName}); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			changed = true
		}

		if newPassword != "" {
			if err := client.ChangeUserPassword(ctx, api.ChangePasswordPayload{
				CurrentPassword: currentPassword,
				NewPassword:     newPassword,
			}); err != nil {
				return err
			}
			fmt.Println("Password changed.")
			changed = true
		}

		if !changed {
			return cmd.Help()
		}
		return nil
	},
}

func init() {
	accountCmd.Flags().StringVar(&profileName, "name", "", "new display name")
	accountCmd.Flags().StringVar(&currentPassword, "current-password", "", "current password")
	accountCmd.Flags().StringVar(&newPassword, "new-password", "", "new password")
	rootCmd.AddCommand(accountCmd)
}
