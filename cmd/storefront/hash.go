package main

import (
	"fmt"

	"storefront-service/internal/admin"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash-secret <secret>",
	Short: "Print the bcrypt hash of an admin secret for ADMIN_SECRET_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hashed, err := admin.HashSecret(args[0])
		if err != nil {
			return fmt.Errorf("failed to hash secret: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hashed)
		return nil
	},
}
