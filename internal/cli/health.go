package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List scoring categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CategoryList

			if err := client.Get(cmd.Context(), "/api/v1/categories", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
