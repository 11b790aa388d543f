package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		categories, err := deps.Categories.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		for _, cat := range categories {
			fmt.Printf("#%-4d %-24s %s\n", cat.ID, cat.CategoryName, cat.CategoryKind)
		}
		return nil
	},
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		draft := domain.CategoryDraft{}
		draft.CategoryName, _ = cmd.Flags().GetString("name")
		draft.CategoryKind, _ = cmd.Flags().GetString("kind")

		if err := deps.Modals.Open(cmd.Context(), ui.KindCategorySetup, nil); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindCategorySetup, deps.Categories, deps.Modals, deps.Notifier, 0)
		created, err := form.Submit(cmd.Context(), draft)
		if err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindCategorySetup)
			return err
		}
		fmt.Printf("Created category #%d\n", created.ID)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Categories, id)
		if err != nil {
			return err
		}
		return confirmAndDelete(cmd, existing, "category")
	},
}

func init() {
	categoryCreateCmd.Flags().String("name", "", "category name")
	categoryCreateCmd.Flags().String("kind", "", "category kind (asset, income or expense)")
	categoryDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	categoryCmd.AddCommand(categoryListCmd, categoryCreateCmd, categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
