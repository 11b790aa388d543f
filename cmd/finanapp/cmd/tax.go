package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Manage tax definitions",
}

var taxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tax definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		taxes, err := deps.Taxes.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range taxes {
			fmt.Printf("#%-4d %-24s %-14s %.2f%% (%s)\n",
				t.ID, t.TaxName, t.TaxType.TaxTypeName, t.TaxPercentage, t.TaxApplicableCycle)
		}
		return nil
	},
}

var taxCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tax definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		draft := domain.TaxDraft{}
		draft.TaxName, _ = cmd.Flags().GetString("name")
		draft.TaxTypeID, _ = cmd.Flags().GetString("type")
		draft.TaxPercentage, _ = cmd.Flags().GetString("percentage")
		draft.TaxApplicableCycle, _ = cmd.Flags().GetString("cycle")

		if err := deps.Modals.Open(cmd.Context(), ui.KindTaxSetup, nil); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindTaxSetup, deps.Taxes, deps.Modals, deps.Notifier, 0)
		created, err := form.Submit(cmd.Context(), draft)
		if err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindTaxSetup)
			return err
		}
		fmt.Printf("Created tax #%d\n", created.ID)
		return nil
	},
}

var taxDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tax definition (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Taxes, id)
		if err != nil {
			return err
		}
		return confirmAndDelete(cmd, existing, "tax")
	},
}

func init() {
	taxCreateCmd.Flags().String("name", "", "tax name")
	taxCreateCmd.Flags().String("type", "", "tax type id")
	taxCreateCmd.Flags().String("percentage", "", "tax percentage")
	taxCreateCmd.Flags().String("cycle", "", "applicable cycle (e.g. Yearly)")
	taxDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	taxCmd.AddCommand(taxListCmd, taxCreateCmd, taxDeleteCmd)
	rootCmd.AddCommand(taxCmd)
}
