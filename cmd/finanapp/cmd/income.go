package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage income streams",
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your income streams",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		incomes, err := deps.Incomes.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		for _, in := range incomes {
			fmt.Printf("#%-4d %-24s %-14s %s / %s%s\n",
				in.ID, in.IncomeName, in.IncomeType.IncomeTypeName,
				money.Sprintf("%.2f", in.IncomeValue), in.IncomeRecurrence, sharedTag(in.SharedIncome))
		}
		return nil
	},
}

func incomeDraftFromFlags(cmd *cobra.Command) domain.IncomeDraft {
	draft := domain.IncomeDraft{}
	draft.IncomeName, _ = cmd.Flags().GetString("name")
	draft.IncomeValue, _ = cmd.Flags().GetString("value")
	draft.IncomeTypeID, _ = cmd.Flags().GetString("type")
	draft.IncomeRecurrence, _ = cmd.Flags().GetString("recurrence")
	draft.IncomeStartDate, _ = cmd.Flags().GetString("start")
	draft.IncomeEndDate, _ = cmd.Flags().GetString("end")
	draft.SharedIncome, _ = cmd.Flags().GetBool("shared")
	draft.OwningPercentage, _ = cmd.Flags().GetString("owning")
	return draft
}

var incomeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an income stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if err := deps.Modals.Open(cmd.Context(), ui.KindIncome, nil); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindIncome, deps.Incomes, deps.Modals, deps.Notifier, 0)
		created, err := form.Submit(cmd.Context(), incomeDraftFromFlags(cmd))
		if err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindIncome)
			return err
		}
		fmt.Printf("Created income #%d\n", created.ID)
		return nil
	},
}

var incomeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing income stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Incomes, id)
		if err != nil {
			return err
		}
		if err := deps.Modals.Open(cmd.Context(), ui.KindIncome, existing); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindIncome, deps.Incomes, deps.Modals, deps.Notifier, id)
		if _, err := form.Submit(cmd.Context(), incomeDraftFromFlags(cmd)); err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindIncome)
			return err
		}
		return nil
	},
}

var incomeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an income stream (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Incomes, id)
		if err != nil {
			return err
		}
		return confirmAndDelete(cmd, existing, "income")
	},
}

func init() {
	for _, c := range []*cobra.Command{incomeCreateCmd, incomeUpdateCmd} {
		c.Flags().String("name", "", "income name")
		c.Flags().String("value", "", "income value")
		c.Flags().String("type", "", "income type id")
		c.Flags().String("recurrence", "", "recurrence (e.g. Monthly)")
		c.Flags().String("start", "", "start date (YYYY-MM-DD)")
		c.Flags().String("end", "", "end date (YYYY-MM-DD)")
		c.Flags().Bool("shared", false, "mark the income as shared")
		c.Flags().String("owning", "", "owning percentage when shared")
	}
	incomeDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	incomeCmd.AddCommand(incomeListCmd, incomeCreateCmd, incomeUpdateCmd, incomeDeleteCmd)
	rootCmd.AddCommand(incomeCmd)
}
