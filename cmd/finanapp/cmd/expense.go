package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenditures",
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your expenditures",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		expenses, err := deps.Expenses.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range expenses {
			fmt.Printf("#%-4d %-24s %-14s %s / %s%s\n",
				e.ID, e.ExpenditureName, e.Expenditure.ExpenditureTypeName,
				money.Sprintf("%.2f", e.ExpenditureValue), e.ExpenditureRecurrence, sharedTag(e.SharedExpenditure))
		}
		return nil
	},
}

func expenseDraftFromFlags(cmd *cobra.Command) domain.ExpenseDraft {
	draft := domain.ExpenseDraft{}
	draft.ExpenditureName, _ = cmd.Flags().GetString("name")
	draft.ExpenditureValue, _ = cmd.Flags().GetString("value")
	draft.ExpenditureID, _ = cmd.Flags().GetString("type")
	draft.ExpenditureRecurrence, _ = cmd.Flags().GetString("recurrence")
	draft.ExpenditureStartDate, _ = cmd.Flags().GetString("start")
	draft.ExpenditureEndDate, _ = cmd.Flags().GetString("end")
	draft.SharedExpenditure, _ = cmd.Flags().GetBool("shared")
	return draft
}

var expenseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an expenditure",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if err := deps.Modals.Open(cmd.Context(), ui.KindExpense, nil); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindExpense, deps.Expenses, deps.Modals, deps.Notifier, 0)
		created, err := form.Submit(cmd.Context(), expenseDraftFromFlags(cmd))
		if err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindExpense)
			return err
		}
		fmt.Printf("Created expense #%d\n", created.ID)
		return nil
	},
}

var expenseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing expenditure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Expenses, id)
		if err != nil {
			return err
		}
		if err := deps.Modals.Open(cmd.Context(), ui.KindExpense, existing); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindExpense, deps.Expenses, deps.Modals, deps.Notifier, id)
		if _, err := form.Submit(cmd.Context(), expenseDraftFromFlags(cmd)); err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindExpense)
			return err
		}
		return nil
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expenditure (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Expenses, id)
		if err != nil {
			return err
		}
		return confirmAndDelete(cmd, existing, "expense")
	},
}

func init() {
	for _, c := range []*cobra.Command{expenseCreateCmd, expenseUpdateCmd} {
		c.Flags().String("name", "", "expenditure name")
		c.Flags().String("value", "", "expenditure value")
		c.Flags().String("type", "", "expenditure type id")
		c.Flags().String("recurrence", "", "recurrence (e.g. Monthly)")
		c.Flags().String("start", "", "start date (YYYY-MM-DD)")
		c.Flags().String("end", "", "end date (YYYY-MM-DD)")
		c.Flags().Bool("shared", false, "mark the expenditure as shared")
	}
	expenseDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	expenseCmd.AddCommand(expenseListCmd, expenseCreateCmd, expenseUpdateCmd, expenseDeleteCmd)
	rootCmd.AddCommand(expenseCmd)
}
