package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/finanapp/client-go/internal/domain"
)

// money renders amounts with grouping, e.g. 15,000.00.
var money = message.NewPrinter(language.English)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Fetch and display the full dashboard aggregate",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		dash, err := deps.Dashboard.Fetch(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Dashboard for %s\n\n", dash.User.FullName())

		fmt.Printf("Assets (%d)\n", len(dash.Assets))
		for _, a := range dash.Assets {
			fmt.Printf("  #%-4d %-24s %-14s %s%s\n",
				a.ID, a.AssetName, a.AssetType.AssetTypeName,
				money.Sprintf("%.2f", a.AssetValue), sharedTag(a.SharedAsset))
		}

		fmt.Printf("\nIncome (%d)\n", len(dash.Incomes))
		for _, i := range dash.Incomes {
			fmt.Printf("  #%-4d %-24s %-14s %s / %s%s\n",
				i.ID, i.IncomeName, i.IncomeType.IncomeTypeName,
				money.Sprintf("%.2f", i.IncomeValue), i.IncomeRecurrence, sharedTag(i.SharedIncome))
		}

		fmt.Printf("\nExpenses (%d)\n", len(dash.Expenses))
		for _, e := range dash.Expenses {
			fmt.Printf("  #%-4d %-24s %-14s %s / %s%s\n",
				e.ID, e.ExpenditureName, e.Expenditure.ExpenditureTypeName,
				money.Sprintf("%.2f", e.ExpenditureValue), e.ExpenditureRecurrence, sharedTag(e.SharedExpenditure))
		}

		fmt.Printf("\nTaxes (%d)\n", len(dash.Taxes))
		for _, t := range dash.Taxes {
			fmt.Printf("  #%-4d %-24s %5.2f%% (%s)\n", t.ID, t.TaxName, t.TaxPercentage, t.TaxApplicableCycle)
		}

		fmt.Printf("\nGroups (%d)\n", len(dash.Groups))
		for _, g := range dash.Groups {
			fmt.Printf("  #%-4d %-24s %s\n", g.ID, g.GroupName, g.GroupType.GroupTypeName)
		}
		return nil
	},
}

func sharedTag(shared bool) string {
	if shared {
		return "  [shared]"
	}
	return ""
}

func taxNames(taxes []domain.TaxAssociation) string {
	if len(taxes) == 0 {
		return "No Taxes"
	}
	out := ""
	for i, t := range taxes {
		if i > 0 {
			out += ", "
		}
		out += t.TaxName
	}
	return out
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
