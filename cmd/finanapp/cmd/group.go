package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage shared groups",
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		groups, err := deps.Groups.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("#%-4d %-24s %s\n", g.ID, g.GroupName, g.GroupType.GroupTypeName)
		}
		return nil
	},
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		draft := domain.GroupDraft{}
		draft.GroupName, _ = cmd.Flags().GetString("name")
		draft.GroupTypeID, _ = cmd.Flags().GetString("type")

		if err := deps.Modals.Open(cmd.Context(), ui.KindGroupSetup, nil); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindGroupSetup, deps.Groups, deps.Modals, deps.Notifier, 0)
		created, err := form.Submit(cmd.Context(), draft)
		if err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindGroupSetup)
			return err
		}
		fmt.Printf("Created group #%d\n", created.ID)
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a group (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Groups, id)
		if err != nil {
			return err
		}
		return confirmAndDelete(cmd, existing, "group")
	},
}

func init() {
	groupCreateCmd.Flags().String("name", "", "group name")
	groupCreateCmd.Flags().String("type", "", "group type id")
	groupDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	groupCmd.AddCommand(groupListCmd, groupCreateCmd, groupDeleteCmd)
	rootCmd.AddCommand(groupCmd)
}
