package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/ui"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage assets",
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		assets, err := deps.Assets.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range assets {
			fmt.Printf("#%-4d %-24s %-14s %s%s  taxes: %s\n",
				a.ID, a.AssetName, a.AssetType.AssetTypeName,
				money.Sprintf("%.2f", a.AssetValue), sharedTag(a.SharedAsset), taxNames(a.UserAssetTaxes))
		}
		return nil
	},
}

func assetDraftFromFlags(cmd *cobra.Command) domain.AssetDraft {
	draft := domain.AssetDraft{}
	draft.AssetName, _ = cmd.Flags().GetString("name")
	draft.AssetValue, _ = cmd.Flags().GetString("value")
	draft.AssetTypeID, _ = cmd.Flags().GetString("type")
	draft.AssetAquisitionDate, _ = cmd.Flags().GetString("acquired")
	draft.SharedAsset, _ = cmd.Flags().GetBool("shared")
	return draft
}

var assetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if err := deps.Modals.Open(cmd.Context(), ui.KindAsset, nil); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindAsset, deps.Assets, deps.Modals, deps.Notifier, 0)
		created, err := form.Submit(cmd.Context(), assetDraftFromFlags(cmd))
		if err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindAsset)
			return err
		}
		fmt.Printf("Created asset #%d\n", created.ID)
		return nil
	},
}

var assetUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Assets, id)
		if err != nil {
			return err
		}
		if err := deps.Modals.Open(cmd.Context(), ui.KindAsset, existing); err != nil {
			return err
		}
		form := ui.NewForm(ui.KindAsset, deps.Assets, deps.Modals, deps.Notifier, id)
		if _, err := form.Submit(cmd.Context(), assetDraftFromFlags(cmd)); err != nil {
			deps.Modals.Close(cmd.Context(), ui.KindAsset)
			return err
		}
		return nil
	},
}

var assetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an asset (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		existing, err := findRecord(cmd, deps.Assets, id)
		if err != nil {
			return err
		}
		return confirmAndDelete(cmd, existing, "asset")
	},
}

func init() {
	for _, c := range []*cobra.Command{assetCreateCmd, assetUpdateCmd} {
		c.Flags().String("name", "", "asset name")
		c.Flags().String("value", "", "asset value")
		c.Flags().String("type", "", "asset type id")
		c.Flags().String("acquired", "", "acquisition date (YYYY-MM-DD)")
		c.Flags().Bool("shared", false, "mark the asset as shared")
	}
	assetDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	assetCmd.AddCommand(assetListCmd, assetCreateCmd, assetUpdateCmd, assetDeleteCmd)
	rootCmd.AddCommand(assetCmd)
}
