package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/repo"
)

// parseID converts a positional argument into a record identifier.
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%q is not a valid id", arg)
	}
	return uint(id), nil
}

// findRecord refreshes the repository and locates the record with the given id.
func findRecord[T repo.Record](cmd *cobra.Command, repository *repo.Repository[T], id uint) (T, error) {
	var zero T
	records, err := repository.FetchAll(cmd.Context())
	if err != nil {
		return zero, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, fmt.Errorf("no %s with id %d", repository.Kind(), id)
}

// confirmAndDelete drives the two-step delete gate: request, show the
// confirmation prompt, then confirm or cancel based on the answer. --yes
// answers the prompt up front.
func confirmAndDelete(cmd *cobra.Command, item repo.Record, kind string) error {
	ctx := cmd.Context()
	if err := deps.Deletes.RequestDelete(ctx, item, kind); err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		_, prompt, _ := deps.Deletes.Pending()
		fmt.Printf("%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			deps.Deletes.Cancel(ctx)
			return err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			deps.Deletes.Cancel(ctx)
			fmt.Println("Cancelled.")
			return nil
		}
	}
	return deps.Deletes.Confirm(ctx)
}
