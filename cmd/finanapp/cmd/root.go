package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/app"
	"github.com/finanapp/client-go/internal/config"
	"github.com/finanapp/client-go/internal/logging"
	"github.com/finanapp/client-go/internal/pubsub"
	"github.com/finanapp/client-go/internal/ui"
)

// deps is the wired client core, shared by every subcommand.
var deps *app.Dependencies

var rootCmd = &cobra.Command{
	Use:   "finanapp",
	Short: "Terminal client for the FinanAPP personal-finance tracker",
	Long: `finanapp drives the FinanAPP backend from the terminal: log in, inspect
your dashboard, and manage assets, income, expenses, taxes, categories and
shared groups.

Set FINANAPP_API_URL to the backend root. The session cookie is persisted
between runs so you stay logged in until you log out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		logging.New()
		cfg := config.New()

		var err error
		deps, err = app.New(cfg)
		if err != nil {
			return err
		}
		if err := deps.API.LoadSession(cfg.SessionFile); err != nil {
			return err
		}

		// Surface the transient notifications the core publishes, the way
		// the web app showed its toasts.
		err = deps.Subscriber.Subscribe(cmd.Context(), pubsub.TopicNotifications, func(ctx context.Context, msg pubsub.Message) error {
			var note ui.Notification
			if err := json.Unmarshal(msg.Payload, &note); err != nil {
				return err
			}
			switch note.Level {
			case ui.LevelError:
				fmt.Fprintf(os.Stderr, "✗ %s\n", note.Text)
			default:
				fmt.Printf("✓ %s\n", note.Text)
			}
			return nil
		})
		if err != nil {
			return err
		}

		deps.Session.Probe(cmd.Context())
		return nil
	},
	// Skipped for commands (version) that never wired the core.
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if deps == nil {
			return
		}
		// Let the in-memory bus drain before the process exits, otherwise
		// the last notification can be lost.
		time.Sleep(50 * time.Millisecond)
		_ = deps.Close(cmd.Context())
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// requireLogin fails fast when the session did not settle authenticated.
// This is the command-line rendition of the redirect every protected view
// performs the first time loading turns false while unauthenticated.
func requireLogin() error {
	if !deps.Session.Ready() {
		return fmt.Errorf("not logged in; run \"finanapp login\" first")
	}
	return nil
}
