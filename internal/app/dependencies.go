package app

import (
	"context"

	"github.com/finanapp/client-go/internal/api"
	"github.com/finanapp/client-go/internal/config"
	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/pubsub"
	"github.com/finanapp/client-go/internal/repo"
	"github.com/finanapp/client-go/internal/session"
	"github.com/finanapp/client-go/internal/ui"
)

// Dependencies holds the core services of the client, wired once at startup
// and passed to whatever frontend drives them.
type Dependencies struct {
	Config     *config.Config
	API        *api.Client
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Session    *session.Store
	Dashboard  *repo.DashboardSource

	Assets     *repo.Repository[domain.Asset]
	Incomes    *repo.Repository[domain.Income]
	Expenses   *repo.Repository[domain.Expense]
	Taxes      *repo.Repository[domain.Tax]
	Categories *repo.Repository[domain.Category]
	Groups     *repo.Repository[domain.Group]

	Modals   *ui.Coordinator
	Deletes  *ui.DeleteFlow
	Notifier *ui.Notifier

	bus *pubsub.WatermillBridge
}

// New wires the full dependency graph for the given configuration.
func New(cfg *config.Config) (*Dependencies, error) {
	client, err := api.New(cfg.APIBaseURL, api.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	return Wire(cfg, client), nil
}

// Wire builds the graph around an existing API client. Tests use this to
// point the whole core at an in-process backend.
func Wire(cfg *config.Config, client *api.Client) *Dependencies {
	bus := pubsub.NewWatermillBridge()
	sess := session.NewStore(client, bus)
	dash := repo.NewDashboardSource(client, sess)

	deps := &Dependencies{
		Config:     cfg,
		API:        client,
		Publisher:  bus,
		Subscriber: bus,
		Session:    sess,
		Dashboard:  dash,

		Assets:     repo.New(repo.Assets(), client, sess, dash),
		Incomes:    repo.New(repo.Incomes(), client, sess, dash),
		Expenses:   repo.New(repo.Expenses(), client, sess, dash),
		Taxes:      repo.New(repo.Taxes(), client, sess, dash),
		Categories: repo.New(repo.Categories(), client, sess, dash),
		Groups:     repo.New(repo.Groups(), client, sess, dash),

		bus: bus,
	}

	deps.Notifier = ui.NewNotifier(bus)
	deps.Modals = ui.NewCoordinator(bus)
	deps.Deletes = ui.NewDeleteFlow(deps.Modals, deps.Notifier)

	deps.Deletes.RegisterRemover("asset", deps.Assets.Remove)
	deps.Deletes.RegisterRemover("income", deps.Incomes.Remove)
	deps.Deletes.RegisterRemover("expense", deps.Expenses.Remove)
	deps.Deletes.RegisterRemover("tax", deps.Taxes.Remove)
	deps.Deletes.RegisterRemover("category", deps.Categories.Remove)
	deps.Deletes.RegisterRemover("group", deps.Groups.Remove)

	return deps
}

// Close releases the event bus.
func (d *Dependencies) Close(ctx context.Context) error {
	return d.bus.Close()
}
