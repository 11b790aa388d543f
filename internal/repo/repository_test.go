package repo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanapp/client-go/internal/api"
	"github.com/finanapp/client-go/internal/apitest"
	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/repo"
	"github.com/finanapp/client-go/internal/session"
)

type repoFixture struct {
	srv     *apitest.Server
	client  *api.Client
	session *session.Store
	dash    *repo.DashboardSource
}

func setupRepoTest(t *testing.T, login bool) *repoFixture {
	t.Helper()

	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	srv.SeedUser("jane@example.com", "password123", domain.UserProfile{
		FirstName: "Jane",
		LastName:  "Doe",
	})

	client, err := api.New(srv.URL)
	require.NoError(t, err)

	store := session.NewStore(client, nil)
	if login {
		_, err = store.Login(context.Background(), "jane@example.com", "password123")
		require.NoError(t, err)
	}
	store.Probe(context.Background())

	return &repoFixture{
		srv:     srv,
		client:  client,
		session: store,
		dash:    repo.NewDashboardSource(client, store),
	}
}

func (f *repoFixture) assets() *repo.Repository[domain.Asset] {
	return repo.New(repo.Assets(), f.client, f.session, f.dash)
}

func carDraft() domain.AssetDraft {
	return domain.AssetDraft{
		AssetName:           "Car",
		AssetValue:          "15000",
		AssetTypeID:         "2",
		AssetAquisitionDate: "2023-06-01",
	}
}

func TestFetchAllRequiresSession(t *testing.T) {
	fx := setupRepoTest(t, false)

	_, err := fx.assets().FetchAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("coerces string-bound numerics and refreshes the mirror", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		assets := fx.assets()

		created, err := assets.Create(ctx, carDraft())
		require.NoError(t, err)
		assert.NotZero(t, created.ID, "created record carries the server-assigned id")
		assert.Equal(t, "Car", created.AssetName)
		assert.Equal(t, float64(15000), created.AssetValue)
		assert.Equal(t, uint(2), created.AssetTypeID)
		assert.Equal(t, "Vehicle", created.AssetType.AssetTypeName)

		records := assets.Records()
		require.Len(t, records, 1)
		assert.Equal(t, created.ID, records[0].ID)
	})

	t.Run("rejects a non-numeric value before transmission", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		draft := carDraft()
		draft.AssetValue = "fifteen"

		_, err := fx.assets().Create(ctx, draft)
		require.Error(t, err)
		assert.ErrorContains(t, err, "not numeric")
		assert.Zero(t, fx.srv.AssetCount())
	})

	t.Run("surfaces a refresh failure but keeps the created record", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		fx.srv.FailNext("/api/user", 500, "aggregate exploded")

		created, err := fx.assets().Create(ctx, carDraft())
		require.Error(t, err)
		assert.ErrorContains(t, err, "refresh failed")
		assert.NotZero(t, created.ID)
		assert.Equal(t, 1, fx.srv.AssetCount())
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the record and refreshes", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		assets := fx.assets()
		created, err := assets.Create(ctx, carDraft())
		require.NoError(t, err)

		draft := carDraft()
		draft.AssetName = "Family Car"
		draft.AssetValue = "12500"
		updated, err := assets.Update(ctx, created.ID, draft)
		require.NoError(t, err)
		assert.Equal(t, "Family Car", updated.AssetName)
		assert.Equal(t, float64(12500), updated.AssetValue)

		records := assets.Records()
		require.Len(t, records, 1)
		assert.Equal(t, "Family Car", records[0].AssetName)
	})

	t.Run("rejects a zero id", func(t *testing.T) {
		fx := setupRepoTest(t, true)

		_, err := fx.assets().Update(ctx, 0, carDraft())
		assert.ErrorIs(t, err, domain.ErrMissingID)
	})

	t.Run("carries income dates and ownership through an update", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		incomes := repo.New(repo.Incomes(), fx.client, fx.session, fx.dash)

		created, err := incomes.Create(ctx, domain.IncomeDraft{
			IncomeName:       "Salary",
			IncomeValue:      "4200",
			IncomeTypeID:     "1",
			IncomeRecurrence: "Monthly",
			IncomeStartDate:  "2024-01-01",
		})
		require.NoError(t, err)

		updated, err := incomes.Update(ctx, created.ID, domain.IncomeDraft{
			IncomeName:       "Salary",
			IncomeValue:      "4200",
			IncomeTypeID:     "1",
			IncomeRecurrence: "Monthly",
			IncomeStartDate:  "2024-02-01",
			IncomeEndDate:    "2024-12-31",
			SharedIncome:     true,
			OwningPercentage: "60",
		})
		require.NoError(t, err)
		require.NotNil(t, updated.IncomeStartDate)
		assert.Equal(t, "2024-02-01", updated.IncomeStartDate.Format("2006-01-02"))
		require.NotNil(t, updated.IncomeEndDate)
		assert.Equal(t, "2024-12-31", updated.IncomeEndDate.Format("2006-01-02"))
		assert.Equal(t, float64(60), updated.OwningPercentage)
		assert.True(t, updated.SharedIncome)
	})

	t.Run("refuses resources without an update route", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		taxes := repo.New(repo.Taxes(), fx.client, fx.session, fx.dash)

		_, err := taxes.Update(ctx, 1, domain.TaxDraft{TaxName: "Council"})
		assert.ErrorIs(t, err, domain.ErrUpdateNotSupported)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and rebuilds the mirror", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		assets := fx.assets()
		created, err := assets.Create(ctx, carDraft())
		require.NoError(t, err)

		require.NoError(t, assets.Remove(ctx, created.ID))
		assert.Zero(t, fx.srv.AssetCount())
		assert.Empty(t, assets.Records())
	})

	t.Run("rejects a zero id without touching the backend", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		assets := fx.assets()
		_, err := assets.Create(ctx, carDraft())
		require.NoError(t, err)

		assert.ErrorIs(t, assets.Remove(ctx, 0), domain.ErrMissingID)
		assert.Equal(t, 1, fx.srv.AssetCount())
	})

	t.Run("keeps the mirror intact when the delete fails", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		assets := fx.assets()
		created, err := assets.Create(ctx, carDraft())
		require.NoError(t, err)

		fx.srv.FailNext(fmt.Sprintf("/api/delete-assets/%d", created.ID), 500, "database unavailable")
		err = assets.Remove(ctx, created.ID)
		require.Error(t, err)
		require.Len(t, assets.Records(), 1)
		assert.Equal(t, 1, fx.srv.AssetCount())
	})
}

func TestSessionExpiresOnUnauthorized(t *testing.T) {
	ctx := context.Background()

	t.Run("a 401 from the aggregate resets the session", func(t *testing.T) {
		fx := setupRepoTest(t, true)
		assets := fx.assets()
		_, err := assets.FetchAll(ctx)
		require.NoError(t, err)

		fx.srv.FailNext("/api/user", 401, "Unauthorized")
		_, err = assets.FetchAll(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, api.ErrUnauthorized)

		state := fx.session.State()
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.User)

		// Follow-on calls now refuse locally, without a round trip.
		_, err = assets.FetchAll(ctx)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("a 401 from a mutation resets the session", func(t *testing.T) {
		fx := setupRepoTest(t, true)

		fx.srv.FailNext("/api/assets", 401, "Unauthorized")
		_, err := fx.assets().Create(ctx, carDraft())
		require.Error(t, err)
		assert.ErrorIs(t, err, api.ErrUnauthorized)
		assert.False(t, fx.session.Ready())
	})

	t.Run("other failures leave the session authenticated", func(t *testing.T) {
		fx := setupRepoTest(t, true)

		fx.srv.FailNext("/api/user", 500, "database unavailable")
		_, err := fx.assets().FetchAll(ctx)
		require.Error(t, err)
		assert.True(t, fx.session.Ready())
	})
}

func TestCategoriesUseOwnListEndpoint(t *testing.T) {
	ctx := context.Background()
	fx := setupRepoTest(t, true)
	categories := repo.New(repo.Categories(), fx.client, fx.session, fx.dash)

	created, err := categories.Create(ctx, domain.CategoryDraft{
		CategoryName: "Groceries",
		CategoryKind: "expense",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	records, err := categories.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Groceries", records[0].CategoryName)

	// Categories never ride along in the dashboard aggregate.
	dash, err := fx.dash.Fetch(ctx)
	require.NoError(t, err)
	assert.NotNil(t, dash)
}

func TestDashboardAggregateHydratesEveryFamily(t *testing.T) {
	ctx := context.Background()
	fx := setupRepoTest(t, true)
	assets := fx.assets()
	incomes := repo.New(repo.Incomes(), fx.client, fx.session, fx.dash)

	_, err := assets.Create(ctx, carDraft())
	require.NoError(t, err)
	_, err = incomes.Create(ctx, domain.IncomeDraft{
		IncomeName:       "Salary",
		IncomeValue:      "4200.50",
		IncomeTypeID:     "1",
		IncomeRecurrence: "Monthly",
		IncomeStartDate:  "2024-01-01",
	})
	require.NoError(t, err)

	dash, err := fx.dash.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, dash.Assets, 1)
	require.Len(t, dash.Incomes, 1)
	assert.Equal(t, 4200.50, dash.Incomes[0].IncomeValue)
	assert.Equal(t, "Salary", dash.Incomes[0].IncomeType.IncomeTypeName)
}
