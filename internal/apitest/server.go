// Package apitest provides an in-process FinanAPP backend for tests. It
// implements the REST surface the client consumes, issues real session
// cookies, and answers with the same payload shapes as the production API,
// so the client core can be exercised end to end without a network.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/finanapp/client-go/internal/domain"
)

const sessionName = "user_session"

type account struct {
	password string
	profile  domain.UserProfile
}

// Server is a fake FinanAPP backend bound to an httptest listener.
type Server struct {
	*httptest.Server
	echo *echo.Echo

	mu       sync.Mutex
	nextID   uint
	accounts map[string]*account

	assetTypes       []domain.AssetType
	incomeTypes      []domain.IncomeType
	expenditureTypes []domain.ExpenditureType
	taxTypes         []domain.TaxType
	groupTypes       []domain.GroupType

	assets     []domain.Asset
	incomes    []domain.Income
	expenses   []domain.Expense
	taxes      []domain.Tax
	categories []domain.Category
	groups     []domain.Group

	// failures maps a path to a queued one-shot error response.
	failures map[string][]queuedFailure
}

type queuedFailure struct {
	status  int
	message string
}

// NewServer starts a fake backend with reference data seeded.
func NewServer() *Server {
	s := &Server{
		nextID:   1,
		accounts: make(map[string]*account),
		failures: make(map[string][]queuedFailure),
		assetTypes: []domain.AssetType{
			{ID: 1, AssetTypeName: "Real Estate"},
			{ID: 2, AssetTypeName: "Vehicle"},
			{ID: 3, AssetTypeName: "Investment"},
		},
		incomeTypes: []domain.IncomeType{
			{ID: 1, IncomeTypeName: "Salary"},
			{ID: 2, IncomeTypeName: "Dividends"},
		},
		expenditureTypes: []domain.ExpenditureType{
			{ID: 1, ExpenditureTypeName: "Housing"},
			{ID: 2, ExpenditureTypeName: "Transport"},
		},
		taxTypes: []domain.TaxType{
			{ID: 1, TaxTypeName: "Property"},
			{ID: 2, TaxTypeName: "Income"},
		},
		groupTypes: []domain.GroupType{
			{ID: 1, GroupTypeName: "Family"},
			{ID: 2, GroupTypeName: "Household"},
		},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("apitest-secret"))))
	e.Use(s.failureMiddleware)

	e.POST("/api/login", s.login)
	e.POST("/api/logout", s.logout)
	e.POST("/api/register", s.register)
	e.GET("/api/auth-status", s.authStatus)

	authed := e.Group("", s.requireSession)
	authed.GET("/api/user", s.dashboard)
	authed.POST("/api/user-edit", s.userEdit)

	authed.POST("/api/assets", s.createAsset)
	authed.PUT("/api/assets/:id", s.updateAsset)
	authed.DELETE("/api/delete-assets/:id", s.deleteAsset)

	authed.POST("/api/income", s.createIncome)
	authed.PUT("/api/income/:id", s.updateIncome)
	authed.DELETE("/api/delete-income/:id", s.deleteIncome)

	authed.POST("/api/expense", s.createExpense)
	authed.PUT("/api/expense/:id", s.updateExpense)
	authed.DELETE("/api/delete-expense/:id", s.deleteExpense)

	authed.GET("/api/get-taxes", s.listTaxes)
	authed.POST("/api/create-taxes", s.createTax)
	authed.DELETE("/api/delete-tax/:id", s.deleteTax)

	authed.GET("/api/categories", s.listCategories)
	authed.POST("/api/create-category", s.createCategory)
	authed.DELETE("/api/delete-category/:id", s.deleteCategory)

	authed.POST("/api/create-group", s.createGroup)
	authed.DELETE("/api/delete-group/:id", s.deleteGroup)

	s.echo = e
	s.Server = httptest.NewServer(e)
	return s
}

// SeedUser registers an account directly, bypassing the register endpoint.
func (s *Server) SeedUser(email, password string, profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile.ID == 0 {
		profile.ID = s.allocIDLocked()
	}
	profile.EmailAddress = email
	s.accounts[email] = &account{password: password, profile: profile}
}

// FailNext queues a one-shot error response for the given path. The next
// request hitting that path receives the status and {"message": ...} body
// instead of normal handling.
func (s *Server) FailNext(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = append(s.failures[path], queuedFailure{status: status, message: message})
}

// AssetCount reports how many assets the backend currently stores.
func (s *Server) AssetCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.assets)
}

// failureMiddleware consumes the queued one-shot failures before normal routing.
func (s *Server) failureMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		queue := s.failures[c.Request().URL.Path]
		if len(queue) > 0 {
			failure := queue[0]
			s.failures[c.Request().URL.Path] = queue[1:]
			s.mu.Unlock()
			return c.JSON(failure.status, echo.Map{"message": failure.message})
		}
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) allocIDLocked() uint {
	id := s.nextID
	s.nextID++
	return id
}

// currentAccount resolves the session cookie to a seeded account.
func (s *Server) currentAccount(c echo.Context) *account {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	email, ok := sess.Values["email"].(string)
	if !ok || email == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[email]
}

func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.currentAccount(c) == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}
		return next(c)
	}
}
