package apitest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finanapp/client-go/internal/domain"
)

func (s *Server) dashboard(c echo.Context) error {
	acct := s.currentAccount(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	dash := domain.Dashboard{
		User:       acct.profile,
		Assets:     filterByUser(s.assets, acct.profile.ID, func(a domain.Asset) uint { return a.UserID }),
		AssetTypes: s.assetTypes,
		Incomes:    filterByUser(s.incomes, acct.profile.ID, func(i domain.Income) uint { return i.UserID }),
		Expenses:   filterByUser(s.expenses, acct.profile.ID, func(e domain.Expense) uint { return e.UserID }),
		Taxes:      filterByUser(s.taxes, acct.profile.ID, func(t domain.Tax) uint { return t.UserID }),
		Groups:     filterByUser(s.groups, acct.profile.ID, func(g domain.Group) uint { return g.UserID }),
	}
	return c.JSON(http.StatusOK, dash)
}

func filterByUser[T any](records []T, userID uint, owner func(T) uint) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if owner(r) == userID {
			out = append(out, r)
		}
	}
	return out
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// deleteBody is the audit body the backend requires on DELETE calls: the
// target identifier repeated, and checked against the path.
type deleteBody struct {
	ItemID uint `json:"itemId"`
}

func (s *Server) checkDelete(c echo.Context) (uint, bool) {
	id, err := pathID(c)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid identifier"})
		return 0, false
	}
	var body deleteBody
	if err := c.Bind(&body); err != nil || body.ItemID != id {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "Body identifier does not match path"})
		return 0, false
	}
	return id, true
}

// --- assets ---

type assetPayload struct {
	AssetName           string                  `json:"AssetName"`
	AssetValue          float64                 `json:"AssetValue"`
	AssetTypeID         float64                 `json:"AssetTypeID"`
	AssetAquisitionDate string                  `json:"AssetAquisitionDate"`
	SharedAsset         bool                    `json:"SharedAsset"`
	UserAssetTaxes      []domain.TaxAssociation `json:"UserAssetTaxes"`
	UserID              uint                    `json:"userID"`
}

func (s *Server) createAsset(c echo.Context) error {
	acct := s.currentAccount(c)
	var req assetPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}
	if req.AssetName == "" || req.AssetValue == 0 || req.AssetTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Required fields not filled"})
	}
	acquired, err := time.Parse("2006-01-02", req.AssetAquisitionDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Date format"})
	}

	s.mu.Lock()
	asset := domain.Asset{
		ID:                  s.allocIDLocked(),
		UserID:              acct.profile.ID,
		AssetName:           req.AssetName,
		AssetTypeID:         uint(req.AssetTypeID),
		AssetType:           s.assetTypeLocked(uint(req.AssetTypeID)),
		AssetValue:          req.AssetValue,
		AssetAquisitionDate: &acquired,
		SharedAsset:         req.SharedAsset,
		UserAssetTaxes:      req.UserAssetTaxes,
	}
	s.assets = append(s.assets, asset)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Asset created successfully!", "userAsset": asset})
}

func (s *Server) updateAsset(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid identifier"})
	}
	var req assetPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID != id {
			continue
		}
		acquired, err := time.Parse("2006-01-02", req.AssetAquisitionDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Date format"})
		}
		s.assets[i].AssetName = req.AssetName
		s.assets[i].AssetValue = req.AssetValue
		s.assets[i].AssetTypeID = uint(req.AssetTypeID)
		s.assets[i].AssetType = s.assetTypeLocked(uint(req.AssetTypeID))
		s.assets[i].AssetAquisitionDate = &acquired
		s.assets[i].SharedAsset = req.SharedAsset
		s.assets[i].UserAssetTaxes = req.UserAssetTaxes
		return c.JSON(http.StatusOK, echo.Map{"message": "Asset updated successfully!", "userAsset": s.assets[i]})
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Asset not found"})
}

func (s *Server) deleteAsset(c echo.Context) error {
	id, ok := s.checkDelete(c)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"message": "Asset deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Asset not found"})
}

func (s *Server) assetTypeLocked(id uint) domain.AssetType {
	for _, t := range s.assetTypes {
		if t.ID == id {
			return t
		}
	}
	return domain.AssetType{ID: id}
}

// --- incomes ---

type incomePayload struct {
	IncomeName       string                  `json:"IncomeName"`
	IncomeValue      float64                 `json:"IncomeValue"`
	IncomeTypeID     float64                 `json:"IncomeTypeID"`
	IncomeRecurrence string                  `json:"IncomeRecurrence"`
	IncomeStartDate  string                  `json:"IncomeStartDate"`
	IncomeEndDate    string                  `json:"IncomeEndDate"`
	SharedIncome     bool                    `json:"SharedIncome"`
	OwningPercentage float64                 `json:"OwningPercentage"`
	UserTaxes        []domain.TaxAssociation `json:"UserTaxes"`
	UserID           uint                    `json:"userID"`
}

func (s *Server) createIncome(c echo.Context) error {
	acct := s.currentAccount(c)
	var req incomePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}
	if req.IncomeName == "" || req.IncomeValue == 0 || req.IncomeTypeID == 0 || req.IncomeRecurrence == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Required fields not filled"})
	}
	start, err := time.Parse("2006-01-02", req.IncomeStartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Date format"})
	}
	owning := req.OwningPercentage
	if owning == 0 {
		owning = 100
	}

	s.mu.Lock()
	income := domain.Income{
		ID:               s.allocIDLocked(),
		UserID:           acct.profile.ID,
		IncomeName:       req.IncomeName,
		IncomeTypeID:     uint(req.IncomeTypeID),
		IncomeType:       s.incomeTypeLocked(uint(req.IncomeTypeID)),
		IncomeValue:      req.IncomeValue,
		IncomeRecurrence: req.IncomeRecurrence,
		IncomeStartDate:  &start,
		SharedIncome:     req.SharedIncome,
		OwningPercentage: owning,
		UserTaxes:        req.UserTaxes,
	}
	if end, err := time.Parse("2006-01-02", req.IncomeEndDate); err == nil {
		income.IncomeEndDate = &end
	}
	s.incomes = append(s.incomes, income)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Income created successfully!", "userIncome": income})
}

func (s *Server) updateIncome(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid identifier"})
	}
	var req incomePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.incomes {
		if s.incomes[i].ID != id {
			continue
		}
		start, err := time.Parse("2006-01-02", req.IncomeStartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Date format"})
		}
		owning := req.OwningPercentage
		if owning == 0 {
			owning = 100
		}
		s.incomes[i].IncomeName = req.IncomeName
		s.incomes[i].IncomeValue = req.IncomeValue
		s.incomes[i].IncomeTypeID = uint(req.IncomeTypeID)
		s.incomes[i].IncomeType = s.incomeTypeLocked(uint(req.IncomeTypeID))
		s.incomes[i].IncomeRecurrence = req.IncomeRecurrence
		s.incomes[i].IncomeStartDate = &start
		s.incomes[i].IncomeEndDate = nil
		if end, err := time.Parse("2006-01-02", req.IncomeEndDate); err == nil {
			s.incomes[i].IncomeEndDate = &end
		}
		s.incomes[i].SharedIncome = req.SharedIncome
		s.incomes[i].OwningPercentage = owning
		s.incomes[i].UserTaxes = req.UserTaxes
		return c.JSON(http.StatusOK, echo.Map{"message": "Income updated successfully!", "userIncome": s.incomes[i]})
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Income not found"})
}

func (s *Server) deleteIncome(c echo.Context) error {
	id, ok := s.checkDelete(c)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.incomes {
		if s.incomes[i].ID == id {
			s.incomes = append(s.incomes[:i], s.incomes[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"message": "Income deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Income not found"})
}

func (s *Server) incomeTypeLocked(id uint) domain.IncomeType {
	for _, t := range s.incomeTypes {
		if t.ID == id {
			return t
		}
	}
	return domain.IncomeType{ID: id}
}

// --- expenses ---

type expensePayload struct {
	ExpenditureName       string  `json:"ExpenditureName"`
	ExpenditureValue      float64 `json:"ExpenditureValue"`
	ExpenditureID         float64 `json:"ExpenditureID"`
	ExpenditureRecurrence string  `json:"ExpenditureRecurrence"`
	ExpenditureStartDate  string  `json:"ExpenditureStartDate"`
	ExpenditureEndDate    string  `json:"ExpenditureEndDate"`
	SharedExpenditure     bool    `json:"SharedExpenditure"`
	UserID                uint    `json:"userID"`
}

func (s *Server) createExpense(c echo.Context) error {
	acct := s.currentAccount(c)
	var req expensePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}
	if req.ExpenditureName == "" || req.ExpenditureValue == 0 || req.ExpenditureID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Required fields not filled"})
	}
	start, err := time.Parse("2006-01-02", req.ExpenditureStartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Date format"})
	}

	s.mu.Lock()
	expense := domain.Expense{
		ID:                    s.allocIDLocked(),
		UserID:                acct.profile.ID,
		ExpenditureName:       req.ExpenditureName,
		ExpenditureID:         uint(req.ExpenditureID),
		Expenditure:           s.expenditureTypeLocked(uint(req.ExpenditureID)),
		ExpenditureValue:      req.ExpenditureValue,
		ExpenditureStartDate:  &start,
		ExpenditureRecurrence: req.ExpenditureRecurrence,
		SharedExpenditure:     req.SharedExpenditure,
	}
	if end, err := time.Parse("2006-01-02", req.ExpenditureEndDate); err == nil {
		expense.ExpenditureEndDate = &end
	}
	s.expenses = append(s.expenses, expense)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Expense created successfully!", "userExpense": expense})
}

func (s *Server) updateExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid identifier"})
	}
	var req expensePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		start, err := time.Parse("2006-01-02", req.ExpenditureStartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Date format"})
		}
		s.expenses[i].ExpenditureName = req.ExpenditureName
		s.expenses[i].ExpenditureValue = req.ExpenditureValue
		s.expenses[i].ExpenditureID = uint(req.ExpenditureID)
		s.expenses[i].Expenditure = s.expenditureTypeLocked(uint(req.ExpenditureID))
		s.expenses[i].ExpenditureRecurrence = req.ExpenditureRecurrence
		s.expenses[i].ExpenditureStartDate = &start
		s.expenses[i].ExpenditureEndDate = nil
		if end, err := time.Parse("2006-01-02", req.ExpenditureEndDate); err == nil {
			s.expenses[i].ExpenditureEndDate = &end
		}
		s.expenses[i].SharedExpenditure = req.SharedExpenditure
		return c.JSON(http.StatusOK, echo.Map{"message": "Expense updated successfully!", "userExpense": s.expenses[i]})
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Expense not found"})
}

func (s *Server) deleteExpense(c echo.Context) error {
	id, ok := s.checkDelete(c)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"message": "Expense deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Expense not found"})
}

func (s *Server) expenditureTypeLocked(id uint) domain.ExpenditureType {
	for _, t := range s.expenditureTypes {
		if t.ID == id {
			return t
		}
	}
	return domain.ExpenditureType{ID: id}
}

// --- taxes ---

// listTaxes serves the tax setup dialog: reference types plus the user's taxes.
func (s *Server) listTaxes(c echo.Context) error {
	acct := s.currentAccount(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{
		"taxTypes": s.taxTypes,
		"taxes":    filterByUser(s.taxes, acct.profile.ID, func(t domain.Tax) uint { return t.UserID }),
	})
}

type taxPayload struct {
	TaxName            string  `json:"TaxName"`
	TaxTypeID          float64 `json:"TaxTypeID"`
	TaxPercentage      float64 `json:"TaxPercentage"`
	TaxApplicableCycle string  `json:"TaxApplicableCycle"`
	UserID             uint    `json:"userID"`
}

func (s *Server) createTax(c echo.Context) error {
	acct := s.currentAccount(c)
	var req taxPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}
	if req.TaxName == "" || req.TaxTypeID == 0 || req.TaxPercentage == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Required fields not filled"})
	}

	s.mu.Lock()
	tax := domain.Tax{
		ID:                 s.allocIDLocked(),
		UserID:             acct.profile.ID,
		TaxName:            req.TaxName,
		TaxTypeID:          uint(req.TaxTypeID),
		TaxPercentage:      req.TaxPercentage,
		TaxApplicableCycle: req.TaxApplicableCycle,
	}
	for _, t := range s.taxTypes {
		if t.ID == tax.TaxTypeID {
			tax.TaxType = t
		}
	}
	s.taxes = append(s.taxes, tax)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Tax created successfully!", "taxes": tax})
}

func (s *Server) deleteTax(c echo.Context) error {
	id, ok := s.checkDelete(c)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.taxes {
		if s.taxes[i].ID == id {
			s.taxes = append(s.taxes[:i], s.taxes[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"message": "Tax deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Tax not found"})
}

// --- categories ---

func (s *Server) listCategories(c echo.Context) error {
	acct := s.currentAccount(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{
		"categories": filterByUser(s.categories, acct.profile.ID, func(cat domain.Category) uint { return cat.UserID }),
	})
}

func (s *Server) createCategory(c echo.Context) error {
	acct := s.currentAccount(c)
	var req struct {
		CategoryName string `json:"CategoryName"`
		CategoryKind string `json:"CategoryKind"`
		UserID       uint   `json:"userID"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}
	if req.CategoryName == "" || req.CategoryKind == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Required fields not filled"})
	}

	s.mu.Lock()
	cat := domain.Category{
		ID:           s.allocIDLocked(),
		UserID:       acct.profile.ID,
		CategoryName: req.CategoryName,
		CategoryKind: req.CategoryKind,
	}
	s.categories = append(s.categories, cat)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Category created successfully!", "category": cat})
}

func (s *Server) deleteCategory(c echo.Context) error {
	id, ok := s.checkDelete(c)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Category not found"})
}

// --- groups ---

func (s *Server) createGroup(c echo.Context) error {
	acct := s.currentAccount(c)
	var req struct {
		GroupName   string  `json:"GroupName"`
		GroupTypeID float64 `json:"GroupTypeID"`
		UserID      uint    `json:"userID"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error decoding JSON"})
	}
	if req.GroupName == "" || req.GroupTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Required fields not filled"})
	}

	s.mu.Lock()
	group := domain.Group{
		ID:          s.allocIDLocked(),
		UserID:      acct.profile.ID,
		GroupName:   req.GroupName,
		GroupTypeID: uint(req.GroupTypeID),
	}
	for _, t := range s.groupTypes {
		if t.ID == group.GroupTypeID {
			group.GroupType = t
		}
	}
	s.groups = append(s.groups, group)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Group created successfully!", "userGroup": group})
}

func (s *Server) deleteGroup(c echo.Context) error {
	id, ok := s.checkDelete(c)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		if s.groups[i].ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"message": "Group deleted"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Group not found"})
}
