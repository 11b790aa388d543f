package domain

import "time"

// TaxAssociation links an asset or income record to one of the user's taxes.
// The name and percentage are denormalized onto the association so lists can
// render them without an extra round trip.
type TaxAssociation struct {
	TaxID         uint    `json:"TaxID"`
	TaxName       string  `json:"TaxName"`
	TaxPercentage float64 `json:"TaxPercentage"`
}

// AssetType is reference data resolved from an asset's type foreign key.
type AssetType struct {
	ID            uint   `json:"ID"`
	AssetTypeName string `json:"AssetTypeName"`
}

// Asset is a single owned asset as returned by the backend.
type Asset struct {
	ID                  uint             `json:"ID"`
	UserID              uint             `json:"UserID"`
	AssetName           string           `json:"AssetName"`
	AssetTypeID         uint             `json:"AssetTypeID"`
	AssetType           AssetType        `json:"AssetType"`
	AssetValue          float64          `json:"AssetValue"`
	AssetAquisitionDate *time.Time       `json:"AssetAquisitionDate,omitempty"`
	SharedAsset         bool             `json:"SharedAsset"`
	UserAssetTaxes      []TaxAssociation `json:"UserAssetTaxes,omitempty"`
}

func (a Asset) RecordID() uint { return a.ID }
func (a Asset) Label() string  { return a.AssetName }

// IncomeType is reference data resolved from an income's type foreign key.
type IncomeType struct {
	ID             uint   `json:"ID"`
	IncomeTypeName string `json:"IncomeTypeName"`
}

// Income is a single income stream.
type Income struct {
	ID               uint             `json:"ID"`
	UserID           uint             `json:"UserID"`
	IncomeName       string           `json:"IncomeName"`
	IncomeTypeID     uint             `json:"IncomeTypeID"`
	IncomeType       IncomeType       `json:"IncomeType"`
	IncomeValue      float64          `json:"IncomeValue"`
	IncomeRecurrence string           `json:"IncomeRecurrence"`
	IncomeStartDate  *time.Time       `json:"IncomeStartDate,omitempty"`
	IncomeEndDate    *time.Time       `json:"IncomeEndDate,omitempty"`
	SharedIncome     bool             `json:"SharedIncome"`
	OwningPercentage float64          `json:"OwningPercentage"`
	UserTaxes        []TaxAssociation `json:"UserTaxes,omitempty"`
}

func (i Income) RecordID() uint { return i.ID }
func (i Income) Label() string  { return i.IncomeName }

// ExpenditureType is reference data resolved from an expense's type foreign key.
type ExpenditureType struct {
	ID                  uint   `json:"ID"`
	ExpenditureTypeName string `json:"ExpenditureTypeName"`
}

// Expense is a single expenditure.
type Expense struct {
	ID                    uint            `json:"ID"`
	UserID                uint            `json:"UserID"`
	ExpenditureName       string          `json:"ExpenditureName"`
	ExpenditureID         uint            `json:"ExpenditureID"`
	Expenditure           ExpenditureType `json:"Expenditure"`
	ExpenditureValue      float64         `json:"ExpenditureValue"`
	ExpenditureStartDate  *time.Time      `json:"ExpenditureStartDate,omitempty"`
	ExpenditureEndDate    *time.Time      `json:"ExpenditureEndDate,omitempty"`
	ExpenditureRecurrence string          `json:"ExpenditureRecurrence"`
	SharedExpenditure     bool            `json:"SharedExpenditure"`
}

func (e Expense) RecordID() uint { return e.ID }
func (e Expense) Label() string  { return e.ExpenditureName }

// TaxType is reference data resolved from a tax's type foreign key.
type TaxType struct {
	ID          uint   `json:"ID"`
	TaxTypeName string `json:"TaxTypeName"`
}

// Tax is a user-defined tax that can be associated with assets and incomes.
type Tax struct {
	ID                 uint    `json:"ID"`
	UserID             uint    `json:"UserID"`
	TaxName            string  `json:"TaxName"`
	TaxTypeID          uint    `json:"TaxTypeID"`
	TaxType            TaxType `json:"TaxType"`
	TaxPercentage      float64 `json:"TaxPercentage"`
	TaxApplicableCycle string  `json:"TaxApplicableCycle"`
}

func (t Tax) RecordID() uint { return t.ID }
func (t Tax) Label() string  { return t.TaxName }

// Category is a user-defined category for one of the entity families.
type Category struct {
	ID           uint   `json:"ID"`
	UserID       uint   `json:"UserID"`
	CategoryName string `json:"CategoryName"`
	CategoryKind string `json:"CategoryKind"`
}

func (c Category) RecordID() uint { return c.ID }
func (c Category) Label() string  { return c.CategoryName }

// GroupType is reference data resolved from a group's type foreign key.
type GroupType struct {
	ID            uint   `json:"ID"`
	GroupTypeName string `json:"GroupTypeName"`
}

// Group is a shared group that incomes and expenditures can be pooled under.
type Group struct {
	ID          uint      `json:"ID"`
	UserID      uint      `json:"UserID"`
	GroupName   string    `json:"GroupName"`
	GroupTypeID uint      `json:"GroupTypeID"`
	GroupType   GroupType `json:"GroupType"`
}

func (g Group) RecordID() uint { return g.ID }
func (g Group) Label() string  { return g.GroupName }
