package domain

// Drafts are in-progress, unsaved copies of a record bound to an open form.
// Numeric fields are carried as strings because that is how form inputs bind
// their values; the repository coerces them at the create/update boundary.

// AssetDraft is the form-bound shape of an asset.
type AssetDraft struct {
	AssetName           string           `json:"AssetName" validate:"required"`
	AssetValue          string           `json:"AssetValue" validate:"required,numeric"`
	AssetTypeID         string           `json:"AssetTypeID" validate:"required,numeric"`
	AssetAquisitionDate string           `json:"AssetAquisitionDate" validate:"required,datetime=2006-01-02"`
	SharedAsset         bool             `json:"SharedAsset"`
	UserAssetTaxes      []TaxAssociation `json:"UserAssetTaxes"`
}

// IncomeDraft is the form-bound shape of an income stream.
type IncomeDraft struct {
	IncomeName       string           `json:"IncomeName" validate:"required"`
	IncomeValue      string           `json:"IncomeValue" validate:"required,numeric"`
	IncomeTypeID     string           `json:"IncomeTypeID" validate:"required,numeric"`
	IncomeRecurrence string           `json:"IncomeRecurrence" validate:"required"`
	IncomeStartDate  string           `json:"IncomeStartDate" validate:"required,datetime=2006-01-02"`
	IncomeEndDate    string           `json:"IncomeEndDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SharedIncome     bool             `json:"SharedIncome"`
	OwningPercentage string           `json:"OwningPercentage,omitempty" validate:"omitempty,numeric"`
	UserTaxes        []TaxAssociation `json:"UserTaxes"`
}

// ExpenseDraft is the form-bound shape of an expenditure.
type ExpenseDraft struct {
	ExpenditureName       string `json:"ExpenditureName" validate:"required"`
	ExpenditureValue      string `json:"ExpenditureValue" validate:"required,numeric"`
	ExpenditureID         string `json:"ExpenditureID" validate:"required,numeric"`
	ExpenditureRecurrence string `json:"ExpenditureRecurrence" validate:"required"`
	ExpenditureStartDate  string `json:"ExpenditureStartDate" validate:"required,datetime=2006-01-02"`
	ExpenditureEndDate    string `json:"ExpenditureEndDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SharedExpenditure     bool   `json:"SharedExpenditure"`
}

// TaxDraft is the form-bound shape of a tax definition.
type TaxDraft struct {
	TaxName            string `json:"TaxName" validate:"required"`
	TaxTypeID          string `json:"TaxTypeID" validate:"required,numeric"`
	TaxPercentage      string `json:"TaxPercentage" validate:"required,numeric"`
	TaxApplicableCycle string `json:"TaxApplicableCycle" validate:"required"`
}

// CategoryDraft is the form-bound shape of a category.
type CategoryDraft struct {
	CategoryName string `json:"CategoryName" validate:"required"`
	CategoryKind string `json:"CategoryKind" validate:"required,oneof=asset income expense"`
}

// GroupDraft is the form-bound shape of a group.
type GroupDraft struct {
	GroupName   string `json:"GroupName" validate:"required"`
	GroupTypeID string `json:"GroupTypeID" validate:"required,numeric"`
}
