package domain

// Dashboard is the aggregate snapshot returned by the dashboard endpoint.
// It is a point-in-time copy, not a live view: staleness after any mutation
// is resolved by re-fetching the whole aggregate.
type Dashboard struct {
	User       UserProfile `json:"user"`
	Assets     []Asset     `json:"userAsset"`
	AssetTypes []AssetType `json:"assetTypes"`
	Incomes    []Income    `json:"userIncome"`
	Expenses   []Expense   `json:"userExpense"`
	Taxes      []Tax       `json:"taxes"`
	Groups     []Group     `json:"userGroups"`
}
