package repo

import (
	"fmt"

	"github.com/finanapp/client-go/internal/domain"
)

// Descriptors for each entity family the backend exposes. Path shapes are
// uneven on purpose: they mirror the backend's actual routes.

// Assets describes the asset resource.
func Assets() Descriptor[domain.Asset] {
	return Descriptor[domain.Asset]{
		Kind:          "asset",
		CreatePath:    "/api/assets",
		UpdatePath:    func(id uint) string { return fmt.Sprintf("/api/assets/%d", id) },
		DeletePath:    func(id uint) string { return fmt.Sprintf("/api/delete-assets/%d", id) },
		ResponseKey:   "userAsset",
		NumericFields: []string{"AssetValue", "AssetTypeID"},
		Collection:    func(d *domain.Dashboard) []domain.Asset { return d.Assets },
	}
}

// Incomes describes the income resource.
func Incomes() Descriptor[domain.Income] {
	return Descriptor[domain.Income]{
		Kind:          "income",
		CreatePath:    "/api/income",
		UpdatePath:    func(id uint) string { return fmt.Sprintf("/api/income/%d", id) },
		DeletePath:    func(id uint) string { return fmt.Sprintf("/api/delete-income/%d", id) },
		ResponseKey:   "userIncome",
		NumericFields: []string{"IncomeValue", "IncomeTypeID", "OwningPercentage"},
		Collection:    func(d *domain.Dashboard) []domain.Income { return d.Incomes },
	}
}

// Expenses describes the expenditure resource.
func Expenses() Descriptor[domain.Expense] {
	return Descriptor[domain.Expense]{
		Kind:          "expense",
		CreatePath:    "/api/expense",
		UpdatePath:    func(id uint) string { return fmt.Sprintf("/api/expense/%d", id) },
		DeletePath:    func(id uint) string { return fmt.Sprintf("/api/delete-expense/%d", id) },
		ResponseKey:   "userExpense",
		NumericFields: []string{"ExpenditureValue", "ExpenditureID"},
		Collection:    func(d *domain.Dashboard) []domain.Expense { return d.Expenses },
	}
}

// Taxes describes the tax-setup resource. Taxes are created and deleted from
// the setup dialog, which lists them through its own endpoint rather than the
// dashboard aggregate; there is no update route.
func Taxes() Descriptor[domain.Tax] {
	return Descriptor[domain.Tax]{
		Kind:          "tax",
		CreatePath:    "/api/create-taxes",
		DeletePath:    func(id uint) string { return fmt.Sprintf("/api/delete-tax/%d", id) },
		ResponseKey:   "taxes",
		NumericFields: []string{"TaxPercentage", "TaxTypeID"},
		ListPath:      "/api/get-taxes",
		ListKey:       "taxes",
	}
}

// Categories describes the category resource. Categories are not part of the
// dashboard aggregate and have their own collection endpoint.
func Categories() Descriptor[domain.Category] {
	return Descriptor[domain.Category]{
		Kind:        "category",
		CreatePath:  "/api/create-category",
		DeletePath:  func(id uint) string { return fmt.Sprintf("/api/delete-category/%d", id) },
		ResponseKey: "category",
		ListPath:    "/api/categories",
		ListKey:     "categories",
	}
}

// Groups describes the shared-group resource.
func Groups() Descriptor[domain.Group] {
	return Descriptor[domain.Group]{
		Kind:          "group",
		CreatePath:    "/api/create-group",
		DeletePath:    func(id uint) string { return fmt.Sprintf("/api/delete-group/%d", id) },
		ResponseKey:   "userGroup",
		NumericFields: []string{"GroupTypeID"},
		Collection:    func(d *domain.Dashboard) []domain.Group { return d.Groups },
	}
}
