// Package backend assembles the in-memory stores and the services on top
// of them.
package backend

import (
	"fintrack/internal/services"
	"fintrack/internal/store"
)

// Backend bundles the four entity stores with the services that front them.
// Every caller in one process shares the same Backend.
type Backend struct {
	Transactions *store.TransactionStore
	Budgets      *store.BudgetStore
	Goals        *store.GoalStore
	Categories   *store.CategoryStore

	TransactionService *services.TransactionService
	Planning           *services.PlanningService
}

// Revision combines the revisions of all four stores. It changes whenever
// any of them is mutated.
func (b *Backend) Revision() [4]uint64 {
	return [4]uint64{
		b.Transactions.Revision(),
		b.Budgets.Revision(),
		b.Goals.Revision(),
		b.Categories.Revision(),
	}
}
