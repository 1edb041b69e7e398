package stats

import (
	"strings"

	"fintrack/internal/core"
)

// TransactionFilter narrows a transaction list. Zero fields match everything.
type TransactionFilter struct {
	Type     core.TransactionType
	Category string
	// Query matches case-insensitively against description and category.
	Query string
}

func (f TransactionFilter) Match(tx core.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(tx.Description), q) ||
		strings.Contains(strings.ToLower(tx.Category), q)
}

func Filter(txs []core.Transaction, f TransactionFilter) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	return out
}
