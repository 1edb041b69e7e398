package store

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"fintrack/internal/core"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

const (
	transactionsFile = "transactions.json"
	budgetsFile      = "budgets.json"
	goalsFile        = "goals.json"
	categoriesFile   = "categories.json"
)

// Fixtures is the seed every store copies at construction.
type Fixtures struct {
	Transactions []core.Transaction
	Budgets      []core.Budget
	Goals        []core.Goal
	Categories   []core.Category
}

// DefaultFixtures returns the embedded seed data.
func DefaultFixtures() (Fixtures, error) {
	return LoadFixtures("")
}

// LoadFixtures reads the four seed files from dir. A missing file, or an
// empty dir, falls back to the embedded default for that entity.
func LoadFixtures(dir string) (Fixtures, error) {
	var f Fixtures
	if err := decodeFixture(dir, transactionsFile, &f.Transactions); err != nil {
		return Fixtures{}, err
	}
	if err := decodeFixture(dir, budgetsFile, &f.Budgets); err != nil {
		return Fixtures{}, err
	}
	if err := decodeFixture(dir, goalsFile, &f.Goals); err != nil {
		return Fixtures{}, err
	}
	if err := decodeFixture(dir, categoriesFile, &f.Categories); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

func decodeFixture(dir, name string, out any) error {
	b, err := readFixture(dir, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func readFixture(dir, name string) ([]byte, error) {
	if dir != "" {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read fixture %s: %w", name, err)
		}
	}
	b, err := fixturesFS.ReadFile("fixtures/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded fixture %s: %w", name, err)
	}
	return b, nil
}
