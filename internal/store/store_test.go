package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func clock() Option {
	return WithClock(func() time.Time { return fixedNow })
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := NewTransactionStore(nil, clock())

	var last int
	for i := 0; i < 3; i++ {
		tx, err := s.Create(ctx, core.NewTransaction{Type: core.Expense, Amount: dec("10"), Category: "Groceries"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if tx.ID <= last {
			t.Fatalf("id %d not above previous %d", tx.ID, last)
		}
		last = tx.ID

		got, err := s.GetByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("get %d: %v", tx.ID, err)
		}
		if got != tx {
			t.Fatalf("GetByID = %+v, want %+v", got, tx)
		}
	}
	if last != 3 {
		t.Fatalf("expected ids 1..3 on an empty store, last was %d", last)
	}
}

func TestCreateDoesNotReuseDeletedIDs(t *testing.T) {
	ctx := context.Background()
	s := NewGoalStore([]core.Goal{{ID: 1}, {ID: 7}}, clock())

	if _, err := s.Delete(ctx, 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	g, err := s.Create(ctx, core.NewGoal{Title: "Bike", TargetAmount: dec("500"), Priority: core.PriorityLow})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.ID != 8 {
		t.Fatalf("expected id 8 after deleting 7, got %d", g.ID)
	}
}

func TestTransactionCreateDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewTransactionStore(nil, clock())

	tx, err := s.Create(ctx, core.NewTransaction{Type: core.Income, Amount: dec("100"), Category: "Salary"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !tx.Date.Equal(fixedNow) || !tx.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected date and createdAt stamped with now, got %+v", tx)
	}

	explicit := day(2026, 1, 2)
	tx, err = s.Create(ctx, core.NewTransaction{Type: core.Income, Amount: dec("1"), Category: "Salary", Date: explicit})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !tx.Date.Equal(explicit) {
		t.Fatalf("explicit date overwritten: %v", tx.Date)
	}
}

func TestCreateEntityDefaults(t *testing.T) {
	ctx := context.Background()

	b, err := NewBudgetStore(nil).Create(ctx, core.NewBudget{Category: "Groceries", MonthlyLimit: dec("300"), Month: "2026-10", Year: 2026})
	if err != nil {
		t.Fatalf("budget create: %v", err)
	}
	if !b.CurrentSpent.IsZero() {
		t.Fatalf("budget should start with nothing spent, got %s", b.CurrentSpent)
	}

	goals := NewGoalStore(nil, clock())
	g, err := goals.Create(ctx, core.NewGoal{Title: "Trip", TargetAmount: dec("900"), Priority: core.PriorityMedium})
	if err != nil {
		t.Fatalf("goal create: %v", err)
	}
	if !g.CurrentAmount.IsZero() || !g.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected goal defaults: %+v", g)
	}
	g, _ = goals.Create(ctx, core.NewGoal{Title: "Fund", TargetAmount: dec("900"), CurrentAmount: dec("50"), Priority: core.PriorityHigh})
	if !g.CurrentAmount.Equal(dec("50")) {
		t.Fatalf("provided current amount lost: %s", g.CurrentAmount)
	}

	c, err := NewCategoryStore(nil).Create(ctx, core.NewCategory{Name: "Pets", Type: core.Expense})
	if err != nil {
		t.Fatalf("category create: %v", err)
	}
	if c.IsDefault {
		t.Fatal("created categories are never default")
	}
}

func TestUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	orig := core.Transaction{
		ID:          1,
		Type:        core.Expense,
		Amount:      dec("25.50"),
		Category:    "Dining Out",
		Description: "lunch",
		Date:        day(2026, 10, 3),
		CreatedAt:   day(2026, 10, 3),
	}
	s := NewTransactionStore([]core.Transaction{orig})

	got, err := s.Update(ctx, 1, core.TransactionPatch{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if got != orig {
		t.Fatalf("empty patch changed record: %+v", got)
	}

	got, err = s.Update(ctx, 1, core.TransactionPatch{Category: core.Ptr("Groceries")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := orig
	want.Category = "Groceries"
	if got != want {
		t.Fatalf("Update = %+v, want %+v", got, want)
	}
	stored, _ := s.GetByID(ctx, 1)
	if stored != want {
		t.Fatalf("stored record = %+v, want %+v", stored, want)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	tx := NewTransactionStore(nil)
	budgets := NewBudgetStore(nil)
	goals := NewGoalStore(nil)
	cats := NewCategoryStore(nil)

	ops := map[string]func() error{
		"transaction get":    func() error { _, err := tx.GetByID(ctx, 9); return err },
		"transaction update": func() error { _, err := tx.Update(ctx, 9, core.TransactionPatch{}); return err },
		"transaction delete": func() error { _, err := tx.Delete(ctx, 9); return err },
		"budget get":         func() error { _, err := budgets.GetByID(ctx, 9); return err },
		"budget update":      func() error { _, err := budgets.Update(ctx, 9, core.BudgetPatch{}); return err },
		"budget delete":      func() error { _, err := budgets.Delete(ctx, 9); return err },
		"goal get":           func() error { _, err := goals.GetByID(ctx, 9); return err },
		"goal update":        func() error { _, err := goals.Update(ctx, 9, core.GoalPatch{}); return err },
		"goal delete":        func() error { _, err := goals.Delete(ctx, 9); return err },
		"goal add":           func() error { _, err := goals.AddToGoal(ctx, 9, dec("1")); return err },
		"category get":       func() error { _, err := cats.GetByID(ctx, 9); return err },
		"category update":    func() error { _, err := cats.Update(ctx, 9, core.CategoryPatch{}); return err },
		"category delete":    func() error { _, err := cats.Delete(ctx, 9); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			var nf *NotFoundError
			if !errors.As(err, &nf) || nf.ID != 9 {
				t.Fatalf("expected NotFoundError for id 9, got %v", err)
			}
		})
	}
}

func TestDeleteThenGetFails(t *testing.T) {
	ctx := context.Background()
	s := NewBudgetStore([]core.Budget{{ID: 1, Category: "Groceries"}, {ID: 2, Category: "Rent"}})

	deleted, err := s.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Category != "Groceries" {
		t.Fatalf("delete returned %+v", deleted)
	}
	if _, err := s.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 budget left, got %d", s.Len())
	}
}

func TestDeleteDefaultCategoryRefused(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore([]core.Category{
		{ID: 1, Name: "Salary", Type: core.Income, IsDefault: true},
		{ID: 2, Name: "Gifts", Type: core.Expense},
	})
	rev := s.Revision()

	_, err := s.Delete(ctx, 1)
	if !errors.Is(err, ErrDefaultCategory) || !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrDefaultCategory, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("collection changed: %d categories", s.Len())
	}
	if s.Revision() != rev {
		t.Fatal("refused delete bumped the revision")
	}

	if _, err := s.Delete(ctx, 2); err != nil {
		t.Fatalf("non-default delete: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 category, got %d", s.Len())
	}
}

func TestAddToGoalIsCumulative(t *testing.T) {
	ctx := context.Background()
	s := NewGoalStore([]core.Goal{{ID: 1, Title: "Fund", TargetAmount: dec("1000"), CurrentAmount: dec("100")}})

	g, err := s.AddToGoal(ctx, 1, dec("150"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !g.CurrentAmount.Equal(dec("250")) {
		t.Fatalf("expected 250, got %s", g.CurrentAmount)
	}
	g, _ = s.AddToGoal(ctx, 1, dec("150"))
	if !g.CurrentAmount.Equal(dec("400")) {
		t.Fatalf("expected 400, got %s", g.CurrentAmount)
	}
}

func TestTransactionsSortedByDateDesc(t *testing.T) {
	ctx := context.Background()
	s := NewTransactionStore([]core.Transaction{
		{ID: 1, Type: core.Expense, Category: "A", Date: day(2026, 3, 1)},
		{ID: 2, Type: core.Income, Category: "B", Date: day(2026, 9, 1)},
		{ID: 3, Type: core.Expense, Category: "A", Date: day(2026, 6, 1)},
	})
	if _, err := s.Create(ctx, core.NewTransaction{Type: core.Expense, Category: "A", Amount: dec("1"), Date: day(2025, 1, 1)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := []int{2, 3, 1, 4}
	for i, tx := range all {
		if tx.ID != want[i] {
			t.Fatalf("position %d: got id %d, want %d", i, tx.ID, want[i])
		}
	}

	byCat, _ := s.GetByCategory(ctx, "A")
	if len(byCat) != 3 || byCat[0].ID != 3 {
		t.Fatalf("GetByCategory = %+v", byCat)
	}
	byType, _ := s.GetByType(ctx, core.Income)
	if len(byType) != 1 || byType[0].ID != 2 {
		t.Fatalf("GetByType = %+v", byType)
	}
}

func TestGetByDateRangeInclusive(t *testing.T) {
	ctx := context.Background()
	s := NewTransactionStore([]core.Transaction{
		{ID: 1, Date: day(2026, 3, 1)},
		{ID: 2, Date: day(2026, 3, 15)},
		{ID: 3, Date: day(2026, 3, 31)},
		{ID: 4, Date: day(2026, 4, 1)},
	})
	got, err := s.GetByDateRange(ctx, day(2026, 3, 1), day(2026, 3, 31))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 3 || got[0].ID != 3 || got[2].ID != 1 {
		t.Fatalf("unexpected range result %+v", got)
	}
}

func TestGoalsSortedByTargetDate(t *testing.T) {
	s := NewGoalStore([]core.Goal{
		{ID: 1, TargetDate: day(2027, 1, 1)},
		{ID: 2, TargetDate: day(2026, 12, 1)},
		{ID: 3, TargetDate: day(2028, 1, 1)},
	})
	goals, _ := s.GetAll(context.Background())
	if goals[0].ID != 2 || goals[1].ID != 1 || goals[2].ID != 3 {
		t.Fatalf("unexpected order %+v", goals)
	}
}

func TestBudgetsAndCategoriesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	budgets := NewBudgetStore([]core.Budget{{ID: 5, Category: "Z"}, {ID: 2, Category: "A"}})
	bs, _ := budgets.GetAll(ctx)
	if bs[0].ID != 5 || bs[1].ID != 2 {
		t.Fatalf("budget order %+v", bs)
	}

	cats := NewCategoryStore([]core.Category{{ID: 3, Name: "Z", Type: core.Expense}, {ID: 1, Name: "A", Type: core.Income}})
	cs, _ := cats.GetAll(ctx)
	if cs[0].ID != 3 || cs[1].ID != 1 {
		t.Fatalf("category order %+v", cs)
	}
	income, _ := cats.GetByType(ctx, core.Income)
	if len(income) != 1 || income[0].Name != "A" {
		t.Fatalf("GetByType = %+v", income)
	}
}

func TestSnapshotsAreDefensiveCopies(t *testing.T) {
	ctx := context.Background()
	seed := []core.Budget{{ID: 1, Category: "Groceries", MonthlyLimit: dec("100")}}
	s := NewBudgetStore(seed)

	seed[0].Category = "mutated seed"
	all, _ := s.GetAll(ctx)
	all[0].Category = "mutated snapshot"

	got, _ := s.GetByID(ctx, 1)
	if got.Category != "Groceries" {
		t.Fatalf("store shares memory with caller: %+v", got)
	}
}

func TestGetByMonth(t *testing.T) {
	s := NewBudgetStore([]core.Budget{
		{ID: 1, Category: "Groceries", Month: "2026-10", Year: 2026},
		{ID: 2, Category: "Groceries", Month: "2026-09", Year: 2026},
		{ID: 3, Category: "Rent", Month: "2026-10", Year: 2025},
	})
	got, _ := s.GetByMonth(context.Background(), "2026-10", 2026)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("GetByMonth = %+v", got)
	}
}

func TestUpdateSpending(t *testing.T) {
	ctx := context.Background()
	s := NewBudgetStore([]core.Budget{
		{ID: 1, Category: "Groceries", MonthlyLimit: dec("500"), Month: "2026-09", Year: 2026, CurrentSpent: dec("10")},
		{ID: 2, Category: "Groceries", MonthlyLimit: dec("500"), Month: "2026-10", Year: 2026, CurrentSpent: dec("20")},
	})

	b, err := s.UpdateSpending(ctx, "Groceries", dec("30.5"), 10, 2026)
	if err != nil {
		t.Fatalf("update spending: %v", err)
	}
	if b == nil || b.ID != 2 || !b.CurrentSpent.Equal(dec("50.5")) {
		t.Fatalf("unexpected budget %+v", b)
	}
	stored, _ := s.GetByID(ctx, 1)
	if !stored.CurrentSpent.Equal(dec("10")) {
		t.Fatalf("other month touched: %+v", stored)
	}

	rev := s.Revision()
	b, err = s.UpdateSpending(ctx, "Travel", dec("5"), 10, 2026)
	if err != nil || b != nil {
		t.Fatalf("missing budget should be nil, nil; got %+v, %v", b, err)
	}
	if s.Revision() != rev {
		t.Fatal("miss should not mutate")
	}
}

func TestLatencyHonorsContext(t *testing.T) {
	s := NewTransactionStore(nil, WithLatency(Latency{Min: time.Hour, Max: time.Hour}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Create(ctx, core.NewTransaction{Type: core.Expense, Amount: dec("1"), Category: "A"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("cancelled create touched the collection")
	}
}

func TestLatencyDuration(t *testing.T) {
	l := Latency{Min: 200 * time.Millisecond, Max: 400 * time.Millisecond}
	for i := 0; i < 100; i++ {
		d := l.duration()
		if d < l.Min || d > l.Max {
			t.Fatalf("duration %v outside [%v, %v]", d, l.Min, l.Max)
		}
	}
	if d := (Latency{}).duration(); d != 0 {
		t.Fatalf("zero latency waited %v", d)
	}
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore(nil)

	var wg sync.WaitGroup
	ids := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.Create(ctx, core.NewCategory{Name: "c", Type: core.Expense})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 ids, got %d", len(seen))
	}
}
