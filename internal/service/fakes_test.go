package service

import (
	"context"
	"errors"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
)

var errNotFound = errors.New("not found")

// fakeGenerator scripts the text-generation backend.
type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type fakeUserStore struct {
	users []*models.User
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errNotFound
}

type fakeExpenseStore struct {
	expenses []*models.Expense
	listErr  error
}

func (s *fakeExpenseStore) Create(ctx context.Context, expense *models.Expense) error {
	s.expenses = append(s.expenses, expense)
	return nil
}

func (s *fakeExpenseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*models.Expense
	for _, e := range s.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeExpenseStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.Expense, error) {
	out, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeExpenseStore) Delete(ctx context.Context, expenseID, userID uuid.UUID) (int64, error) {
	for i, e := range s.expenses {
		if e.ID == expenseID && e.UserID == userID {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBudgetStore struct {
	budgets []*models.Budget
}

func (s *fakeBudgetStore) Create(ctx context.Context, budget *models.Budget) error {
	s.budgets = append(s.budgets, budget)
	return nil
}

func (s *fakeBudgetStore) GetByKey(ctx context.Context, userID uuid.UUID, category string, month, year int) (*models.Budget, error) {
	for _, b := range s.budgets {
		if b.UserID == userID && b.Category == category && b.Month == month && b.Year == year {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (s *fakeBudgetStore) UpdateLimit(ctx context.Context, id uuid.UUID, limit float64) error {
	for _, b := range s.budgets {
		if b.ID == id {
			b.Limit = limit
			return nil
		}
	}
	return errNotFound
}

func (s *fakeBudgetStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	var out []*models.Budget
	for _, b := range s.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeInsightStore struct {
	insights []*models.AIInsight
}

func (s *fakeInsightStore) Create(ctx context.Context, insight *models.AIInsight) error {
	s.insights = append(s.insights, insight)
	return nil
}

func (s *fakeInsightStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.AIInsight, error) {
	var out []*models.AIInsight
	for i := len(s.insights) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		if s.insights[i].UserID == userID {
			out = append(out, s.insights[i])
		}
	}
	return out, nil
}
