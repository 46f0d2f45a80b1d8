package handlers

import (
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reporting"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// AuthResponse represents the authentication response with tokens
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, newCategoryResponse(&categories[i]))
	}
	return out
}

// TransactionResponse represents a transaction in the response. Amount is
// converted to a JSON number here and nowhere else.
type TransactionResponse struct {
	ID            string                 `json:"id"`
	CategoryID    string                 `json:"category_id"`
	CategoryName  string                 `json:"category_name"`
	CategoryColor string                 `json:"category_color,omitempty"`
	CategoryIcon  string                 `json:"category_icon,omitempty"`
	Type          models.TransactionType `json:"type"`
	Amount        float64                `json:"amount"`
	Description   string                 `json:"description"`
	Date          string                 `json:"date"`
	Notes         string                 `json:"notes"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func newTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:           t.ID,
		CategoryID:   t.CategoryID,
		CategoryName: reporting.UncategorizedLabel,
		Type:         t.Type,
		Amount:       t.Amount.InexactFloat64(),
		Description:  t.Description,
		Date:         t.Date.Format(reporting.DateLayout),
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.Category != nil {
		resp.CategoryName = t.Category.Name
		resp.CategoryColor = t.Category.Color
		resp.CategoryIcon = t.Category.Icon
	}
	return resp
}

// GoalResponse represents a financial goal with its derived progress.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Progress      float64   `json:"progress"`
	Deadline      *string   `json:"deadline"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newGoalResponse(g *models.FinancialGoal) GoalResponse {
	resp := GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		Progress:      reporting.Progress(g.CurrentAmount, g.TargetAmount).Round(2).InexactFloat64(),
		Description:   g.Description,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.Deadline != nil {
		d := g.Deadline.Format(reporting.DateLayout)
		resp.Deadline = &d
	}
	return resp
}

func newGoalResponses(goals []models.FinancialGoal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, newGoalResponse(&goals[i]))
	}
	return out
}

// CategoryTotalsResponse holds the income and expense subtotals of one category.
type CategoryTotalsResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// SummaryResponse is the wire form of a period summary.
type SummaryResponse struct {
	TotalIncome       float64                           `json:"total_income"`
	TotalExpense      float64                           `json:"total_expense"`
	Balance           float64                           `json:"balance"`
	TransactionsCount int                               `json:"transactions_count"`
	Period            reporting.Period                  `json:"period"`
	StartDate         string                            `json:"start_date"`
	EndDate           string                            `json:"end_date"`
	CategoryBreakdown map[string]CategoryTotalsResponse `json:"category_breakdown"`
}

func newSummaryResponse(s *reporting.Summary) SummaryResponse {
	breakdown := make(map[string]CategoryTotalsResponse, len(s.CategoryBreakdown))
	for name, totals := range s.CategoryBreakdown {
		breakdown[name] = CategoryTotalsResponse{
			Income:  totals.Income.InexactFloat64(),
			Expense: totals.Expense.InexactFloat64(),
		}
	}
	return SummaryResponse{
		TotalIncome:       s.TotalIncome.InexactFloat64(),
		TotalExpense:      s.TotalExpense.InexactFloat64(),
		Balance:           s.Balance.InexactFloat64(),
		TransactionsCount: s.TransactionsCount,
		Period:            s.Period,
		StartDate:         s.Range.Start.Format(reporting.DateLayout),
		EndDate:           s.Range.End.Format(reporting.DateLayout),
		CategoryBreakdown: breakdown,
	}
}
