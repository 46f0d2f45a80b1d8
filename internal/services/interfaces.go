package services

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/reporting"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, description, color, icon string) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID string, update CategoryUpdate) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// CategoryUpdate carries the fields of a partial category update; nil means unchanged.
type CategoryUpdate struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionUpdate carries the fields of a partial transaction update; nil means unchanged.
type TransactionUpdate struct {
	CategoryID  *string
	Type        *models.TransactionType
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	Notes       *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID, categoryID string, transactionType models.TransactionType, amount decimal.Decimal, description string, date time.Time, notes string) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// GoalUpdate carries the fields of a partial goal update; nil means unchanged.
type GoalUpdate struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Description   *string
	IsActive      *bool
}

// GoalServicer defines the contract for financial goal business logic.
type GoalServicer interface {
	CreateGoal(userID, name string, targetAmount, currentAmount decimal.Decimal, deadline *time.Time, description string, isActive bool) (*models.FinancialGoal, error)
	GetUserGoals(userID string, isActive *bool) ([]models.FinancialGoal, error)
	GetGoalByID(userID, goalID string) (*models.FinancialGoal, error)
	UpdateGoal(userID, goalID string, update GoalUpdate) (*models.FinancialGoal, error)
	DeleteGoal(userID, goalID string) error
	AddContribution(userID, goalID string, amount decimal.Decimal) (*models.FinancialGoal, error)
}

// SummaryServicer produces period summaries for a user.
type SummaryServicer interface {
	GetSummary(ctx context.Context, userID string, period reporting.Period, start, end *time.Time) (*reporting.Summary, error)
}

// ExportServicer writes a user's transactions as a spreadsheet.
type ExportServicer interface {
	ExportTransactions(ctx context.Context, userID string, filter TransactionFilter, w io.Writer) (int, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
