package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/events"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/reporting"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db        *gorm.DB
	publisher events.Publisher
	now       func() time.Time
}

// NewTransactionService creates a new TransactionServicer. A nil publisher
// disables change events.
func NewTransactionService(db *gorm.DB, publisher events.Publisher) TransactionServicer {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &transactionService{
		db:        db,
		publisher: publisher,
		now:       time.Now,
	}
}

// validateAmount enforces a positive amount with at most two decimal places.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

// CreateTransaction records an income or expense against one of the user's
// categories. A zero date means today.
func (s *transactionService) CreateTransaction(
	ctx context.Context,
	userID string,
	categoryID string,
	transactionType models.TransactionType,
	amount decimal.Decimal,
	description string,
	date time.Time,
	notes string,
) (*models.Transaction, error) {
	if _, err := models.ParseTransactionType(string(transactionType)); err != nil {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if date.IsZero() {
		date = s.now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        reporting.DateOnly(date),
		Notes:       notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := findCategory(tx, userID, categoryID)
		if err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		transaction.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TransactionCreated, userID, transaction.ID)
	return transaction, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", reporting.DateOnly(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", reporting.DateOnly(*f.ToDate))
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}

func (s *transactionService) userTransactions(ctx context.Context, userID string, filter TransactionFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)
	return applyTransactionFilters(q, filter)
}

// GetUserTransactions retrieves a paginated, filtered list of a user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var totalItems int64
	if err := s.userTransactions(ctx, userID, filter).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.userTransactions(ctx, userID, filter).
		Preload("Category").
		Order("date DESC").
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PerPage, totalItems)
	return &result, nil
}

// ListTransactions returns every matching transaction, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := s.userTransactions(ctx, userID, filter).
		Preload("Category").
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	return findTransaction(s.db.WithContext(ctx), userID, transactionID)
}

func findTransaction(db *gorm.DB, userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. The type of a transaction is
// fixed at creation.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	var transaction *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		transaction, err = findTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}

		if update.Type != nil && *update.Type != transaction.Type {
			return apperrors.ErrInvalidTypeChange
		}

		updates := make(map[string]interface{})
		if update.CategoryID != nil && *update.CategoryID != transaction.CategoryID {
			category, err := findCategory(tx, userID, *update.CategoryID)
			if err != nil {
				return err
			}
			updates["category_id"] = category.ID
		}
		if update.Amount != nil {
			if err := validateAmount(*update.Amount); err != nil {
				return err
			}
			updates["amount"] = *update.Amount
		}
		if update.Description != nil {
			description := strings.TrimSpace(*update.Description)
			if description == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "description cannot be empty")
			}
			updates["description"] = description
		}
		if update.Date != nil {
			updates["date"] = reporting.DateOnly(*update.Date)
		}
		if update.Notes != nil {
			updates["notes"] = *update.Notes
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.Transaction{}).Where("id = ?", transaction.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		transaction, err = findTransaction(tx, userID, transactionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TransactionUpdated, userID, transaction.ID)
	return transaction, nil
}

// DeleteTransaction deletes one of the user's transactions.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Transaction{}, "id = ?", transaction.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.TransactionDeleted, userID, transactionID)
	return nil
}

// publish is best effort: a broker outage never fails a committed write.
func (s *transactionService) publish(ctx context.Context, kind, userID, transactionID string) {
	if err := s.publisher.Publish(ctx, events.New(kind, userID, transactionID)); err != nil {
		logger.Get().Warnw("failed to publish transaction event",
			"error", err,
			"kind", kind,
			"transaction_id", transactionID,
		)
	}
}
