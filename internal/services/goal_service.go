package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reporting"
)

// goalService handles financial goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

func validateGoalAmounts(target, current decimal.Decimal) error {
	if !target.IsPositive() || !target.Equal(target.Round(2)) {
		return apperrors.WithMessage(apperrors.ErrInvalidAmount, "target amount must be positive with at most two decimal places")
	}
	if current.IsNegative() || !current.Equal(current.Round(2)) {
		return apperrors.WithMessage(apperrors.ErrInvalidAmount, "current amount cannot be negative and allows at most two decimal places")
	}
	return nil
}

// CreateGoal creates a new financial goal
func (s *goalService) CreateGoal(
	userID string,
	name string,
	targetAmount decimal.Decimal,
	currentAmount decimal.Decimal,
	deadline *time.Time,
	description string,
	isActive bool,
) (*models.FinancialGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if err := validateGoalAmounts(targetAmount, currentAmount); err != nil {
		return nil, err
	}
	if deadline != nil {
		d := reporting.DateOnly(*deadline)
		deadline = &d
	}

	goal := &models.FinancialGoal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Description:   description,
		IsActive:      isActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// GORM skips zero values for columns with a default, so an inactive
		// goal needs an explicit write.
		if !isActive {
			if err := tx.Model(goal).Update("is_active", false).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// GetUserGoals lists a user's goals, soonest deadline first. A non-nil
// isActive restricts the result to active or inactive goals.
func (s *goalService) GetUserGoals(userID string, isActive *bool) ([]models.FinancialGoal, error) {
	q := s.db.Where("user_id = ?", userID)
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}

	goals := []models.FinancialGoal{}
	if err := q.Order("deadline IS NULL").Order("deadline ASC").Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoalByID retrieves a goal by ID for a specific user
func (s *goalService) GetGoalByID(userID, goalID string) (*models.FinancialGoal, error) {
	return findGoal(s.db, userID, goalID)
}

func findGoal(db *gorm.DB, userID, goalID string) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	if err := db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to an existing goal
func (s *goalService) UpdateGoal(userID, goalID string, update GoalUpdate) (*models.FinancialGoal, error) {
	var goal *models.FinancialGoal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = findGoal(tx, userID, goalID)
		if err != nil {
			return err
		}

		target, current := goal.TargetAmount, goal.CurrentAmount
		updates := make(map[string]interface{})
		if update.Name != nil {
			name := strings.TrimSpace(*update.Name)
			if name == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name cannot be empty")
			}
			updates["name"] = name
		}
		if update.TargetAmount != nil {
			target = *update.TargetAmount
			updates["target_amount"] = target
		}
		if update.CurrentAmount != nil {
			current = *update.CurrentAmount
			updates["current_amount"] = current
		}
		if err := validateGoalAmounts(target, current); err != nil {
			return err
		}
		if update.Deadline != nil {
			updates["deadline"] = reporting.DateOnly(*update.Deadline)
		}
		if update.Description != nil {
			updates["description"] = *update.Description
		}
		if update.IsActive != nil {
			updates["is_active"] = *update.IsActive
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(goal).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		goal, err = findGoal(tx, userID, goalID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// DeleteGoal deletes a goal
func (s *goalService) DeleteGoal(userID, goalID string) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.FinancialGoal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// AddContribution adds a positive amount to the goal's current amount in a
// single row-locked read-modify-write.
func (s *goalService) AddContribution(userID, goalID string, amount decimal.Decimal) (*models.FinancialGoal, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var goal *models.FinancialGoal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = findGoal(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID, goalID)
		if err != nil {
			return err
		}

		goal.CurrentAmount = goal.CurrentAmount.Add(amount)
		if err := tx.Model(goal).Update("current_amount", goal.CurrentAmount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}
