// Package models holds the GORM persistence entities.
package models

// All lists every model in dependency order for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Transaction{},
		&FinancialGoal{},
		&AuditLog{},
	}
}
