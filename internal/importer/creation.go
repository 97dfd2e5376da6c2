package importer

import (
	"errors"

	"github.com/studentfinance/backend/internal/models"
	"gorm.io/gorm"
)

// Create creates all resources of the document. Expenses and goals are
// added to the existing data, the user profile is overwritten with the
// imported one. Everything runs in a single transaction, when any
// resource fails its model validation, nothing is imported.
func Create(db *gorm.DB, document Document) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, expense := range document.Expenses {
			// New resources get new IDs
			expense.DefaultModel = models.DefaultModel{}
			if err := tx.Create(&expense).Error; err != nil {
				return err
			}
		}

		for _, goal := range document.Goals {
			goal.DefaultModel = models.DefaultModel{}
			if err := tx.Create(&goal).Error; err != nil {
				return err
			}
		}

		var profile models.UserProfile
		err := tx.First(&profile).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			profile = models.UserProfile{
				Balance:       document.CurrentUser.Balance,
				MonthlyIncome: document.CurrentUser.MonthlyIncome,
				MonthlyBudget: document.CurrentUser.MonthlyBudget,
			}
			return tx.Create(&profile).Error
		} else if err != nil {
			return err
		}

		return tx.Model(&profile).
			Select("Balance", "MonthlyIncome", "MonthlyBudget").
			Updates(models.UserProfile{
				Balance:       document.CurrentUser.Balance,
				MonthlyIncome: document.CurrentUser.MonthlyIncome,
				MonthlyBudget: document.CurrentUser.MonthlyBudget,
			}).Error
	})
}
