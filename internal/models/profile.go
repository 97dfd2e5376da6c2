package models

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// UserProfile holds the financial configuration of the user. There is
// exactly one profile per instance.
type UserProfile struct {
	DefaultModel
	Balance       decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,8)"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" gorm:"type:DECIMAL(20,8)"`
}

// Profile returns the user profile, creating it with the default
// configuration on first use.
func Profile() (UserProfile, error) {
	var profile UserProfile

	err := DB.First(&profile).Error
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return UserProfile{}, err
	}

	profile = UserProfile{
		Balance:       decimal.NewFromInt(12450),
		MonthlyIncome: decimal.NewFromInt(15000),
		MonthlyBudget: decimal.NewFromInt(10000),
	}
	err = DB.Create(&profile).Error

	return profile, err
}

// Returns the user profile for export
func (UserProfile) Export() (json.RawMessage, error) {
	profile, err := Profile()
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&profile)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
