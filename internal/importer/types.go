// Package importer creates resources from parsed save documents.
package importer

import (
	"time"

	"github.com/studentfinance/backend/internal/models"
)

// Document contains all resources of a parsed save document that are to
// be created.
type Document struct {
	Expenses    []models.Expense
	Goals       []models.Goal
	CurrentUser models.UserProfile
	Timestamp   time.Time
}
