package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the string matching filters to a query. The text
// column is the resource specific free-text column, category is shared by
// expenses and goals. The search matches either of the two.
func stringFilters(db, query *gorm.DB, setFields []string, textField, textColumn, text, category, search string) *gorm.DB {
	if text != "" {
		query = query.Where(fmt.Sprintf("%s LIKE ?", textColumn), fmt.Sprintf("%%%s%%", text))
	} else if slices.Contains(setFields, textField) {
		query = query.Where(fmt.Sprintf("%s = ''", textColumn))
	}

	if category != "" {
		query = query.Where("category LIKE ?", fmt.Sprintf("%%%s%%", category))
	} else if slices.Contains(setFields, "Category") {
		query = query.Where("category = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where(fmt.Sprintf("%s LIKE ?", textColumn), fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("category LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
