// Package category implements the expense categories and the keyword
// based suggestion of a category for an expense description.
package category

// A Category classifies what an expense was spent on.
type Category string

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Entertainment Category = "entertainment"
	Education     Category = "education"
	Shopping      Category = "shopping"
	Utilities     Category = "utilities"
)

// Default is the category used when a description matches no category
// or matches multiple categories equally well.
const Default = Shopping

// All contains every category in its canonical order. The order is
// relevant: it is the evaluation order for suggestions and the
// tie-break order for spending analysis.
var All = []Category{Food, Transport, Entertainment, Education, Shopping, Utilities}

// keywords maps each category to the keywords that indicate it.
var keywords = map[Category][]string{
	Food:          {"lunch", "dinner", "breakfast", "restaurant", "cafe", "food", "meal", "pizza", "burger", "coffee", "snack", "groceries"},
	Transport:     {"bus", "taxi", "uber", "metro", "train", "fuel", "petrol", "parking", "auto", "rickshaw"},
	Entertainment: {"movie", "cinema", "game", "concert", "party", "club", "music", "streaming", "netflix"},
	Education:     {"book", "course", "fee", "tuition", "exam", "study", "library", "stationery", "notebook"},
	Shopping:      {"clothes", "shirt", "shoes", "shopping", "mall", "online", "amazon", "flipkart", "dress"},
	Utilities:     {"electricity", "water", "internet", "phone", "mobile", "recharge", "bill", "wifi"},
}

// Keywords returns the keywords for a category.
func Keywords(c Category) []string {
	return keywords[c]
}

// Valid reports whether c is one of the fixed categories.
func Valid(c Category) bool {
	_, ok := keywords[c]
	return ok
}
