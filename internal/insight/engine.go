package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/studentfinance/backend/internal/category"
	"github.com/studentfinance/backend/internal/models"
	"github.com/studentfinance/backend/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// projectionSampleSize is the number of most recent expenses the
// spending projection is based on.
const projectionSampleSize = 10

// Generate runs all analyses over the financial state and returns the
// resulting insights in a fixed order: category concentration, budget
// health, goal risk, spending projection.
//
// The expenses must be ordered most recently added first, the order
// models.Expenses returns them in. Generate is deterministic for
// identical inputs and never fails, degenerate state simply yields no
// insight for the affected analysis.
func Generate(expenses []models.Expense, goals []models.Goal, profile models.UserProfile, now time.Time) []Insight {
	insights := []Insight{}

	insights = append(insights, analyzeSpendingPattern(expenses)...)
	insights = append(insights, analyzeBudgetHealth(expenses, profile, now)...)
	insights = append(insights, analyzeGoalProgress(goals, now)...)
	insights = append(insights, projectSpending(expenses, profile)...)

	return insights
}

// analyzeSpendingPattern warns when a single category dominates the
// overall spending with more than 40% of the total.
func analyzeSpendingPattern(expenses []models.Expense) []Insight {
	totals := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
		total = total.Add(expense.Amount)
	}

	if !total.IsPositive() {
		return nil
	}

	// The categories are checked in their canonical order so that ties
	// resolve the same way on every run. Labels outside of the fixed
	// set, e.g. from imported data, are checked afterwards in
	// lexicographic order.
	maxCategory := ""
	maxTotal := decimal.Zero
	for _, name := range categoryOrder(totals) {
		if totals[name].GreaterThan(maxTotal) {
			maxCategory = name
			maxTotal = totals[name]
		}
	}

	if !maxTotal.GreaterThan(total.Mul(decimal.NewFromFloat(0.4))) {
		return nil
	}

	share := maxTotal.Div(total).Mul(decimal.NewFromInt(100)).Round(0)

	// A Caser cannot be used concurrently, so one is created per call
	titleCaser := cases.Title(language.English)

	return []Insight{{
		Type:     TypeWarning,
		Title:    "High Category Spending",
		Message:  fmt.Sprintf("%s accounts for %s%% of your spending. Consider diversifying your expenses.", titleCaser.String(maxCategory), share),
		Priority: PriorityHigh,
	}}
}

// analyzeBudgetHealth checks the spending of the current month against
// the monthly budget. Only the most severe of the two thresholds fires.
func analyzeBudgetHealth(expenses []models.Expense, profile models.UserProfile, now time.Time) []Insight {
	if !profile.MonthlyBudget.IsPositive() {
		return nil
	}

	month := types.MonthOf(now)

	monthlyExpenses := decimal.Zero
	for _, expense := range expenses {
		if month.Contains(expense.Date) {
			monthlyExpenses = monthlyExpenses.Add(expense.Amount)
		}
	}

	usage := monthlyExpenses.Div(profile.MonthlyBudget).Mul(decimal.NewFromInt(100))

	if usage.GreaterThan(decimal.NewFromInt(90)) {
		return []Insight{{
			Type:     TypeError,
			Title:    "Budget Exceeded",
			Message:  fmt.Sprintf("You've used %s%% of your monthly budget. Immediate action required!", usage.StringFixed(1)),
			Priority: PriorityHigh,
		}}
	}

	if usage.GreaterThan(decimal.NewFromInt(75)) {
		return []Insight{{
			Type:     TypeWarning,
			Title:    "Budget Alert",
			Message:  fmt.Sprintf("You've used %s%% of your monthly budget. Consider reducing expenses.", usage.StringFixed(1)),
			Priority: PriorityMedium,
		}}
	}

	return nil
}

// analyzeGoalProgress warns for every goal that is less than 80%
// complete with less than 30 days to its deadline. Goals past their
// deadline qualify as well, their days left are negative.
func analyzeGoalProgress(goals []models.Goal, now time.Time) []Insight {
	var insights []Insight

	for _, goal := range goals {
		if !goal.TargetAmount.IsPositive() {
			continue
		}

		progress := goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100))
		daysLeft := int(math.Ceil(goal.Deadline.Sub(now).Hours() / 24))

		if daysLeft < 30 && progress.LessThan(decimal.NewFromInt(80)) {
			insights = append(insights, Insight{
				Type:     TypeWarning,
				Title:    "Goal At Risk",
				Message:  fmt.Sprintf("Your %q goal is %s%% complete with only %d days left.", goal.Name, progress.StringFixed(1), daysLeft),
				Priority: PriorityMedium,
			})
		}
	}

	return insights
}

// projectSpending extrapolates the most recent expenses to a monthly
// total and warns when that projection exceeds the monthly budget.
func projectSpending(expenses []models.Expense, profile models.UserProfile) []Insight {
	if len(expenses) == 0 || !profile.MonthlyBudget.IsPositive() {
		return nil
	}

	sample := expenses
	if len(sample) > projectionSampleSize {
		sample = sample[:projectionSampleSize]
	}

	sum := decimal.Zero
	for _, expense := range sample {
		sum = sum.Add(expense.Amount)
	}

	avgDaily := sum.Div(decimal.NewFromInt(int64(len(sample))))
	projected := avgDaily.Mul(decimal.NewFromInt(30))

	if !projected.GreaterThan(profile.MonthlyBudget) {
		return nil
	}

	overage := projected.Sub(profile.MonthlyBudget)

	return []Insight{{
		Type:     TypeWarning,
		Title:    "Spending Projection",
		Message:  fmt.Sprintf("Based on recent patterns, you're projected to spend ₹%s this month, exceeding your budget by ₹%s.", projected.Round(0), overage.Round(0)),
		Priority: PriorityHigh,
	}}
}

// categoryOrder returns the keys of the totals in a stable order, the
// fixed categories first, unknown labels afterwards.
func categoryOrder(totals map[string]decimal.Decimal) []string {
	order := make([]string, 0, len(totals))
	for _, c := range category.All {
		if _, ok := totals[string(c)]; ok {
			order = append(order, string(c))
		}
	}

	var unknown []string
	for name := range totals {
		if !category.Valid(category.Category(name)) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	return append(order, unknown...)
}
