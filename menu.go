package mensafeed

// PriceRole identifies one of the three consumer classes that can carry a
// distinct price for the same meal.
type PriceRole string

// Price roles in feed order. A price line maps to them positionally.
const (
	PriceRoleStudents  PriceRole = "students"
	PriceRoleEmployees PriceRole = "employees"
	PriceRoleOthers    PriceRole = "others"
)

// PriceRoles lists the roles in the order they appear on a price line and
// in the rendered feed.
var PriceRoles = []PriceRole{PriceRoleStudents, PriceRoleEmployees, PriceRoleOthers}

// Prices holds the per-role amounts for one meal. A nil entry means the
// tier was missing from the page or its token did not parse.
type Prices struct {
	Students  *float64
	Employees *float64
	Others    *float64
}

// ByRole returns the amount for the given role, or nil when absent.
func (p Prices) ByRole(role PriceRole) *float64 {
	switch role {
	case PriceRoleStudents:
		return p.Students
	case PriceRoleEmployees:
		return p.Employees
	case PriceRoleOthers:
		return p.Others
	}
	return nil
}

// Meal represents one dish offered within a day.
type Meal struct {
	// Category is the grouping label, either verbatim from the page or
	// the canonical label for numbered dish slots.
	Category string

	// Name is the dish title, the first non-empty line of the entry body.
	Name string

	// Notes are free-text annotations: parenthesized note groups first,
	// then residual body lines, in page order.
	Notes []string

	// Allergens are the short codes from letterless parenthesized groups.
	Allergens []string

	Prices Prices
}

// Validate returns an error if the meal contains invalid fields.
func (m *Meal) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "meal name required")
	}
	if m.Category == "" {
		return Errorf(EINVALID, "meal category required")
	}
	return nil
}

// Day represents one calendar day's menu.
type Day struct {
	// Date is the ISO-8601 calendar date. Empty when the page header's
	// day/month did not combine with the inferred year into a real date.
	Date string

	// Weekday is the weekday name as written on the page. It is not
	// validated against Date.
	Weekday string

	// Meals in page order.
	Meals []*Meal
}

// Dated reports whether the day resolved to a calendar date. Undated days
// are excluded from the rendered feed but still count toward the
// week-coverage tally.
func (d *Day) Dated() bool {
	return d.Date != ""
}

// CountDated returns the number of days with a resolved date.
func CountDated(days []*Day) int {
	n := 0
	for _, d := range days {
		if d.Dated() {
			n++
		}
	}
	return n
}
