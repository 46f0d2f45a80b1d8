package reporting

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
)

// Progress returns current/target as a percentage clamped to [0, 100].
// A non-positive target yields zero.
func Progress(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() || !current.IsPositive() {
		return decimal.Zero
	}
	pct := current.Mul(hundred).Div(target)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
