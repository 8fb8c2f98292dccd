package accounting

import "github.com/shopspring/decimal"

// NetBalance combines the two aggregate sums of an account. Either side may be
// nil when the account has no rows of that kind.
func NetBalance(credits, debits *decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	if credits != nil {
		total = total.Add(*credits)
	}
	if debits != nil {
		total = total.Sub(*debits)
	}
	return total
}
