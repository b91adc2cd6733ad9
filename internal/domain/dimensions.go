package domain

// MerchantCategory defines a merchant vertical with its sampling weight
// and model parameters.
type MerchantCategory struct {
	Name      string
	Weight    float64 // selection probability (weights sum to 1)
	AvgAmount float64 // anchor for log-normal amount synthesis (USD)
	FailBase  float64 // base failure rate before geo/method multipliers
}

// Geography defines a region with its sampling weight, failure
// multiplier and settlement currency.
type Geography struct {
	Name     string
	Weight   float64
	FailMult float64
	Currency string
}

// PaymentMethod defines a payment instrument with its sampling weight
// and failure multiplier.
type PaymentMethod struct {
	Name     string
	Weight   float64
	FailMult float64
}

// Predefined dimension tables. Order matters: samplers index into these
// slices, so reordering changes the output for a given seed.
var (
	MerchantCategories = []MerchantCategory{
		{Name: "E-commerce", Weight: 0.28, AvgAmount: 85, FailBase: 0.09},
		{Name: "SaaS/Subscription", Weight: 0.18, AvgAmount: 55, FailBase: 0.06},
		{Name: "Travel", Weight: 0.12, AvgAmount: 420, FailBase: 0.13},
		{Name: "Retail", Weight: 0.14, AvgAmount: 65, FailBase: 0.07},
		{Name: "Marketplaces", Weight: 0.10, AvgAmount: 140, FailBase: 0.11},
		{Name: "Gaming", Weight: 0.08, AvgAmount: 25, FailBase: 0.10},
		{Name: "Healthcare", Weight: 0.06, AvgAmount: 310, FailBase: 0.05},
		{Name: "Food & Delivery", Weight: 0.04, AvgAmount: 38, FailBase: 0.08},
	}

	Geographies = []Geography{
		{Name: "US", Weight: 0.42, FailMult: 1.00, Currency: "USD"},
		{Name: "EU", Weight: 0.20, FailMult: 0.90, Currency: "EUR"},
		{Name: "UK", Weight: 0.10, FailMult: 0.92, Currency: "GBP"},
		{Name: "IN", Weight: 0.08, FailMult: 1.35, Currency: "INR"},
		{Name: "BR", Weight: 0.06, FailMult: 1.45, Currency: "BRL"},
		{Name: "SG", Weight: 0.05, FailMult: 0.85, Currency: "SGD"},
		{Name: "CA", Weight: 0.05, FailMult: 0.95, Currency: "CAD"},
		{Name: "AU", Weight: 0.04, FailMult: 0.88, Currency: "AUD"},
	}

	PaymentMethods = []PaymentMethod{
		{Name: "Credit Card", Weight: 0.38, FailMult: 0.90},
		{Name: "Debit Card", Weight: 0.25, FailMult: 1.10},
		{Name: "Digital Wallet", Weight: 0.18, FailMult: 0.75},
		{Name: "Bank Transfer", Weight: 0.10, FailMult: 1.20},
		{Name: "BNPL", Weight: 0.09, FailMult: 1.40},
	}
)

// CurrencyFor returns the settlement currency of a geography.
// The mapping is deterministic: currency carries no independent randomness.
func CurrencyFor(geography string) (string, bool) {
	for _, g := range Geographies {
		if g.Name == geography {
			return g.Currency, true
		}
	}
	return "", false
}
