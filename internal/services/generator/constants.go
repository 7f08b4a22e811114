package generator

// Catalogs used by the synthesizers. Values are drawn uniformly unless a
// weighted sampler is named at the call site.
var (
	PaymentMethods = []string{"CREDIT_CARD", "DEBIT_CARD", "BANK_TRANSFER", "PAYPAL", "CRYPTO", "WALLET"}

	BusinessTypes = []string{"E-COMMERCE", "RETAIL", "SUBSCRIPTION", "MARKETPLACE", "FINANCIAL_SERVICES", "TRAVEL"}

	Countries = []string{"USA", "UK", "CANADA", "GERMANY", "FRANCE", "INDIA", "SINGAPORE", "AUSTRALIA"}

	FailureReasons = []string{
		"Insufficient funds",
		"Card declined",
		"Authentication failed",
		"Network timeout",
		"Invalid card details",
		"Fraud detection triggered",
		"Daily limit exceeded",
	}
)

const (
	// DefaultCurrency is the only currency the generator emits.
	DefaultCurrency = "USD"

	// TransactionWindowDays is the trailing window transaction timestamps
	// are spread over, ending at generation time.
	TransactionWindowDays = 90

	creditScoreMin = 300
	creditScoreMax = 850

	commissionRateMin = 1.5
	commissionRateMax = 5.0

	outlierProbability = 0.05
	outlierAmountMin   = 5000.0
	outlierAmountMax   = 50000.0
	regularAmountMin   = 10.0
	regularAmountMax   = 2000.0

	suspiciousRiskThreshold   = 75.0
	suspiciousAmountThreshold = 10000.0
)
