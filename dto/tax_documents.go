package dto

type DocType string

const (
	DocTypeW2            DocType = "w2"
	DocTypeBrokerage1099 DocType = "brokerage_1099"
	DocTypeForm1098      DocType = "form_1098"
	DocTypeUnknown       DocType = "unknown"
)

// ClassificationResult is the outcome of scoring one document against the known form types.
type ClassificationResult struct {
	DocType      DocType `json:"doc_type"`
	Confidence   float64 `json:"confidence"`
	DetectedYear *int    `json:"detected_year,omitempty"`
}

// W2Record holds the fields read from a Form W-2 (Wage and Tax Statement).
type W2Record struct {
	EmployerName       *string            `json:"employer_name"`
	EmployerEIN        *string            `json:"employer_ein"`
	Year               *int               `json:"year"`
	Box1Wages          *float64           `json:"box1_wages"`
	Box2FedWithholding *float64           `json:"box2_fed_withholding"`
	Box3SSWages        *float64           `json:"box3_ss_wages"`
	Box4SSTax          *float64           `json:"box4_ss_tax"`
	Box5MedicareWages  *float64           `json:"box5_medicare_wages"`
	Box6MedicareTax    *float64           `json:"box6_medicare_tax"`
	Box12              map[string]float64 `json:"box12"`
	Box16StateWages    *float64           `json:"box16_state_wages"`
	Box17StateTax      *float64           `json:"box17_state_tax"`
	States             []string           `json:"states"`
	Confidence         float64            `json:"confidence"`
}

// BSummary is the 1099-B subtotal block of a composite brokerage statement.
type BSummary struct {
	Proceeds          *float64 `json:"proceeds"`
	CostBasis         *float64 `json:"cost_basis"`
	WashSales         *float64 `json:"wash_sales"`
	ShortTermGainLoss *float64 `json:"short_term_gain_loss"`
	LongTermGainLoss  *float64 `json:"long_term_gain_loss"`
}

// Brokerage1099Summary holds the 1099-DIV, 1099-INT and 1099-B summary figures of a
// composite brokerage statement.
type Brokerage1099Summary struct {
	BrokerName              *string  `json:"broker_name"`
	Year                    *int     `json:"year"`
	DivOrdinary             *float64 `json:"div_ordinary"`
	DivQualified            *float64 `json:"div_qualified"`
	DivCapGainDistributions *float64 `json:"div_cap_gain_distributions"`
	DivForeignTaxPaid       *float64 `json:"div_foreign_tax_paid"`
	IntInterestIncome       *float64 `json:"int_interest_income"`
	IntUSTreasury           *float64 `json:"int_us_treasury"`
	BSummary                BSummary `json:"b_summary"`
	Confidence              float64  `json:"confidence"`
}

// Form1098Record holds the fields read from a Form 1098 (Mortgage Interest Statement).
type Form1098Record struct {
	LenderName                   *string  `json:"lender_name"`
	PayerName                    *string  `json:"payer_name"`
	BorrowerNames                []string `json:"borrower_names"`
	Year                         *int     `json:"year"`
	MortgageInterestReceived     *float64 `json:"mortgage_interest_received"`
	PointsPaid                   *float64 `json:"points_paid"`
	MortgageInsurancePremiums    *float64 `json:"mortgage_insurance_premiums"`
	RealEstateTaxes              *float64 `json:"real_estate_taxes"`
	MortgagePrincipalOutstanding *float64 `json:"mortgage_principal_outstanding"`
	Confidence                   float64  `json:"confidence"`
}

// UnknownDocument records a file that could not be classified.
type UnknownDocument struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}
