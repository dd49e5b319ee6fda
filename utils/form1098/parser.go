package form1098

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/utils"
)

const (
	requiredFields  = 7
	confidenceBonus = 0.15
	maxNameLength   = 120
)

var (
	lenderRegex   = regexp.MustCompile(`(?i)(?:Lender|Recipient)\s*(?:name)?[:\s]+([^\n]+)`)
	payerRegex    = regexp.MustCompile(`(?i)(?:Payer|Borrower)\s*(?:name)?[:\s]+([^\n]+)`)
	borrowerRegex = regexp.MustCompile(`(?i)Borrower\s*(?:name)?[:\s]+([^\n]+)`)
)

var amountFields = []utils.FieldSpec[dto.Form1098Record]{
	utils.NewFieldSpec("mortgage_interest_received",
		`1\.?\s*Mortgage\s+interest\s+received|Mortgage\s+interest\s+received`,
		func(r *dto.Form1098Record, v *float64) { r.MortgageInterestReceived = v }),
	utils.NewFieldSpec("points_paid",
		`6\.?\s*Points\s+paid\s+on\s+purchase\s+of\s+principal\s+residence|Points\s+paid`,
		func(r *dto.Form1098Record, v *float64) { r.PointsPaid = v }),
	utils.NewFieldSpec("mortgage_insurance_premiums",
		`5\.?\s*Mortgage\s+insurance\s+premiums|Mortgage\s+insurance\s+premiums`,
		func(r *dto.Form1098Record, v *float64) { r.MortgageInsurancePremiums = v }),
	utils.NewFieldSpec("real_estate_taxes",
		`10\.?\s*Other|Real\s+estate\s+taxes`,
		func(r *dto.Form1098Record, v *float64) { r.RealEstateTaxes = v }),
	utils.NewFieldSpec("mortgage_principal_outstanding",
		`2\.?\s*Outstanding\s+mortgage\s+principal|Outstanding\s+mortgage\s+principal`,
		func(r *dto.Form1098Record, v *float64) { r.MortgagePrincipalOutstanding = v }),
}

// ParseForm1098 extracts Form 1098 mortgage interest fields from raw document text.
func ParseForm1098(text string) dto.Form1098Record {
	text = utils.NormalizeText(text)

	record := dto.Form1098Record{
		Year:          utils.DetectYear(text),
		LenderName:    utils.ExtractTextField(lenderRegex, text),
		PayerName:     utils.ExtractTextField(payerRegex, text),
		BorrowerNames: borrowerNames(text),
	}

	populated := utils.ApplyFieldSpecs(&record, amountFields, text)
	if record.LenderName != nil {
		populated++
	}
	if record.PayerName != nil {
		populated++
	}
	record.Confidence = utils.FieldConfidence(populated, requiredFields, confidenceBonus)

	return record
}

func borrowerNames(text string) []string {
	names := []string{}
	for _, m := range borrowerRegex.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if r := []rune(name); len(r) > maxNameLength {
			name = strings.TrimSpace(string(r[:maxNameLength]))
		}
		names = append(names, name)
	}
	return names
}
