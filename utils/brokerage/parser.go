package brokerage

import (
	"regexp"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/utils"
)

const confidenceBonus = 0.15

var brokerRegex = regexp.MustCompile(`(?i)(?:Broker|Payer|Financial Institution)[:\s]+(.+)`)

var dividendInterestFields = []utils.FieldSpec[dto.Brokerage1099Summary]{
	utils.NewFieldSpec("div_ordinary", `ordinary\s+dividends`,
		func(r *dto.Brokerage1099Summary, v *float64) { r.DivOrdinary = v }),
	utils.NewFieldSpec("div_qualified", `qualified\s+dividends`,
		func(r *dto.Brokerage1099Summary, v *float64) { r.DivQualified = v }),
	utils.NewFieldSpec("div_cap_gain_distributions", `capital\s+gain\s+distributions`,
		func(r *dto.Brokerage1099Summary, v *float64) { r.DivCapGainDistributions = v }),
	utils.NewFieldSpec("div_foreign_tax_paid", `foreign\s+tax\s+paid`,
		func(r *dto.Brokerage1099Summary, v *float64) { r.DivForeignTaxPaid = v }),
	utils.NewFieldSpec("int_interest_income", `interest\s+income`,
		func(r *dto.Brokerage1099Summary, v *float64) { r.IntInterestIncome = v }),
	utils.NewFieldSpec("int_us_treasury", `us\s+treasury\s+interest|treasury\s+obligations`,
		func(r *dto.Brokerage1099Summary, v *float64) { r.IntUSTreasury = v }),
}

var summaryFields = []utils.FieldSpec[dto.BSummary]{
	utils.NewFieldSpec("proceeds", `total\s+proceeds`,
		func(s *dto.BSummary, v *float64) { s.Proceeds = v }),
	utils.NewFieldSpec("cost_basis", `cost\s+basis`,
		func(s *dto.BSummary, v *float64) { s.CostBasis = v }),
	utils.NewFieldSpec("wash_sales", `wash\s+sale`,
		func(s *dto.BSummary, v *float64) { s.WashSales = v }),
	utils.NewFieldSpec("short_term_gain_loss", `short[-\s]term\s+(?:gain|loss)`,
		func(s *dto.BSummary, v *float64) { s.ShortTermGainLoss = v }),
	utils.NewFieldSpec("long_term_gain_loss", `long[-\s]term\s+(?:gain|loss)`,
		func(s *dto.BSummary, v *float64) { s.LongTermGainLoss = v }),
}

// ParseSummary extracts the 1099-DIV, 1099-INT and 1099-B summary figures of a composite
// brokerage statement. Confidence counts all eleven monetary fields.
func ParseSummary(text string) dto.Brokerage1099Summary {
	text = utils.NormalizeText(text)

	summary := dto.Brokerage1099Summary{
		Year:       utils.DetectYear(text),
		BrokerName: utils.ExtractTextField(brokerRegex, text),
	}

	populated := utils.ApplyFieldSpecs(&summary, dividendInterestFields, text)
	populated += utils.ApplyFieldSpecs(&summary.BSummary, summaryFields, text)

	total := len(dividendInterestFields) + len(summaryFields)
	summary.Confidence = utils.FieldConfidence(populated, total, confidenceBonus)

	return summary
}
