package trades

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/utils"
)

const (
	pageBreak            = "\f"
	unknownSecurity      = "UNKNOWN SECURITY"
	washSaleCode         = "W"
	shortTermMaxDays     = 365
	minAmountsPerTrade   = 2
	washSaleAmountColumn = 2
)

var (
	dateRegex          = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	tradeAmountRegex   = regexp.MustCompile(`\(?-?\$?\s*(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?\)?`)
	parenIdentRegex    = regexp.MustCompile(`\(([A-Z]{1,6}|[A-Z0-9]{9})\)`)
	trailingIdentRegex = regexp.MustCompile(`\b([A-Z]{1,5})$`)
)

// Tried in order.
var dateLayouts = []string{"1/2/2006", "1/2/06", dto.DateLayout}

// Diagnostics counts lines that looked like trades against lines that produced one.
type Diagnostics struct {
	RowCandidates int `json:"row_candidates"`
	ParsedRows    int `json:"parsed_rows"`
}

// ParseTrades scans 1099-B text line by line and returns one TradeRecord per trade row, in
// line order. Section headers such as "Short-Term Transactions for which basis is reported to
// the IRS" set the holding period and basis status for the rows that follow them.
//
// When the text carries form-feed page breaks each trade records its 1-based page.
func ParseTrades(text string, brokerName *string, sourceFile, sourceSHA256 string) ([]dto.TradeRecord, Diagnostics) {
	var diag Diagnostics
	trades := []dto.TradeRecord{}

	pages := strings.Split(text, pageBreak)
	paged := len(pages) > 1

	ctx := NewSectionContext()
	for i, page := range pages {
		var sourcePage *int
		if paged {
			n := i + 1
			sourcePage = &n
		}

		for _, line := range strings.Split(utils.NormalizeText(page), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			ctx = ctx.Advance(line)

			dates := dateRegex.FindAllStringIndex(line, -1)
			if len(dates) < 2 {
				continue
			}
			diag.RowCandidates++

			trade, ok := parseTradeLine(line, dates, ctx)
			if !ok {
				continue
			}
			trade.BrokerName = brokerName
			trade.SourceFile = sourceFile
			trade.SourceSHA256 = sourceSHA256
			trade.SourcePage = sourcePage

			diag.ParsedRows++
			trades = append(trades, trade)
		}
	}

	return trades, diag
}

func parseTradeLine(line string, dates [][]int, ctx SectionContext) (dto.TradeRecord, bool) {
	amounts := amountsAfter(line[dates[1][1]:])
	if len(amounts) < minAmountsPerTrade {
		return dto.TradeRecord{}, false
	}

	acquired := parseDate(line[dates[0][0]:dates[0][1]])
	sold := parseDate(line[dates[1][0]:dates[1][1]])
	description, identifier := describe(line[:dates[0][0]])

	proceeds := amounts[0]
	costBasis := amounts[1]

	trade := dto.TradeRecord{
		Description:        description,
		SecurityIdentifier: identifier,
		DateAcquired:       acquired,
		DateSold:           sold,
		ProceedsGross:      &proceeds,
		CostBasis:          &costBasis,
		RawTradeLine:       line,
	}

	if len(amounts) > washSaleAmountColumn {
		wash := amounts[washSaleAmountColumn]
		trade.WashSaleAmount = &wash
		if wash != 0 {
			code := washSaleCode
			trade.WashSaleCode = &code
			trade.AdjustmentCode = &code
			trade.AdjustmentAmount = -math.Abs(wash)
		}
	}
	trade.RealizedGainLoss = utils.RoundCents(proceeds - costBasis + trade.AdjustmentAmount)

	trade.HoldingPeriod = ctx.HoldingPeriod
	if trade.HoldingPeriod == dto.HoldingUnknown {
		trade.HoldingPeriod = deriveHoldingPeriod(acquired, sold)
	}
	trade.BasisReported = ctx.BasisReported
	trade.Form8949Box = form8949Box(trade.HoldingPeriod, trade.BasisReported)

	return trade, true
}

// amountsAfter reads the money tokens that follow the disposition date, so the dates
// themselves are never mistaken for amounts.
func amountsAfter(tail string) []float64 {
	amounts := []float64{}
	for _, token := range tradeAmountRegex.FindAllString(tail, -1) {
		value, err := utils.ParseAmount(token)
		if err != nil {
			continue
		}
		amounts = append(amounts, value)
	}
	return amounts
}

func parseDate(token string) *time.Time {
	token = strings.TrimSpace(token)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return &t
		}
	}
	return nil
}

// describe splits the text before the first date into a description and, when one can be
// found, a ticker or CUSIP.
func describe(prefix string) (string, *string) {
	description := strings.Trim(prefix, " -\t")
	if description == "" {
		description = unknownSecurity
	}

	if m := parenIdentRegex.FindStringSubmatch(description); m != nil {
		return description, &m[1]
	}
	if m := trailingIdentRegex.FindStringSubmatch(description); m != nil {
		return description, &m[1]
	}
	return description, nil
}

func deriveHoldingPeriod(acquired, sold *time.Time) dto.HoldingPeriod {
	if acquired == nil || sold == nil {
		return dto.HoldingUnknown
	}
	days := int(sold.Sub(*acquired).Hours() / 24)
	if days <= shortTermMaxDays {
		return dto.HoldingShort
	}
	return dto.HoldingLong
}

func form8949Box(period dto.HoldingPeriod, basis dto.BasisReporting) string {
	switch period {
	case dto.HoldingShort:
		switch basis {
		case dto.BasisCovered:
			return "A"
		case dto.BasisNoncovered:
			return "B"
		default:
			return "C"
		}
	case dto.HoldingLong:
		switch basis {
		case dto.BasisCovered:
			return "D"
		case dto.BasisNoncovered:
			return "E"
		default:
			return "F"
		}
	}
	return ""
}
