package w2

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/utils"
)

const (
	requiredFields  = 8
	confidenceBonus = 0.2
)

var (
	einRegex      = regexp.MustCompile(`\b(\d{2}-\d{7})\b`)
	employerRegex = regexp.MustCompile(`(?i)Employer(?:'s)?\s+name[ \t]*(?:[^\n:]*:)?[ \t]*(\S[^\n]*)`)
	box12Regex    = regexp.MustCompile(`(?i)12[a-d]?\s*([A-Z])\s*(\(?-?\$?[\d,]+(?:\.\d{2})?\)?)`)
	stateRegex    = regexp.MustCompile(`\b([A-Z]{2})\b`)
)

// Single-letter codes the IRS defines for box 12.
var box12Codes = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true, "H": true,
	"J": true, "K": true, "L": true, "M": true, "N": true, "P": true, "Q": true, "R": true,
	"S": true, "T": true, "V": true, "W": true, "Y": true, "Z": true,
}

var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true, "DE": true,
	"FL": true, "GA": true, "HI": true, "IA": true, "ID": true, "IL": true, "IN": true, "KS": true,
	"KY": true, "LA": true, "MA": true, "MD": true, "ME": true, "MI": true, "MN": true, "MO": true,
	"MS": true, "MT": true, "NC": true, "ND": true, "NE": true, "NH": true, "NJ": true, "NM": true,
	"NV": true, "NY": true, "OH": true, "OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VA": true, "VT": true, "WA": true, "WI": true,
	"WV": true, "WY": true,
}

var boxFields = []utils.FieldSpec[dto.W2Record]{
	utils.NewFieldSpec("box1_wages", `Box\s*[1Il]|1\.?\s*Wages`,
		func(r *dto.W2Record, v *float64) { r.Box1Wages = v }),
	utils.NewFieldSpec("box2_fed_withholding",
		`2\.?\s*Federa[l1](?:\s+income\s+tax)?\s+with(?:held|holding)?|Box\s*2\s+Federa[l1](?:\s+income\s+tax)?\s+with(?:held|holding)?`,
		func(r *dto.W2Record, v *float64) { r.Box2FedWithholding = v }),
	utils.NewFieldSpec("box3_ss_wages", `Box\s*3|3\.?\s*Social\s*security\s*wages`,
		func(r *dto.W2Record, v *float64) { r.Box3SSWages = v }),
	utils.NewFieldSpec("box4_ss_tax", `Box\s*4|4\.?\s*Social\s*security\s*tax`,
		func(r *dto.W2Record, v *float64) { r.Box4SSTax = v }),
	utils.NewFieldSpec("box5_medicare_wages", `Box\s*5|5\.?\s*Medicare\s*wages`,
		func(r *dto.W2Record, v *float64) { r.Box5MedicareWages = v }),
	utils.NewFieldSpec("box6_medicare_tax", `Box\s*6|6\.?\s*Medicare\s*tax`,
		func(r *dto.W2Record, v *float64) { r.Box6MedicareTax = v }),
	utils.NewFieldSpec("box16_state_wages", `Box\s*16|16\.?\s*State\s*wages`,
		func(r *dto.W2Record, v *float64) { r.Box16StateWages = v }),
	utils.NewFieldSpec("box17_state_tax", `Box\s*17|17\.?\s*State\s*income\s*tax`,
		func(r *dto.W2Record, v *float64) { r.Box17StateTax = v }),
}

// ParseW2 extracts Form W-2 fields from raw document text.
func ParseW2(text string) dto.W2Record {
	text = utils.NormalizeText(text)

	record := dto.W2Record{
		Year:         utils.DetectYear(text),
		EmployerName: utils.ExtractTextField(employerRegex, text),
		EmployerEIN:  utils.ExtractTextField(einRegex, text),
		Box12:        parseBox12(text),
		States:       parseStates(text),
	}
	utils.ApplyFieldSpecs(&record, boxFields, text)

	populated := 0
	for _, present := range []bool{
		record.EmployerName != nil,
		record.EmployerEIN != nil,
		record.Box1Wages != nil,
		record.Box2FedWithholding != nil,
		record.Box3SSWages != nil,
		record.Box4SSTax != nil,
		record.Box5MedicareWages != nil,
		record.Box6MedicareTax != nil,
	} {
		if present {
			populated++
		}
	}
	record.Confidence = utils.FieldConfidence(populated, requiredFields, confidenceBonus)

	return record
}

// parseBox12 reads "12 <code> <amount>" pairs. Later pairs overwrite earlier ones for the
// same code; unknown codes are dropped.
func parseBox12(text string) map[string]float64 {
	codes := make(map[string]float64)
	for _, m := range box12Regex.FindAllStringSubmatch(text, -1) {
		code := strings.ToUpper(m[1])
		if !box12Codes[code] {
			continue
		}
		value, err := utils.ParseAmount(m[2])
		if err != nil {
			continue
		}
		codes[code] = value
	}
	return codes
}

func parseStates(text string) []string {
	seen := make(map[string]bool)
	states := []string{}
	for _, m := range stateRegex.FindAllStringSubmatch(text, -1) {
		code := m[1]
		if stateCodes[code] && !seen[code] {
			seen[code] = true
			states = append(states, code)
		}
	}
	sort.Strings(states)
	return states
}
