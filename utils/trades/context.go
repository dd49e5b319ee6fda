package trades

import (
	"strings"

	"github.com/Aashish23092/tax-document-extraction/dto"
)

// SectionContext is the holding period and basis-reporting status declared by the most
// recent section header. It belongs to a single document pass.
type SectionContext struct {
	HoldingPeriod dto.HoldingPeriod
	BasisReported dto.BasisReporting
}

func NewSectionContext() SectionContext {
	return SectionContext{
		HoldingPeriod: dto.HoldingUnknown,
		BasisReported: dto.BasisUnknown,
	}
}

// Advance returns the context in effect after line. Lines that are not headers leave it
// unchanged.
func (c SectionContext) Advance(line string) SectionContext {
	low := strings.ToLower(line)

	if strings.Contains(low, "short-term") {
		c.HoldingPeriod = dto.HoldingShort
	} else if strings.Contains(low, "long-term") {
		c.HoldingPeriod = dto.HoldingLong
	}

	if strings.Contains(low, "basis") && strings.Contains(low, "reported") {
		if strings.Contains(low, "not reported") || strings.Contains(low, "noncovered") {
			c.BasisReported = dto.BasisNoncovered
		} else {
			c.BasisReported = dto.BasisCovered
		}
	}

	return c
}
