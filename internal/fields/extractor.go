package fields

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/procureparse/tender-extractor/constants"
	"github.com/procureparse/tender-extractor/internal/pdfdoc"
)

// Extractor runs the fixed pattern set over a loaded document.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract applies every field group's patterns. Absent matches yield the
// sentinel value, never an error.
func (e *Extractor) Extract(doc pdfdoc.Document) Result {
	res := Result{
		ReferenceNumber:           constants.NotFound,
		Title:                     "Title not found",
		StartDate:                 constants.NotFound,
		EndDate:                   constants.NotFound,
		PhysicalSubmissionEndDate: constants.NotFound,
		TechnicalBidOpening:       constants.NotFound,
		TenderFee:                 constants.NotFound,
		EMD:                       constants.NotFound,
		Eligibility:               "Eligibility criteria not found",
		TechnicalSpecifications:   constants.NotFound,
		Emails:                    []string{},
		PhoneNumbers:              []string{},
	}

	e.extractTenderInfo(doc.Text, &res)
	e.extractTimeline(doc.Text, doc.Tables, &res)
	e.extractFinancial(doc.Tables, &res)
	e.extractEligibility(doc.Text, &res)
	e.extractTechnical(doc.Text, &res)
	e.extractContact(doc.Text, &res)

	e.logger.Debug("fields.extracted",
		"reference", res.ReferenceNumber,
		"emails", len(res.Emails),
		"phones", len(res.PhoneNumbers),
	)
	return res
}

func (e *Extractor) extractTenderInfo(text string, res *Result) {
	if m := refNumberRe.FindStringSubmatch(text); m != nil {
		res.ReferenceNumber = m[1]
	}
	if m := titleRe.FindStringSubmatch(text); m != nil {
		// Titles can wrap across extracted lines.
		res.Title = CleanText(m[1])
	}
}

func (e *Extractor) extractTimeline(text string, tables []pdfdoc.Table, res *Result) {
	if m := startDateRe.FindStringSubmatch(text); m != nil {
		res.StartDate = m[1]
	}
	if m := endDateRe.FindStringSubmatch(text); m != nil {
		res.EndDate = m[1]
	}
	if m := physicalSubRe.FindStringSubmatch(text); m != nil {
		res.PhysicalSubmissionEndDate = m[1]
	}

	// The technical bid opening date lives in a schedule table, on the row
	// that names the event.
	for _, table := range tables {
		for _, row := range table {
			if !rowContains(row, bidOpeningMarker) {
				continue
			}
			for _, cell := range row {
				if tableDateCellRe.MatchString(cell) {
					res.TechnicalBidOpening = strings.TrimSpace(cell)
					return
				}
			}
		}
	}
}

// extractFinancial expects the fee schedule as a wide table row with the
// tender fee in column 4 and the EMD in column 5.
func (e *Extractor) extractFinancial(tables []pdfdoc.Table, res *Result) {
	for _, table := range tables {
		for _, row := range table {
			if len(row) < 5 {
				continue
			}
			feeCell, emdCell := row[3], row[4]
			if feeCell == "" || emdCell == "" {
				continue
			}
			// Skip the header row itself.
			if strings.Contains(feeCell, "Tender Fee") && strings.Contains(emdCell, "EMD") {
				continue
			}
			if m := tenderFeeRe.FindStringSubmatch(feeCell); m != nil {
				res.TenderFee = CleanText(m[1])
			}
			if m := emdRe.FindStringSubmatch(emdCell); m != nil {
				res.EMD = CleanText(m[1])
			}
		}
	}
}

func (e *Extractor) extractEligibility(text string, res *Result) {
	m := eligibilityRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	eligibility := CleanText(m[1])
	// Strip clause numbering so the criteria read as one block.
	eligibility = listNumberingRe.ReplaceAllString(eligibility, "")
	res.Eligibility = eligibility
}

func (e *Extractor) extractTechnical(text string, res *Result) {
	if m := technicalSpecsRe.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			res.TechnicalSpecifications = v
		}
	}
}

// extractContact collects every email and phone hit, de-duplicated and
// sorted so repeat runs serialize identically.
func (e *Extractor) extractContact(text string, res *Result) {
	res.Emails = dedupeSorted(emailRe.FindAllString(text, -1))
	res.PhoneNumbers = dedupeSorted(phoneRe.FindAllString(text, -1))
}

func rowContains(row []string, marker string) bool {
	for _, cell := range row {
		if strings.Contains(cell, marker) {
			return true
		}
	}
	return false
}

func dedupeSorted(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
