package record

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX renders the record as an XLSX workbook (as bytes) with one
// Section / Field / Value row per extracted field.
func ExportXLSX(rec Record, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Tender"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Section", "Field", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	write := func(section, field, value string) {
		for col, v := range []string{section, field, value} {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	write("tender_info", "reference_number", rec.TenderInfo.ReferenceNumber)
	write("tender_info", "title", rec.TenderInfo.Title)
	write("tender_info", "issuing_authority", rec.TenderInfo.IssuingAuthority)
	write("tender_info", "location", rec.TenderInfo.Location)

	write("timeline_info", "start_date", rec.TimelineInfo.StartDate)
	write("timeline_info", "end_date", rec.TimelineInfo.EndDate)
	write("timeline_info", "physical_submission_end_date", rec.TimelineInfo.PhysicalSubmissionEndDate)
	write("timeline_info", "technical_bid_opening", rec.TimelineInfo.TechnicalBidOpening)

	write("financial_info", "tender_fee", rec.FinancialInfo.TenderFee)
	write("financial_info", "emd", rec.FinancialInfo.EMD)

	write("eligibility_info", "eligibility", rec.EligibilityInfo.Eligibility)
	write("technical_info", "technical_specifications", rec.TechnicalInfo.TechnicalSpecifications)

	write("contact_info", "emails", strings.Join(rec.ContactInfo.Emails, ", "))
	write("contact_info", "phone_numbers", strings.Join(rec.ContactInfo.PhoneNumbers, ", "))

	// Widen the columns so values are readable without resizing.
	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "C", "C", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"rows", row-1,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
