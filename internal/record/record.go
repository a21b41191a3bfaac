// Package record assembles, validates, and serializes the extracted
// tender record.
package record

import (
	"github.com/procureparse/tender-extractor/constants"
	"github.com/procureparse/tender-extractor/internal/fields"
	"github.com/procureparse/tender-extractor/internal/ner"
)

// Field order below is the serialization order; keep it stable so repeat
// runs produce byte-identical output.

type TenderInfo struct {
	ReferenceNumber  string `json:"reference_number"`
	Title            string `json:"title"`
	IssuingAuthority string `json:"issuing_authority"`
	Location         string `json:"location"`
}

type TimelineInfo struct {
	StartDate                 string `json:"start_date"`
	EndDate                   string `json:"end_date"`
	PhysicalSubmissionEndDate string `json:"physical_submission_end_date"`
	TechnicalBidOpening       string `json:"technical_bid_opening"`
}

type FinancialInfo struct {
	TenderFee string `json:"tender_fee"`
	EMD       string `json:"emd"`
}

type EligibilityInfo struct {
	Eligibility string `json:"eligibility"`
}

type TechnicalInfo struct {
	TechnicalSpecifications string `json:"technical_specifications"`
}

type ContactInfo struct {
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// Record is the single output of one extraction run.
type Record struct {
	TenderInfo      TenderInfo      `json:"tender_info"`
	TimelineInfo    TimelineInfo    `json:"timeline_info"`
	FinancialInfo   FinancialInfo   `json:"financial_info"`
	EligibilityInfo EligibilityInfo `json:"eligibility_info"`
	TechnicalInfo   TechnicalInfo   `json:"technical_info"`
	ContactInfo     ContactInfo     `json:"contact_info"`
}

// Build merges the regex results with the recognized entity spans.
// Regex owns every field it has a pattern for; the NER-only fields
// (issuing authority, location) take the highest-scoring span of their
// group and fall back to the sentinel.
func Build(fr fields.Result, ents []ner.Entity) Record {
	rec := Record{
		TenderInfo: TenderInfo{
			ReferenceNumber:  fr.ReferenceNumber,
			Title:            fr.Title,
			IssuingAuthority: constants.NotFound,
			Location:         constants.NotFound,
		},
		TimelineInfo: TimelineInfo{
			StartDate:                 fr.StartDate,
			EndDate:                   fr.EndDate,
			PhysicalSubmissionEndDate: fr.PhysicalSubmissionEndDate,
			TechnicalBidOpening:       fr.TechnicalBidOpening,
		},
		FinancialInfo: FinancialInfo{
			TenderFee: fr.TenderFee,
			EMD:       fr.EMD,
		},
		EligibilityInfo: EligibilityInfo{
			Eligibility: fr.Eligibility,
		},
		TechnicalInfo: TechnicalInfo{
			TechnicalSpecifications: fr.TechnicalSpecifications,
		},
		ContactInfo: ContactInfo{
			Emails:       fr.Emails,
			PhoneNumbers: fr.PhoneNumbers,
		},
	}
	if rec.ContactInfo.Emails == nil {
		rec.ContactInfo.Emails = []string{}
	}
	if rec.ContactInfo.PhoneNumbers == nil {
		rec.ContactInfo.PhoneNumbers = []string{}
	}

	if org, ok := ner.BestByGroup(ents, ner.GroupOrganization); ok {
		rec.TenderInfo.IssuingAuthority = org.Word
	}
	if loc, ok := ner.BestByGroup(ents, ner.GroupLocation); ok {
		rec.TenderInfo.Location = loc.Word
	}
	return rec
}
