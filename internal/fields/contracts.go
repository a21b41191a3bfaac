// Package fields applies the fixed regular-expression set to tender
// document text and tables.
package fields

// Result holds everything the regex pass recovers from one document.
// Scalar fields default to the constants.NotFound sentinel; the email and
// phone lists are always non-nil.
type Result struct {
	ReferenceNumber string
	Title           string

	StartDate                 string
	EndDate                   string
	PhysicalSubmissionEndDate string
	TechnicalBidOpening       string

	TenderFee string
	EMD       string

	Eligibility             string
	TechnicalSpecifications string

	Emails       []string
	PhoneNumbers []string
}
