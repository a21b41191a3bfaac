package fields

import "regexp"

// Fixed extraction patterns. First match wins; there is no ranking or
// plausibility checking beyond what the expressions encode.
var (
	refNumberRe = regexp.MustCompile(`Ref\.?\s?[eE]-?Tender Notice\s?-?\s?([A-Z0-9/]+)`)
	titleRe     = regexp.MustCompile(`(?i)(?:invites e-tender for|e-tender for|purpose of)\s+(Fabrication of Machine[^.]*?Materials)`)

	startDateRe      = regexp.MustCompile(`(?:Start|Commencement)\s?Date[:\-]?\s*(\d{1,2}[./-]?\d{1,2}[./-]?\d{4})`)
	endDateRe        = regexp.MustCompile(`(?:End|Completion)\s?Date[:\-]?\s*(\d{1,2}[./-]?\d{1,2}[./-]?\d{4})`)
	physicalSubRe    = regexp.MustCompile(`(?:Physical\s?submission\s?of\s?Tender|Submission)\s?[Ee]nd\s?[Dd]ate[:\-]?\s*(\d{1,2}[./-]?\d{1,2}[./-]?\d{4})`)
	tableDateCellRe  = regexp.MustCompile(`^\d{2}.\d{2}.\d{4}`)
	bidOpeningMarker = "Opening of Technical e-Bid"

	tenderFeeRe = regexp.MustCompile(`([0-9,]+(?:\.\d{2})?)\s*(?:INR|₹|Rs|Rupees)?\s*(?:Tender\s*Fee|Fee)?`)
	emdRe       = regexp.MustCompile(`([0-9,]+(?:\.\d{2})?)\s*(?:EMD|Earnest\s*Money\s*Deposit)?`)

	eligibilityRe    = regexp.MustCompile(`(?is)(This is a domestic Tender.*?Only class ?–? I.*?eligible to participate in tender.*?)(?:\n{2,}|Annexure|Read and Accepted|Technical bid)`)
	listNumberingRe  = regexp.MustCompile(`\d+[.\-]?\s+`)
	technicalSpecsRe = regexp.MustCompile(`(?i)(?:Technical\s?Specifications|Scope\s?of\s?Work|Work\s?Specifications)\s*[:\-]?\s*(.*?)(?:\n|$)`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\d{3}-?\d{3}-?\d{4}`)
)
