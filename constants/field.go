package constants

import "strings"

// NotFound is the sentinel stored for scalar fields with no match.
const NotFound = "Not found"

// Record section keys, in output order.
const (
	SectionTender      = "tender_info"
	SectionTimeline    = "timeline_info"
	SectionFinancial   = "financial_info"
	SectionEligibility = "eligibility_info"
	SectionTechnical   = "technical_info"
	SectionContact     = "contact_info"
)

// Sections lists the record sections in serialization order.
var Sections = []string{
	SectionTender,
	SectionTimeline,
	SectionFinancial,
	SectionEligibility,
	SectionTechnical,
	SectionContact,
}

// AllowedExtensions holds the file extensions the loader accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (possibly dotted) extension is accepted.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
