package constants

// StageStatus is the canonical status emitted in stage logs.
type StageStatus string

// Stable values (these exact strings appear in log events).
const (
	StageRunning  StageStatus = "RUNNING"   // stage in progress
	StageLoadOK   StageStatus = "LOAD_OK"   // document text and tables extracted
	StageFieldsOK StageStatus = "FIELDS_OK" // regex field extraction completed
	StageNEROK    StageStatus = "NER_OK"    // entity recognition completed
	StageNERSkip  StageStatus = "NER_SKIP"  // entity recognition skipped (no token)
	StageWriteOK  StageStatus = "WRITE_OK"  // record validated and written
	StageFailed   StageStatus = "FAILED"    // terminal failure
)

// ExtractionMethod identifies how the document text was obtained.
const (
	MethodPDFText = "pdf-text" // native text objects via the pdf library
	MethodPDFTool = "pdf-tool" // pdftotext fallback
)
