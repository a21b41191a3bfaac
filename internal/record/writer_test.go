package record

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/procureparse/tender-extractor/internal/fields"
	"github.com/procureparse/tender-extractor/internal/ner"
	"github.com/procureparse/tender-extractor/internal/pdfdoc"
)

func sampleRecord() Record {
	return Build(fields.Result{
		ReferenceNumber:           "IITD/2025/ET/042",
		Title:                     "Fabrication of Machine Components from Aluminium Materials",
		StartDate:                 "01.08.2025",
		EndDate:                   "22.08.2025",
		PhysicalSubmissionEndDate: "25.08.2025",
		TechnicalBidOpening:       "26.08.2025",
		TenderFee:                 "590.00",
		EMD:                       "12,500.00",
		Eligibility:               "This is a domestic Tender. Only class – I local suppliers are eligible to participate in tender as per policy.",
		TechnicalSpecifications:   "Fabrication and supply of CNC machined aluminium components as per drawings.",
		Emails:                    []string{"procurement@abcinstitute.ac.in"},
		PhoneNumbers:              []string{"735-212-4410"},
	}, []ner.Entity{
		{Group: ner.GroupOrganization, Word: "ABC Institute of Technology", Score: 0.99},
		{Group: ner.GroupLocation, Word: "New Delhi", Score: 0.98},
	})
}

func TestWriteRoundTrip(t *testing.T) {
	rec := sampleRecord()
	path := filepath.Join(t.TempDir(), "extracted_data.json")

	out, err := Write(rec, path, nil)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(out, onDisk) {
		t.Fatal("returned bytes differ from the written file")
	}

	var parsed Record
	if err := json.Unmarshal(onDisk, &parsed); err != nil {
		t.Fatalf("unmarshal written file: %v", err)
	}
	if !reflect.DeepEqual(parsed, rec) {
		t.Fatalf("round trip mismatch:\ngot  %#v\nwant %#v", parsed, rec)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	rec := sampleRecord()
	dir := t.TempDir()

	first, err := Write(rec, filepath.Join(dir, "a.json"), nil)
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, err := Write(rec, filepath.Join(dir, "b.json"), nil)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("repeat runs must produce byte-identical output")
	}
}

func TestSchemaRejectsMissingSection(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildRecordSchema(), []byte(`{"tender_info":{}}`))
	if err == nil {
		t.Fatal("expected validation failure for incomplete record")
	}
}

func TestSchemaAcceptsBuiltRecord(t *testing.T) {
	b, err := Marshal(Build(fields.Result{Emails: []string{}, PhoneNumbers: []string{}}, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildRecordSchema(), b); err != nil {
		t.Fatalf("a freshly built record must validate: %v", err)
	}
}

// TestSampleDocumentOutput pins the serialized form for the sample
// document in the README.
func TestSampleDocumentOutput(t *testing.T) {
	const sampleText = `Ref. e-Tender Notice - IITD/2025/ET/042
ABC Institute of Technology, New Delhi invites e-tender for Fabrication of Machine Components from Aluminium Materials.
Start Date: 01.08.2025
End Date: 22.08.2025
Physical submission of Tender End Date: 25.08.2025
Technical Specifications: Fabrication and supply of CNC machined aluminium components as per drawings.
This is a domestic Tender. Only class – I local suppliers are eligible to participate in tender as per policy.

Annexure A
Contact: procurement@abcinstitute.ac.in, 735-212-4410
`
	doc := pdfdoc.Document{
		Text: sampleText,
		Tables: []pdfdoc.Table{
			{
				{"S.No", "Description", "Qty", "Tender Fee", "EMD"},
				{"1", "Fabrication of Machine Components", "1 Lot", "590.00 INR", "12,500.00 INR"},
			},
			{
				{"Opening of Technical e-Bid", "26.08.2025"},
			},
		},
	}

	fr := fields.NewExtractor(nil).Extract(doc)
	rec := Build(fr, []ner.Entity{
		{Group: ner.GroupOrganization, Word: "ABC Institute of Technology", Score: 0.99, Start: 0, End: 27},
		{Group: ner.GroupLocation, Word: "New Delhi", Score: 0.98, Start: 29, End: 38},
	})

	got, err := Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{
    "tender_info": {
        "reference_number": "IITD/2025/ET/042",
        "title": "Fabrication of Machine Components from Aluminium Materials",
        "issuing_authority": "ABC Institute of Technology",
        "location": "New Delhi"
    },
    "timeline_info": {
        "start_date": "01.08.2025",
        "end_date": "22.08.2025",
        "physical_submission_end_date": "25.08.2025",
        "technical_bid_opening": "26.08.2025"
    },
    "financial_info": {
        "tender_fee": "590.00",
        "emd": "12,500.00"
    },
    "eligibility_info": {
        "eligibility": "This is a domestic Tender. Only class – I local suppliers are eligible to participate in tender as per policy."
    },
    "technical_info": {
        "technical_specifications": "Fabrication and supply of CNC machined aluminium components as per drawings."
    },
    "contact_info": {
        "emails": [
            "procurement@abcinstitute.ac.in"
        ],
        "phone_numbers": [
            "735-212-4410"
        ]
    }
}
`
	if string(got) != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
