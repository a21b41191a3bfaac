package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/procureparse/tender-extractor/constants"
	"github.com/procureparse/tender-extractor/internal/fields"
	"github.com/procureparse/tender-extractor/internal/ner"
	"github.com/procureparse/tender-extractor/internal/pdfdoc"
)

type stubLoader struct {
	doc pdfdoc.Document
	err error
}

func (s stubLoader) Load(context.Context, string) (pdfdoc.Document, error) {
	return s.doc, s.err
}

type stubRecognizer struct {
	ents []ner.Entity
	err  error
	text string
}

func (s *stubRecognizer) Recognize(_ context.Context, text string) ([]ner.Entity, error) {
	s.text = text
	return s.ents, s.err
}

const docText = `Ref. e-Tender Notice - IITD/2025/ET/042
Contact: procurement@abcinstitute.ac.in
`

func TestRunProducesValidatedRecord(t *testing.T) {
	loader := stubLoader{doc: pdfdoc.Document{Text: docText, Pages: 1, Method: constants.MethodPDFText}}
	recognizer := &stubRecognizer{ents: []ner.Entity{
		{Group: ner.GroupOrganization, Word: "ABC Institute of Technology", Score: 0.99},
	}}
	out := filepath.Join(t.TempDir(), "extracted_data.json")

	p := New(nil, loader, fields.NewExtractor(nil), recognizer)
	rec, b, err := p.Run(context.Background(), "document.pdf", out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if rec.TenderInfo.ReferenceNumber != "IITD/2025/ET/042" {
		t.Errorf("reference number: got %q", rec.TenderInfo.ReferenceNumber)
	}
	if rec.TenderInfo.IssuingAuthority != "ABC Institute of Technology" {
		t.Errorf("issuing authority: got %q", rec.TenderInfo.IssuingAuthority)
	}

	// The recognizer sees the cleaned text, not the raw page text.
	if recognizer.text != fields.CleanText(docText) {
		t.Errorf("ner input: got %q", recognizer.text)
	}

	onDisk, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(b, onDisk) {
		t.Fatal("returned bytes differ from written file")
	}
}

func TestRunSkipsNERWithoutRecognizer(t *testing.T) {
	loader := stubLoader{doc: pdfdoc.Document{Text: docText, Pages: 1}}
	out := filepath.Join(t.TempDir(), "extracted_data.json")

	p := New(nil, loader, fields.NewExtractor(nil), nil)
	rec, _, err := p.Run(context.Background(), "document.pdf", out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rec.TenderInfo.IssuingAuthority != constants.NotFound {
		t.Errorf("issuing authority: got %q, want sentinel", rec.TenderInfo.IssuingAuthority)
	}
}

func TestRunFailsWhenLoaderFails(t *testing.T) {
	p := New(nil, stubLoader{err: errors.New("no such file")}, fields.NewExtractor(nil), nil)
	if _, _, err := p.Run(context.Background(), "document.pdf", "unused.json"); err == nil {
		t.Fatal("expected load failure to surface")
	}
}

func TestRunFailsWhenNERFails(t *testing.T) {
	loader := stubLoader{doc: pdfdoc.Document{Text: docText}}
	recognizer := &stubRecognizer{err: errors.New("non-2xx status: 503")}

	p := New(nil, loader, fields.NewExtractor(nil), recognizer)
	if _, _, err := p.Run(context.Background(), "document.pdf", "unused.json"); err == nil {
		t.Fatal("expected ner failure to terminate the run")
	}
}
