package pdfdoc

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/procureparse/tender-extractor/constants"
)

type stubRunner struct {
	name   string
	args   []string
	stdout []byte
	err    error
	calls  int
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls++
	s.name = name
	s.args = args
	return s.stdout, nil, s.err
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	l := NewLoader(Config{}, nil)
	if _, err := l.Load(context.Background(), "document.docx"); err == nil {
		t.Fatal("expected error for non-pdf input")
	}
}

func TestLoadFallsBackToPdftotext(t *testing.T) {
	stub := &stubRunner{stdout: []byte("page one text\fpage two text")}
	l := NewLoader(Config{Pdftotext: "/opt/poppler/pdftotext"}, nil)
	l.runner = stub

	path := filepath.Join(t.TempDir(), "missing.pdf")
	doc, err := l.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if stub.calls != 1 {
		t.Fatalf("expected one pdftotext invocation, got %d", stub.calls)
	}
	if stub.name != "/opt/poppler/pdftotext" {
		t.Errorf("binary: got %q", stub.name)
	}
	wantArgs := []string{"-layout", "-enc", "UTF-8", "-eol", "unix", path, "-"}
	if !reflect.DeepEqual(stub.args, wantArgs) {
		t.Errorf("args: got %v, want %v", stub.args, wantArgs)
	}

	if doc.Method != constants.MethodPDFTool {
		t.Errorf("method: got %q", doc.Method)
	}
	if doc.Pages != 2 {
		t.Errorf("pages: got %d", doc.Pages)
	}
	if doc.Text != "page one text\fpage two text" {
		t.Errorf("text: got %q", doc.Text)
	}
	if len(doc.Warnings) == 0 {
		t.Error("expected the native parser failure recorded as a warning")
	}
}

func TestLoadSurfacesErrorWhenFallbackFails(t *testing.T) {
	stub := &stubRunner{err: errors.New("exec: pdftotext not found")}
	l := NewLoader(Config{}, nil)
	l.runner = stub

	path := filepath.Join(t.TempDir(), "missing.pdf")
	if _, err := l.Load(context.Background(), path); err == nil {
		t.Fatal("expected error when both extraction paths fail")
	}
	if stub.calls != 1 {
		t.Fatalf("expected the fallback to be attempted once, got %d", stub.calls)
	}
}
