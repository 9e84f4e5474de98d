package content

import (
	"errors"
	"strings"
	"testing"
)

func TestReadFrom_PlainText(t *testing.T) {
	doc, err := ReadFrom(strings.NewReader("Photosynthesis converts light into energy."), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "notes.txt" {
		t.Errorf("name = %q", doc.Name)
	}
	if !strings.Contains(doc.Text, "Photosynthesis") {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestReadFrom_TypeAllowList(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"notes.txt", true},
		{"notes.md", true},
		{"notes.markdown", true},
		{"data.json", false}, // valid type but content below is not JSON
		{"table.csv", true},
		{"slides.pdf", false},
		{"program.exe", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFrom(strings.NewReader("some plain text"), tt.name)
			if tt.ok && err != nil {
				t.Errorf("expected accept, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestReadFrom_RejectsInvalidUTF8(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("abc\xff\xfe"), "notes.txt")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Reason, "UTF-8") {
		t.Errorf("reason = %q", verr.Reason)
	}
}

func TestReadFrom_RejectsOversize(t *testing.T) {
	big := strings.NewReader(strings.Repeat("a", MaxFileSize+1))
	_, err := ReadFrom(big, "notes.txt")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestReadFrom_RejectsEmpty(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("   \n\t  "), "notes.txt")
	if err == nil {
		t.Fatal("expected rejection of whitespace-only document")
	}
}

func TestReadFrom_JSON(t *testing.T) {
	doc, err := ReadFrom(strings.NewReader(`{"topic":"cells","sections":["membrane","nucleus"]}`), "doc.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc.Text, "membrane") {
		t.Errorf("flattened JSON missing content: %q", doc.Text)
	}

	_, err = ReadFrom(strings.NewReader(`{broken`), "doc.json")
	if err == nil {
		t.Fatal("expected malformed JSON rejection")
	}
}

func TestReadFrom_CSV(t *testing.T) {
	doc, err := ReadFrom(strings.NewReader("term,definition\nosmosis,water diffusion\n"), "terms.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc.Text, "osmosis | water diffusion") {
		t.Errorf("flattened CSV = %q", doc.Text)
	}
}
