package recordout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

// countingWriter records how many Write calls reach the destination.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.writes++
	return c.Buffer.Write(p)
}

func TestTSVWriter_Rows(t *testing.T) {
	var buf bytes.Buffer
	w := NewTSVWriter(&buf)

	recs := []domain.AnnotationRecord{
		domain.PromoterRecord("lacZ", "lacZp", "lacZYA"),
		domain.SentinelRecord("ghostGene", domain.SentinelGeneNotFound),
		domain.UnitRecord("trpA", "trpLEDCBA"),
	}
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	want := "lacZ\tlacZp\tlacZYA\nghostGene\tno_gene_found_in_ecoli_db\ntrpA\ttrpLEDCBA\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestTSVWriter_FlushesEachRecord(t *testing.T) {
	cw := &countingWriter{}
	w := NewTSVWriter(cw)

	if err := w.Write(domain.PromoterRecord("lacZ", "lacZp", "lacZYA")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if cw.writes != 1 || cw.String() != "lacZ\tlacZp\tlacZYA\n" {
		t.Fatalf("expected record flushed immediately, got %d writes %q", cw.writes, cw.String())
	}
}

func TestTSVWriter_SanitizesSeparators(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTSVWriter(&buf).Write(domain.PromoterRecord("g", "p\t1", "u\n2")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "g\tp 1\tu 2\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)

	if err := w.Write(domain.PromoterRecord("lacZ", "lacZp", "lacZYA")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(domain.SentinelRecord("lacZ", domain.SentinelNoPromoter)); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if first["kind"] != "promoter" || first["promoter"] != "lacZp" || first["unit_genes"] != "lacZYA" {
		t.Fatalf("unexpected record %v", first)
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if second["sentinel"] != "no_promoter_with_evidence" {
		t.Fatalf("unexpected record %v", second)
	}
	if _, ok := second["promoter"]; ok {
		t.Fatalf("expected empty promoter to be omitted")
	}
}

func TestNew_Formats(t *testing.T) {
	if _, err := New("tsv", io.Discard); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	if _, err := New("JSONL", io.Discard); err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	if _, err := New("csv", io.Discard); err == nil {
		t.Fatalf("expected error for csv")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)) {
		t.Fatalf("expected closed pipe to match")
	}
	if IsBrokenPipe(io.EOF) || IsBrokenPipe(nil) {
		t.Fatalf("unexpected match")
	}
}
