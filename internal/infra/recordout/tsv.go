package recordout

import (
	"bufio"
	"io"
	"strings"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// TSVWriter writes one tab-separated line per record.
type TSVWriter struct {
	bw *bufio.Writer
}

func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{bw: bufio.NewWriter(w)}
}

var _ ports.RecordWriter = (*TSVWriter)(nil)

func (t *TSVWriter) Write(rec domain.AnnotationRecord) error {
	fields := rec.Fields()
	for i, f := range fields {
		fields[i] = sanitize(f)
	}
	if _, err := t.bw.WriteString(strings.Join(fields, "\t")); err != nil {
		return err
	}
	if err := t.bw.WriteByte('\n'); err != nil {
		return err
	}
	return t.bw.Flush()
}

// sanitize keeps one record per line and one field per column.
func sanitize(s string) string {
	if !strings.ContainsAny(s, "\t\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return ' '
		}
		return r
	}, s)
}
