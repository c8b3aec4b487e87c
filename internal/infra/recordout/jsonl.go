package recordout

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{bw: bw, enc: enc}
}

var _ ports.RecordWriter = (*JSONLWriter)(nil)

func (j *JSONLWriter) Write(rec domain.AnnotationRecord) error {
	if err := j.enc.Encode(rec); err != nil {
		return err
	}
	return j.bw.Flush()
}
