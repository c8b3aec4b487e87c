package recordout

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

const (
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// New returns the writer for format (tsv|jsonl).
func New(format string, w io.Writer) (ports.RecordWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTSV, "":
		return NewTSVWriter(w), nil
	case FormatJSONL, "json":
		return NewJSONLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (expected tsv|jsonl)", format)
	}
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
