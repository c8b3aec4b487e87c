// Package genefile reads gene name lists, plain or gzip-compressed.
package genefile

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/klauspost/pgzip"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

const maxLineBytes = 1 << 20

// Reader implements ports.GeneLister over the filesystem.
type Reader struct {
	keepBlank bool
}

type Option func(*Reader)

// WithKeepBlank keeps blank lines as literal gene names instead of dropping them.
func WithKeepBlank(keep bool) Option {
	return func(r *Reader) { r.keepBlank = keep }
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.GeneLister = (*Reader)(nil)

// ListGenes returns one gene per line, trailing whitespace stripped, order preserved.
func (r *Reader) ListGenes(path string) ([]domain.GeneName, error) {
	rc, err := open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:     "genefile.open",
			Kind:   domain.KindNotFound,
			Target: path,
			Err:    err,
		}
	}
	defer rc.Close()

	genes, err := r.parse(rc)
	if err != nil {
		return nil, &domain.OpError{
			Op:     "genefile.read",
			Kind:   domain.KindInvalidConfig,
			Target: path,
			Err:    err,
		}
	}
	return genes, nil
}

func (r *Reader) parse(in io.Reader) ([]domain.GeneName, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var genes []domain.GeneName
	for sc.Scan() {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if line == "" && !r.keepBlank {
			continue
		}
		genes = append(genes, domain.GeneName(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return genes, nil
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// open detects gzip by magic number (1F 8B) or by .gz suffix.
func open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}

	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := pgzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
