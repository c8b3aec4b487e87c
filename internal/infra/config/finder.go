package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
	"github.com/scwatts/ecocyc-pathways/internal/ports"
)

// Finder locates the directory holding ecocyc.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "ecocyc.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path searches from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if st, err := os.Stat(cfgPath); err == nil && !st.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:     "config.findroot",
				Kind:   domain.KindNotFound,
				Target: startDir,
				Err:    domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
