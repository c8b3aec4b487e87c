package config

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

//go:embed templates/ecocyc.yaml
var templatesFS embed.FS

// WriteDefault writes a commented ecocyc.yaml holding the defaults into dir.
// An existing file is kept unless force is set; created reports whether it was written.
func WriteDefault(dir string, force bool) (path string, created bool, err error) {
	path = filepath.Join(filepath.Clean(dir), FileName)

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return path, false, nil
		}
	}

	b, err := templatesFS.ReadFile("templates/" + FileName)
	if err != nil {
		return path, false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, &domain.OpError{Op: "config.init", Kind: domain.KindExecution, Target: path, Err: err}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return path, false, &domain.OpError{Op: "config.init", Kind: domain.KindExecution, Target: path, Err: err}
	}
	return path, true, nil
}
