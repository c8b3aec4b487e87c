package ports

// ConfigLocator finds the directory holding ecocyc.yaml, searching upward from startDir.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
