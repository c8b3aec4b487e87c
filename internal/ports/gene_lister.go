package ports

import "github.com/scwatts/ecocyc-pathways/internal/domain"

// GeneLister reads the input gene list.
type GeneLister interface {
	ListGenes(path string) ([]domain.GeneName, error)
}
