package ports

import "github.com/scwatts/ecocyc-pathways/internal/domain"

// RecordWriter emits output rows. Implementations flush each record before returning.
type RecordWriter interface {
	Write(rec domain.AnnotationRecord) error
}
