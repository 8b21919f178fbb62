package search

import (
	"context"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	"github.com/rs/zerolog/log"
)

// ObjectSource lists every catalog object; an empty type means all subtypes.
type ObjectSource interface {
	FindAll(ctx context.Context, objectType string) ([]entity.CelestialObject, error)
}

// ReindexJob pushes the whole catalog to the search index. It repairs
// documents that were missed when a write-time index call failed.
type ReindexJob struct {
	source   ObjectSource
	indexer  Indexer
	schedule string
}

func NewReindexJob(source ObjectSource, indexer Indexer, schedule string) *ReindexJob {
	return &ReindexJob{source: source, indexer: indexer, schedule: schedule}
}

func (j *ReindexJob) Name() string     { return "search-reindex" }
func (j *ReindexJob) Schedule() string { return j.schedule }

func (j *ReindexJob) Execute(ctx context.Context) error {
	objs, err := j.source.FindAll(ctx, "")
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	bases := make([]*entity.CelestialBase, 0, len(objs))
	for i := range objs {
		bases = append(bases, &objs[i].CelestialBase)
	}

	if err := j.indexer.Index(bases...); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("count", len(bases)).Msg("catalog reindexed")
	return nil
}
