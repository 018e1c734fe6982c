package registry

import (
	"context"

	"github.com/sourcegraph/conc/iter"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/source"
)

// SectionResult is the outcome of one landing section.
// Exactly one of Listing and Err is set.
type SectionResult struct {
	Category source.Category
	Listing  *source.Listing
	Err      error
}

// Landing fetches the first page of every section concurrently.
// Sections fail independently. A section that completes after ctx is done
// is discarded and reports ctx.Err().
func (r *Registry) Landing(ctx context.Context, sourceKey string, sections []source.Category, pageSize int) []SectionResult {
	return iter.Map(sections, func(category *source.Category) SectionResult {
		result := SectionResult{Category: *category}

		listing, err := r.ListByCategory(ctx, sourceKey, *category, 1, pageSize)
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.Err = ctxErr
			return result
		}

		if err != nil {
			log.Warnf("landing section %s: %s", category.Slug, err)
			result.Err = err
			return result
		}

		result.Listing = listing
		return result
	})
}
