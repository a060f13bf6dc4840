package ports

import (
	"context"

	"github.com/bnema/mcli/internal/domain"
)

// Fetcher transfers every entry of a download set, blocking until all
// entries arrived or one failed for good.
type Fetcher interface {
	Fetch(ctx context.Context, set domain.DownloadSet) error
}
