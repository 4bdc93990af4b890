package salaries

import (
	"context"
	"io"
	"log/slog"

	"hermannm.dev/devlog/log"
	"hermannm.dev/wrap"
)

// SourceOpener opens a fresh data source for each pipeline run, so that every run sees the
// current contents of the spreadsheet.
type SourceOpener interface {
	OpenSource(ctx context.Context) (source DataSource, closer io.Closer, err error)
}

// Run executes one pass of the pipeline: opens the data source, loads its records and
// aggregates them by every category. Errors are LoadErrors or DataErrors (possibly wrapped).
func Run(ctx context.Context, opener SourceOpener) (Dataset, Reports, error) {
	source, closer, err := opener.OpenSource(ctx)
	if err != nil {
		return Dataset{}, nil, newLoadError(err, "failed to open salary spreadsheet")
	}
	defer func() {
		if closer == nil {
			return
		}
		if err := closer.Close(); err != nil {
			log.ErrorCause(err, "failed to close salary spreadsheet")
		}
	}()

	dataset, err := Load(source)
	if err != nil {
		return Dataset{}, nil, err
	}

	reports, err := AggregateAll(dataset)
	if err != nil {
		return Dataset{}, nil, wrap.Error(err, "failed to aggregate salary records")
	}

	log.Info(
		"calculated salary expenditure",
		slog.String("datasetId", dataset.ID.String()),
		slog.Int("records", len(dataset.Records)),
	)

	return dataset, reports, nil
}
