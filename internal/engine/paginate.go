package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// MaxPageSize is the largest page the YouTube Data API serves per request.
const MaxPageSize = 50

// Page is one bounded batch from a remote listing endpoint.
type Page[R any] struct {
	Items []R
	// TotalResults is the source's own estimate of matching records.
	// It routinely exceeds the number of records the source will actually
	// page out, and it can change from page to page.
	TotalResults int64
	// NextPageToken is the opaque continuation cursor. Empty means the
	// source has no more pages.
	NextPageToken string
}

// PageFetcher retrieves one page. Implementations bind the endpoint and all
// filter parameters; pageSize and pageToken are the only per-call arguments.
// pageSize never exceeds MaxPageSize nor the caller's remaining quota.
type PageFetcher[R any] func(ctx context.Context, pageSize int64, pageToken string) (Page[R], error)

// Aggregated is the result of draining a paginated listing up to a limit.
type Aggregated[T any] struct {
	// TotalResults is the last page's reported total. The Data API
	// recomputes its estimate per page, so the last value wins — this
	// mirrors upstream behavior and is not summed or maximized.
	TotalResults int64
	// Records are in page arrival order, then within-page order.
	Records []T
}

// Aggregate drains fetch one page at a time until limit records have been
// collected or the source stops returning a continuation token, normalizing
// each raw item as it arrives.
//
// Fetch errors propagate unchanged — no retry, no partial result. A
// normalization failure on a non-identifier field skips that record; a
// missing identifier fails the whole call (see MalformedRecordError).
// Fetches are strictly sequential, one in flight at a time.
func Aggregate[R, T any](ctx context.Context, fetch PageFetcher[R], normalize func(R) (T, error), limit int64) (Aggregated[T], error) {
	var out Aggregated[T]
	if limit <= 0 {
		return out, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidQuery, limit)
	}

	pageToken := ""
	seen := 0 // raw records inspected across all pages
	for {
		remaining := limit - int64(len(out.Records))
		if remaining <= 0 {
			return out, nil
		}
		pageSize := remaining
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}

		page, err := fetch(ctx, pageSize, pageToken)
		if err != nil {
			return Aggregated[T]{}, err
		}

		for _, raw := range page.Items {
			idx := seen
			seen++
			rec, err := normalize(raw)
			if err != nil {
				var mr *MalformedRecordError
				if errors.As(err, &mr) {
					mr.Index = idx
					if !mr.Fatal {
						slog.Debug("aggregate: skipping malformed record",
							slog.Int("index", mr.Index), slog.String("field", mr.Field))
						continue
					}
					return Aggregated[T]{}, mr
				}
				return Aggregated[T]{}, fmt.Errorf("normalize record %d: %w", idx, err)
			}
			if int64(len(out.Records)) < limit {
				out.Records = append(out.Records, rec)
			}
		}

		out.TotalResults = page.TotalResults
		pageToken = page.NextPageToken
		if pageToken == "" {
			return out, nil
		}
	}
}
