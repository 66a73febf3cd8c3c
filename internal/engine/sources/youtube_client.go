package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var (
	svcOnce  sync.Once
	services []*youtube.Service
	svcErr   error
)

// dataServices builds one youtube.Service per configured API key, primary
// first. Built lazily on first use so tests never touch the network.
func dataServices(ctx context.Context) ([]*youtube.Service, error) {
	svcOnce.Do(func() {
		keys := []string{engine.Cfg.YouTubeAPIKey}
		if engine.Cfg.YouTubeAPIKeyFallback != "" {
			keys = append(keys, engine.Cfg.YouTubeAPIKeyFallback)
		}
		if keys[0] == "" {
			svcErr = errors.New("youtube data API key not configured")
			return
		}
		for _, key := range keys {
			svc, err := youtube.NewService(context.Background(), option.WithAPIKey(key))
			if err != nil {
				svcErr = fmt.Errorf("youtube service init: %w", err)
				return
			}
			services = append(services, svc)
		}
	})
	if svcErr != nil {
		return nil, svcErr
	}
	return services, nil
}

// withKeyFallback runs call against each configured service in order.
// Quota errors rotate to the fallback key; any other failure stops and is
// classified for the caller.
func withKeyFallback[T any](ctx context.Context, call func(svc *youtube.Service) (T, error)) (T, error) {
	var zero T
	svcs, err := dataServices(ctx)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", engine.ErrSourceUnavailable, err)
	}

	var lastErr error
	for i, svc := range svcs {
		result, err := call(svc)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !isQuotaError(err) {
			break
		}
		if i < len(svcs)-1 {
			slog.Debug("youtube: data API key exhausted, trying fallback", slog.Any("error", err))
		}
	}
	return zero, classifyAPIError(lastErr)
}

// isQuotaError reports whether err is a Data API quota/rate condition
// worth rotating keys for.
func isQuotaError(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == 403 || gerr.Code == 429
}

// classifyAPIError maps transient upstream conditions onto
// engine.ErrSourceUnavailable. Everything else propagates unchanged.
func classifyAPIError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 403, 429, 500, 502, 503, 504:
			return fmt.Errorf("%w: youtube data API %d: %s", engine.ErrSourceUnavailable, gerr.Code, gerr.Message)
		}
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", engine.ErrSourceUnavailable, err)
	}
	return err
}

var (
	limiterOnce sync.Once
	pageLimiter *rate.Limiter
)

// waitPageTurn paces consecutive page fetches. The Data API tolerates
// bursts badly; one page per interval keeps the agent under quota.
func waitPageTurn(ctx context.Context) error {
	limiterOnce.Do(func() {
		interval := engine.Cfg.PageFetchInterval
		if interval <= 0 {
			interval = time.Second
		}
		pageLimiter = rate.NewLimiter(rate.Every(interval), 1)
	})
	return pageLimiter.Wait(ctx)
}

// pageTotal reads the source-reported total from a PageInfo, which the
// API occasionally omits.
func pageTotal(info *youtube.PageInfo) int64 {
	if info == nil {
		return 0
	}
	return info.TotalResults
}
