// Package revalidate carries the "mark path stale" signal fired after
// every successful mutation. The signal is fire-and-forget: a failure
// is logged and counted but never rolls back the mutation.
package revalidate

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/lib/logger/sl"
	"atelier/internal/metrics"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Kind names an entity collection for path lookup.
type Kind string

const (
	KindProject Kind = "project"
	KindService Kind = "service"
	KindBlog    Kind = "blog"
	KindUser    Kind = "user"
)

// Public pages depending on each entity kind.
var pathsByKind = map[Kind][]string{
	KindProject: {"/projects", "/"},
	KindService: {"/services", "/dashboard", "/"},
	KindBlog:    {"/blog", "/"},
	KindUser:    {"/dashboard/users"},
}

const redisKeyPrefix = "page:"

type Revalidator struct {
	log   *slog.Logger
	pages *cache.Cache
	redis redis.Cmdable
}

// New builds a revalidator. rdb may be nil; the in-process page cache
// still works without a shared keyspace.
func New(log *slog.Logger, rdb redis.Cmdable) *Revalidator {
	return &Revalidator{
		log:   log,
		pages: cache.New(5*time.Minute, 10*time.Minute),
		redis: rdb,
	}
}

// PathsFor returns the public paths that depend on the given kind.
func PathsFor(kind Kind) []string {
	return pathsByKind[kind]
}

// Invalidate marks every page depending on kind as stale. The local
// response cache is flushed wholesale; the shared redis keyspace drops
// the rendered-page keys so external renderers recompute on next hit.
func (r *Revalidator) Invalidate(ctx context.Context, kind Kind) {
	paths := pathsByKind[kind]

	r.pages.Flush()

	for _, path := range paths {
		metrics.RevalidationsTotal.WithLabelValues(path).Inc()

		if r.redis == nil {
			continue
		}
		if err := r.redis.Del(ctx, redisKeyPrefix+path).Err(); err != nil {
			r.log.Warn("page revalidation signal failed",
				slog.String("path", path),
				sl.Err(err),
			)
		}
	}

	r.log.Debug("pages marked stale", slog.String("kind", string(kind)))
}

// Page returns a cached response body for path, if present.
func (r *Revalidator) Page(path string) ([]byte, bool) {
	v, ok := r.pages.Get(path)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

// StorePage caches a rendered response body under path.
func (r *Revalidator) StorePage(path string, body []byte) {
	r.pages.Set(path, body, cache.DefaultExpiration)
}
