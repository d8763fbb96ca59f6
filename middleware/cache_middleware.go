package middleware

import (
	"bytes"
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

const (
	cacheMiddlewarePfx = "httpCacheMiddleware"

	// HeaderXCache reports HIT or MISS
	HeaderXCache = "X-Cache"
)

var (
	cacheMiddlewareCache provider.Provider

	once = sync.Once{}
)

// SetupCache sets the response cache, later calls are no-ops
func SetupCache(p provider.Provider) {
	once.Do(func() {
		cacheMiddlewareCache = p
	})
}

// cachedResponse is one stored 200 response
type cachedResponse struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// recorder tees the body while the handler writes it
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *recorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// requestKey is the path plus the query re-encoded in sorted key order
func requestKey(r *http.Request) string {
	hash := fnv.New64a()
	hash.Write([]byte(r.URL.Path))
	hash.Write([]byte{'?'})
	hash.Write([]byte(r.URL.Query().Encode()))
	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves repeated GETs of read-only ledger analytics from cache.
// Only 200 responses are stored.
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if cacheMiddlewareCache == nil {
		panic("need SetupCache before using CacheHttp")
	}

	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   cacheMiddlewarePfx,
		Cache: cacheMiddlewareCache,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			key := requestKey(c.Request())

			hit := cachedResponse{}
			if err := cacheService.Get(ctx, key, &hit); err == nil {
				c.Response().Header().Set(HeaderXCache, "HIT")
				return c.Blob(http.StatusOK, hit.ContentType, hit.Body)
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{"err": err, "path": c.Path()}).Error("cacheService.Get failed")
			}

			c.Response().Header().Set(HeaderXCache, "MISS")
			rec := &recorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.status != http.StatusOK {
				return nil
			}
			res := cachedResponse{
				ContentType: rec.Header().Get(echo.HeaderContentType),
				Body:        rec.body.Bytes(),
			}
			if err := cacheService.Set(ctx, key, res); err != nil {
				ctx.WithFields(log.Fields{"err": err, "path": c.Path()}).Error("cacheService.Set failed")
			}
			return nil
		}
	}
}
