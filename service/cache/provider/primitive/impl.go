package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

// minimum freecache arena
const minSizeMB = 1

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process freecache arena of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Get failed")
		return nil, 0, err
	}
	if ttl == 0 {
		return val, 0, nil
	}
	// freecache reports the absolute expiry in unix seconds
	return val, time.Until(time.Unix(int64(ttl), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int(ttl.Seconds())
	if ttl > 0 && secs == 0 {
		// sub-second ttl must not turn into no expiry
		secs = 1
	}
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name, "size": len(value)}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

func (im *impl) Len() int64 {
	return im.cache.EntryCount()
}
