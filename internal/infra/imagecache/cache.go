// Package imagecache keeps recently viewed report images in memory.
package imagecache

import (
	"context"
	"log/slog"
	"time"

	"growguard/config"
	"growguard/internal/domain/entity"
	"growguard/internal/domain/service"
	"growguard/internal/infra/metrics"
	"growguard/internal/util"

	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

const (
	defaultTTL     = 10 * time.Minute
	defaultCleanup = 20 * time.Minute
)

// Params are the dependencies of the image cache.
type Params struct {
	fx.In

	Config  *config.Config
	Gateway service.Gateway
	Session service.SessionBinding `optional:"true"`
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// imageCache keys entries by session token and filename, so a new session never sees
// images fetched under an earlier one.
type imageCache struct {
	gateway service.Gateway
	session service.SessionBinding
	cache   *cache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New wraps the gateway's image download with a TTL cache.
func New(p Params) service.ImageSource {
	ttl, cleanup := defaultTTL, defaultCleanup
	if cfg := p.Config.ImageCache; cfg != nil {
		if cfg.TTL > 0 {
			ttl = cfg.TTL
		}
		if cfg.CleanupInterval > 0 {
			cleanup = cfg.CleanupInterval
		}
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &imageCache{
		gateway: p.Gateway,
		session: p.Session,
		cache:   cache.New(ttl, cleanup),
		metrics: p.Metrics,
		logger:  logger,
	}
}

func (c *imageCache) Image(ctx context.Context, filename string) (*entity.Image, error) {
	filename = entity.ImageFilename(filename)
	key := c.key(filename)

	if cached, found := c.cache.Get(key); found {
		c.observe("hit")

		return cached.(*entity.Image), nil
	}
	c.observe("miss")

	data, contentType, err := c.gateway.FetchImage(ctx, filename)
	if err != nil {
		return nil, err
	}

	img := &entity.Image{Filename: filename, ContentType: contentType, Data: data}
	c.cache.Set(key, img, cache.DefaultExpiration)
	c.logger.Debug("Image cached", slog.String("filename", filename), slog.String("size", util.FormatBytes(int64(len(data)))))

	return img, nil
}

func (c *imageCache) Forget(filename string) {
	c.cache.Delete(c.key(entity.ImageFilename(filename)))
}

func (c *imageCache) key(filename string) string {
	if c.session == nil {
		return filename
	}

	return c.session.Token() + "/" + filename
}

func (c *imageCache) observe(result string) {
	if c.metrics != nil {
		c.metrics.ImageCacheHits.WithLabelValues(result).Inc()
	}
}
