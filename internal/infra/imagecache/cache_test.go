package imagecache

import (
	"context"
	"testing"
	"time"

	"growguard/config"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"
	"growguard/internal/infra/metrics"
	mockService "growguard/internal/mocks/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_FetchesOnceThenServesFromCache(t *testing.T) {
	ctx := context.Background()
	gw := mockService.NewMockGateway(t)
	m := metrics.New()

	gw.EXPECT().FetchImage(ctx, "a.jpg").Return([]byte("jpeg"), "image/jpeg", nil).Once()

	src := New(Params{
		Config:  &config.Config{ImageCache: &config.ImageCacheConfig{TTL: time.Minute}},
		Gateway: gw,
		Metrics: m,
	})

	first, err := src.Image(ctx, "/uploads/a.jpg")
	require.NoError(t, err)
	second, err := src.Image(ctx, "a.jpg")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "image/jpeg", second.ContentType)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImageCacheHits.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImageCacheHits.WithLabelValues("miss")))
}

func TestImage_ForgetRefetches(t *testing.T) {
	ctx := context.Background()
	gw := mockService.NewMockGateway(t)

	gw.EXPECT().FetchImage(ctx, "a.jpg").Return([]byte("jpeg"), "image/jpeg", nil).Twice()

	src := New(Params{Config: &config.Config{}, Gateway: gw})

	_, err := src.Image(ctx, "a.jpg")
	require.NoError(t, err)
	src.Forget("/uploads/a.jpg")
	_, err = src.Image(ctx, "a.jpg")
	require.NoError(t, err)
}

func TestImage_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	gw := mockService.NewMockGateway(t)
	notFound := domainerrors.NewHTTPError("GET /uploads/:filename", 404, "")

	gw.EXPECT().FetchImage(ctx, "gone.jpg").Return(nil, "", notFound).Twice()

	src := New(Params{Config: &config.Config{}, Gateway: gw})

	for range 2 {
		_, err := src.Image(ctx, "gone.jpg")
		assert.True(t, errors.Is(err, notFound))
	}
}

type tokenSession struct{ token string }

func (s *tokenSession) Token() string                               { return s.token }
func (s *tokenSession) Expire(_ context.Context, token string) bool { return false }

func TestImage_NotSharedAcrossSessions(t *testing.T) {
	ctx := context.Background()
	gw := mockService.NewMockGateway(t)
	session := &tokenSession{token: "alice"}

	gw.EXPECT().FetchImage(ctx, "a.jpg").Return([]byte("alice"), "image/jpeg", nil).Once()
	gw.EXPECT().FetchImage(ctx, "a.jpg").Return([]byte("bob"), "image/jpeg", nil).Once()

	src := New(Params{Config: &config.Config{}, Gateway: gw, Session: session})

	img, err := src.Image(ctx, "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice"), img.Data)

	session.token = "bob"
	img, err = src.Image(ctx, "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob"), img.Data)
}
