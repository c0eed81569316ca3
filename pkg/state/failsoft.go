package state

import (
	"context"

	"github.com/AccelByte/extend-step-companion/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// FailSoft wraps a Store so that failures never interrupt the tick loop:
// failed reads yield 0 and failed writes are dropped. Every failure is
// logged and counted.
type FailSoft struct {
	inner Store
}

// NewFailSoft wraps inner.
func NewFailSoft(inner Store) *FailSoft {
	return &FailSoft{inner: inner}
}

func (f *FailSoft) Get(ctx context.Context, key string) (int, error) {
	value, err := f.inner.Get(ctx, key)
	if err != nil {
		logrus.Warnf("store read failed, defaulting %s to 0: %v", key, err)
		metrics.StoreErrorsTotal.WithLabelValues("get").Inc()
		return 0, nil
	}
	return value, nil
}

func (f *FailSoft) Set(ctx context.Context, key string, value int) error {
	if err := f.inner.Set(ctx, key, value); err != nil {
		logrus.Warnf("store write failed, dropping %s=%d: %v", key, value, err)
		metrics.StoreErrorsTotal.WithLabelValues("set").Inc()
	}
	return nil
}
