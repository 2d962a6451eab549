package delivery

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

type deliveryFunc func(ctx context.Context) error

func (f deliveryFunc) Serve(ctx context.Context) error { return f(ctx) }

type recordingShutdowner struct {
	calls chan struct{}
}

func (r *recordingShutdowner) Shutdown(...fx.ShutdownOption) error {
	r.calls <- struct{}{}

	return nil
}

func TestStartAll(t *testing.T) {
	shutdowner := &recordingShutdowner{calls: make(chan struct{}, 2)}
	served := make(chan struct{}, 1)

	StartAll(t.Context(), []Delivery{
		deliveryFunc(func(context.Context) error {
			served <- struct{}{}

			return nil
		}),
		deliveryFunc(func(context.Context) error { return errors.New("bind: address in use") }),
	}, shutdowner, slog.New(slog.DiscardHandler))

	select {
	case <-shutdowner.calls:
	case <-time.After(time.Second):
		t.Fatal("failing delivery did not trigger shutdown")
	}
	<-served

	select {
	case <-shutdowner.calls:
		t.Fatal("clean exit must not trigger shutdown")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, shutdowner.calls)
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ListenAddr(8080))
}
