package kv

import (
	"context"
	"errors"
	"time"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
)

// Compile-time interface check.
var _ core.Backend = (*InstrumentedBackend)(nil)

// InstrumentedBackend records the latency and outcome of every command sent
// to the wrapped Backend. A missing key counts as a successful command.
type InstrumentedBackend struct {
	next     core.Backend
	recorder core.Recorder
}

// NewInstrumentedBackend wraps next, reporting to recorder.
func NewInstrumentedBackend(next core.Backend, recorder core.Recorder) *InstrumentedBackend {
	return &InstrumentedBackend{next: next, recorder: recorder}
}

func (i *InstrumentedBackend) observe(command string, start time.Time, err error) {
	success := err == nil || errors.Is(err, ErrKeyNotFound)
	i.recorder.RecordBackendCommand(command, success, time.Since(start))
}

func (i *InstrumentedBackend) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	value, err := i.next.Get(ctx, key)
	i.observe("get", start, err)
	return value, err
}

func (i *InstrumentedBackend) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.next.Set(ctx, key, value)
	i.observe("set", start, err)
	return err
}

func (i *InstrumentedBackend) Del(ctx context.Context, keys ...string) error {
	start := time.Now()
	err := i.next.Del(ctx, keys...)
	i.observe("del", start, err)
	return err
}

func (i *InstrumentedBackend) SAdd(ctx context.Context, key string, members ...string) error {
	start := time.Now()
	err := i.next.SAdd(ctx, key, members...)
	i.observe("sadd", start, err)
	return err
}

func (i *InstrumentedBackend) SMembers(ctx context.Context, key string) ([]string, error) {
	start := time.Now()
	members, err := i.next.SMembers(ctx, key)
	i.observe("smembers", start, err)
	return members, err
}

func (i *InstrumentedBackend) SRem(ctx context.Context, key string, members ...string) error {
	start := time.Now()
	err := i.next.SRem(ctx, key, members...)
	i.observe("srem", start, err)
	return err
}

func (i *InstrumentedBackend) Ping(ctx context.Context) error {
	start := time.Now()
	err := i.next.Ping(ctx)
	i.observe("ping", start, err)
	return err
}

func (i *InstrumentedBackend) Close() error {
	return i.next.Close()
}
