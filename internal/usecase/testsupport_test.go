package usecase_test

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeKV — KV в памяти для проверки сквозного кэширования.
type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	rank map[string]float64
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string), rank: make(map[string]float64)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeKV) IncrBy(_ context.Context, key string, by int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, _ := strconv.ParseInt(f.data[key], 10, 64)
	cur += by
	f.data[key] = strconv.FormatInt(cur, 10)
	return cur, nil
}

func (f *fakeKV) ZIncrBy(_ context.Context, _, member string, by float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rank[member] += by
	return nil
}

func (f *fakeKV) ZRevRange(_ context.Context, _ string, n int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for m := range f.rank {
		out = append(out, m)
		if int64(len(out)) == n {
			break
		}
	}
	return out, nil
}

func (f *fakeKV) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, held := f.data[key]; held {
		return false, nil
	}
	f.data[key] = value
	return true, nil
}

func (f *fakeKV) CompareAndDelete(_ context.Context, key, value string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data[key] != value {
		return false, nil
	}
	delete(f.data, key)
	return true, nil
}

func (f *fakeKV) Scan(context.Context, string) ([]string, error) { return nil, nil }

func (f *fakeKV) Publish(context.Context, string, string) error { return nil }

func (f *fakeKV) Subscribe(context.Context, string, func(string)) error { return nil }

func (f *fakeKV) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

// alwaysLocker — блокировка, которая всегда даётся (для путей,
// где борьба за ресурс не предмет теста).
type alwaysLocker struct{}

func (alwaysLocker) Acquire(context.Context, string, string, time.Duration) bool { return true }
func (alwaysLocker) Release(context.Context, string, string) bool                { return true }

// recordingTracker — запоминает переданные события.
type recordingTracker struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingTracker) Track(e domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingTracker) byType(t domain.EventType) []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
