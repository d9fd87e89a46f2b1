package mirror

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroportal/internal/domain/session"
	"agroportal/internal/utils/logger"
)

type fakeSessions struct {
	mu      sync.Mutex
	current *session.Session
	epoch   uint64
}

func (f *fakeSessions) Current() *session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current.Clone()
}

func (f *fakeSessions) Epoch() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.epoch
}

func (f *fakeSessions) set(s *session.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = s
	f.epoch++
}

func buyer() *session.Session {
	return &session.Session{IdentityID: "u-1", Role: session.RoleBuyer, Credential: "t"}
}

func cloneInts(v []int) []int {
	return append([]int{}, v...)
}

func newIntsMirror(sessions Sessions, fetch func(context.Context) ([]int, error)) *Mirror[[]int] {
	return New(Options[[]int]{
		Name:    "ints",
		Roles:   session.Roles{session.RoleBuyer},
		Default: func() []int { return []int{} },
		Clone:   cloneInts,
		Fetch:   fetch,
	}, sessions, logger.Discard())
}

func TestMirror_GuardSkipsNetwork(t *testing.T) {
	tests := []struct {
		name    string
		session *session.Session
	}{
		{name: "no session", session: nil},
		{name: "empty credential", session: &session.Session{Role: session.RoleBuyer}},
		{name: "wrong role", session: &session.Session{Role: session.RoleFarmer, Credential: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessions{current: tt.session}
			calls := 0
			m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
				calls++
				return []int{1}, nil
			})
			m.Update(func([]int) []int { return []int{42} })

			require.NoError(t, m.Fetch(context.Background()))
			assert.Equal(t, 0, calls)
			assert.Equal(t, []int{}, m.Snapshot())
		})
	}
}

func TestMirror_FetchSuccess(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		return []int{1, 2}, nil
	})

	var seen []int
	m.OnChange(func(v []int) { seen = v })

	require.NoError(t, m.Fetch(context.Background()))
	assert.Equal(t, []int{1, 2}, m.Snapshot())
	assert.Equal(t, []int{1, 2}, seen)
	assert.True(t, m.Loaded())
	assert.NoError(t, m.LastError())
	assert.False(t, m.UpdatedAt().IsZero())
}

func TestMirror_FailureKeepsLastGoodSnapshot(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	fail := false
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		if fail {
			return []int{9, 9, 9}, errors.New("timeout")
		}
		return []int{1, 2}, nil
	})

	require.NoError(t, m.Fetch(context.Background()))

	fail = true
	err := m.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
	assert.Equal(t, []int{1, 2}, m.Snapshot())
	assert.Error(t, m.LastError())
}

func TestMirror_FailureWithoutSnapshotUsesDefault(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		return []int{7}, errors.New("500")
	})

	assert.Error(t, m.Fetch(context.Background()))
	assert.Equal(t, []int{}, m.Snapshot())
	assert.False(t, m.Loaded())
}

func TestMirror_FailureAfterSessionChangeDropsOldSnapshot(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	fail := false
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		if fail {
			return nil, errors.New("down")
		}
		return []int{1}, nil
	})
	require.NoError(t, m.Fetch(context.Background()))

	other := buyer()
	other.IdentityID = "u-2"
	sessions.set(other)
	fail = true

	assert.Error(t, m.Fetch(context.Background()))
	assert.Equal(t, []int{}, m.Snapshot())
}

func TestMirror_StaleEpochResultDiscarded(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	release := make(chan struct{})
	started := make(chan struct{})
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		close(started)
		<-release
		return []int{1, 2, 3}, nil
	})

	done := make(chan error)
	go func() { done <- m.Fetch(context.Background()) }()

	<-started
	sessions.set(nil)
	m.Reset()
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, []int{}, m.Snapshot())
}

func TestMirror_LocalWriteWinsOverInFlightFetch(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	release := make(chan struct{})
	started := make(chan struct{})
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		close(started)
		<-release
		return []int{1}, nil
	})

	done := make(chan error)
	go func() { done <- m.Fetch(context.Background()) }()

	<-started
	m.Update(func(v []int) []int { return append(v, 5) })
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, []int{5}, m.Snapshot())
}

func TestMirror_ConcurrentFetchesDeduplicated(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	var calls atomic.Int32
	release := make(chan struct{})
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		calls.Add(1)
		<-release
		return []int{1}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Fetch(context.Background()))
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []int{1}, m.Snapshot())
}

func TestMirror_SnapshotIsCopy(t *testing.T) {
	sessions := &fakeSessions{current: buyer(), epoch: 1}
	m := newIntsMirror(sessions, func(context.Context) ([]int, error) {
		return []int{1, 2}, nil
	})
	require.NoError(t, m.Fetch(context.Background()))

	snap := m.Snapshot()
	snap[0] = 100
	assert.Equal(t, []int{1, 2}, m.Snapshot())
}
