package mutation

import (
	"context"
	"errors"
	"sync"
	"testing"

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

func (f *fakeSessions) Lease() session.Lease {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := session.Lease{Epoch: f.epoch}
	if f.current != nil {
		l.Credential = f.current.Credential
	}
	return l
}

func (f *fakeSessions) set(s *session.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = s
	f.epoch++
}

type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) all() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice{}, r.notices...)
}

func newEngine(s *session.Session) (*Engine, *fakeSessions, *recorder) {
	sessions := &fakeSessions{current: s, epoch: 1}
	rec := &recorder{}
	return NewEngine(sessions, rec, logger.Discard()), sessions, rec
}

func buyer() *session.Session {
	return &session.Session{IdentityID: "u-1", Role: session.RoleBuyer, Credential: "t"}
}

// toggle на множестве строк, как избранное
func toggleCommand(state map[string]bool, id string, remoteErr error) Command {
	var was bool
	return Command{
		Name:   "toggle",
		Policy: Rollback,
		Roles:  session.Roles{session.RoleBuyer},
		Apply: func() error {
			was = state[id]
			state[id] = !was
			return nil
		},
		Remote: func(context.Context) error { return remoteErr },
		Compensate: func() {
			state[id] = was
		},
		FailureMessage: "не удалось",
		SuccessMessage: "готово",
	}
}

func TestEngine_RollbackRestoresStateOnFailure(t *testing.T) {
	e, _, rec := newEngine(buyer())
	state := map[string]bool{"p1": false}

	p := e.Execute(context.Background(), toggleCommand(state, "p1", errors.New("500")))
	err := p.Wait(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "toggle")
	assert.False(t, state["p1"])

	notices := rec.all()
	require.Len(t, notices, 1)
	assert.Equal(t, LevelFailure, notices[0].Level)
	assert.Equal(t, "не удалось", notices[0].Message)
}

func TestEngine_RollbackKeepsStateOnSuccess(t *testing.T) {
	e, _, rec := newEngine(buyer())
	state := map[string]bool{}

	successCalled := false
	cmd := toggleCommand(state, "p1", nil)
	cmd.OnSuccess = func(context.Context) { successCalled = true }

	require.NoError(t, e.Execute(context.Background(), cmd).Wait(context.Background()))
	assert.True(t, state["p1"])
	assert.True(t, successCalled)

	notices := rec.all()
	require.Len(t, notices, 1)
	assert.Equal(t, LevelSuccess, notices[0].Level)
}

func TestEngine_KeepOptimisticOnlyLogs(t *testing.T) {
	e, _, rec := newEngine(buyer())
	items := []string{}

	p := e.Execute(context.Background(), Command{
		Name:   "cart.add",
		Policy: KeepOptimistic,
		Apply: func() error {
			items = append(items, "p1")
			return nil
		},
		Remote:     func(context.Context) error { return errors.New("offline") },
		Compensate: func() { t.Fatal("compensate must not run") },
	})

	assert.Error(t, p.Wait(context.Background()))
	assert.Equal(t, []string{"p1"}, items)
	assert.Empty(t, rec.all())
}

func TestEngine_ConfirmFirstCommitsOnlyAfterSuccess(t *testing.T) {
	tests := []struct {
		name       string
		remoteErr  error
		wantAmount float64
		wantLevel  Level
	}{
		{name: "success", remoteErr: nil, wantAmount: 150, wantLevel: LevelSuccess},
		{name: "failure", remoteErr: errors.New("declined"), wantAmount: 100, wantLevel: LevelFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, rec := newEngine(buyer())
			balance := 100.0
			var confirmed float64

			p := e.Execute(context.Background(), Command{
				Name:   "wallet.topup",
				Policy: ConfirmFirst,
				Remote: func(context.Context) error {
					assert.Equal(t, 100.0, balance, "баланс не должен меняться до ответа сервера")
					confirmed = 150
					return tt.remoteErr
				},
				Commit:         func() { balance = confirmed },
				SuccessMessage: "пополнено",
				FailureMessage: "ошибка пополнения",
			})
			_ = p.Wait(context.Background())

			assert.Equal(t, tt.wantAmount, balance)
			notices := rec.all()
			require.Len(t, notices, 1)
			assert.Equal(t, tt.wantLevel, notices[0].Level)
		})
	}
}

func TestEngine_SkipsWithoutSession(t *testing.T) {
	e, _, rec := newEngine(nil)
	applied := false

	p := e.Execute(context.Background(), Command{
		Name:   "cart.add",
		Policy: KeepOptimistic,
		Apply:  func() error { applied = true; return nil },
		Remote: func(context.Context) error { t.Fatal("remote must not run"); return nil },
	})

	assert.True(t, p.Skipped())
	assert.NoError(t, p.Wait(context.Background()))
	assert.False(t, applied)
	assert.Empty(t, rec.all())
}

func TestEngine_SkipsWrongRole(t *testing.T) {
	e, _, _ := newEngine(&session.Session{Role: session.RoleFarmer, Credential: "t"})
	p := e.Execute(context.Background(), Command{
		Name:   "favorites.toggle",
		Roles:  session.Roles{session.RoleBuyer},
		Remote: func(context.Context) error { return nil },
	})
	assert.True(t, p.Skipped())
}

func TestEngine_ApplyErrorStopsBeforeRemote(t *testing.T) {
	e, _, _ := newEngine(buyer())
	validation := errors.New("quantity must be positive")

	p := e.Execute(context.Background(), Command{
		Name:   "cart.qty",
		Apply:  func() error { return validation },
		Remote: func(context.Context) error { t.Fatal("remote must not run"); return nil },
	})

	assert.ErrorIs(t, p.Wait(context.Background()), validation)
	assert.False(t, p.Skipped())
}

func TestEngine_SessionChangeSuppressesCompensation(t *testing.T) {
	e, sessions, rec := newEngine(buyer())
	release := make(chan struct{})
	compensated := false

	p := e.Execute(context.Background(), Command{
		Name:       "favorites.toggle",
		Policy:     Rollback,
		Remote:     func(context.Context) error { <-release; return errors.New("late failure") },
		Compensate: func() { compensated = true },
	})

	sessions.set(nil)
	close(release)

	assert.Error(t, p.Wait(context.Background()))
	assert.False(t, compensated)
	assert.Empty(t, rec.all())
}

func TestEngine_WaitDrainsInFlight(t *testing.T) {
	e, _, _ := newEngine(buyer())
	var mu sync.Mutex
	done := 0

	for i := 0; i < 10; i++ {
		e.Execute(context.Background(), Command{
			Name:   "noop",
			Policy: KeepOptimistic,
			Remote: func(context.Context) error {
				mu.Lock()
				done++
				mu.Unlock()
				return nil
			},
		})
	}

	e.Wait()
	assert.Equal(t, 10, done)
}

func TestPending_WaitHonoursContext(t *testing.T) {
	p := newPending()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)
}

func TestEngine_RemoteGetsLeaseOfIssuingSession(t *testing.T) {
	e, sessions, _ := newEngine(buyer())

	var got session.Lease
	p := e.Execute(context.Background(), Command{
		Name:   "leased",
		Policy: KeepOptimistic,
		Roles:  session.Roles{session.RoleBuyer},
		Remote: func(ctx context.Context) error {
			l, ok := session.LeaseFrom(ctx)
			require.True(t, ok)
			got = l
			return nil
		},
	})
	require.NoError(t, p.Wait(context.Background()))
	assert.Equal(t, session.Lease{Epoch: 1, Credential: "t"}, got)

	sessions.set(&session.Session{IdentityID: "u-2", Role: session.RoleBuyer, Credential: "t2"})
	p = e.Execute(context.Background(), Command{
		Name:   "leased",
		Policy: KeepOptimistic,
		Roles:  session.Roles{session.RoleBuyer},
		Remote: func(ctx context.Context) error {
			got, _ = session.LeaseFrom(ctx)
			return nil
		},
	})
	require.NoError(t, p.Wait(context.Background()))
	assert.Equal(t, session.Lease{Epoch: 2, Credential: "t2"}, got)
}
