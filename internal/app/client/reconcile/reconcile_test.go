package reconcile

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/session"
	"agroportal/internal/utils/logger"
)

type line struct {
	productID string
	quantity  int
}

// fakeCart серверная корзина, которая только дописывает строки
type fakeCart struct {
	mu       sync.Mutex
	lines    []line
	active   atomic.Int32
	overlap  atomic.Bool
	runs     atomic.Int32
	delay    time.Duration
	failAdd  string
	clearErr error
}

func (f *fakeCart) enter() func() {
	if f.active.Add(1) > 1 {
		f.overlap.Store(true)
	}
	return func() { f.active.Add(-1) }
}

func (f *fakeCart) ClearCart(context.Context) error {
	defer f.enter()()
	f.runs.Add(1)
	time.Sleep(f.delay)
	if f.clearErr != nil {
		return f.clearErr
	}
	f.mu.Lock()
	f.lines = nil
	f.mu.Unlock()
	return nil
}

func (f *fakeCart) AddCartItem(_ context.Context, productID string, quantity int) error {
	defer f.enter()()
	if productID == f.failAdd {
		return errors.New("rejected")
	}
	f.mu.Lock()
	f.lines = append(f.lines, line{productID, quantity})
	f.mu.Unlock()
	return nil
}

func (f *fakeCart) multiset() []line {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedLines(f.lines)
}

func sortedLines(in []line) []line {
	out := append([]line{}, in...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].productID != out[j].productID {
			return out[i].productID < out[j].productID
		}
		return out[i].quantity < out[j].quantity
	})
	return out
}

func itemsToLines(items []cart.Item) []line {
	out := make([]line, 0, len(items))
	for _, it := range items {
		out = append(out, line{it.ProductID, it.Quantity})
	}
	return sortedLines(out)
}

type localCart struct {
	mu    sync.Mutex
	items []cart.Item
}

func (l *localCart) snapshot() []cart.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cart.Clone(l.items)
}

func (l *localCart) add(id string, qty int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it := cart.NewItem(cart.Product{ID: id})
	it.Quantity = qty
	l.items = append(l.items, it)
}

func (l *localCart) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

type fakeLeases struct {
	mu    sync.Mutex
	lease session.Lease
}

func newLeases(credential string) *fakeLeases {
	return &fakeLeases{lease: session.Lease{Epoch: 1, Credential: credential}}
}

func (f *fakeLeases) Lease() session.Lease {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lease
}

// relogin выход и вход другим пользователем: два поколения сессии
func (f *fakeLeases) relogin(credential string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lease = session.Lease{Epoch: f.lease.Epoch + 2, Credential: credential}
}

// gatedCart пишет вызовы с учетными данными и держит первую очистку до открытия gate
type gatedCart struct {
	mu      sync.Mutex
	calls   []string
	cleared int
	entered chan struct{}
	gate    chan struct{}
}

func newGatedCart() *gatedCart {
	return &gatedCart{entered: make(chan struct{}), gate: make(chan struct{})}
}

func (g *gatedCart) record(ctx context.Context, call string) {
	l, _ := session.LeaseFrom(ctx)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call+" "+l.Credential)
}

func (g *gatedCart) ClearCart(ctx context.Context) error {
	g.record(ctx, "clear")
	g.mu.Lock()
	g.cleared++
	first := g.cleared == 1
	g.mu.Unlock()
	if first {
		close(g.entered)
		<-g.gate
	}
	return nil
}

func (g *gatedCart) AddCartItem(ctx context.Context, productID string, _ int) error {
	g.record(ctx, "add "+productID)
	return nil
}

func (g *gatedCart) log() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string{}, g.calls...)
}

func TestFullReplace_SessionChangeAbortsRun(t *testing.T) {
	remote := newGatedCart()
	local := &localCart{}
	local.add("alice-item", 1)
	leases := newLeases("tok-alice")
	r := NewFullReplace(remote, local.snapshot, leases, logger.Discard())

	alice := session.WithLease(context.Background(), leases.Lease())
	first := make(chan error, 1)
	queued := make(chan error, 1)

	go func() { first <- r.Sync(alice) }()
	<-remote.entered

	go func() { queued <- r.Sync(alice) }()
	require.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return len(r.waiters) == 2
	}, time.Second, time.Millisecond)

	leases.relogin("tok-bob")
	local.reset()
	local.add("bob-item", 2)
	close(remote.gate)

	assert.ErrorIs(t, <-first, session.ErrSessionChanged)
	assert.ErrorIs(t, <-queued, session.ErrSessionChanged)
	assert.Equal(t, []string{"clear tok-alice"}, remote.log())

	// запрос прежней сессии уже не принимается
	assert.ErrorIs(t, r.Sync(alice), session.ErrSessionChanged)

	require.NoError(t, r.Sync(context.Background()))
	assert.Equal(t, []string{"clear tok-alice", "clear tok-bob", "add bob-item tok-bob"}, remote.log())
}

func TestFullReplace_ServerMatchesLocalMultiset(t *testing.T) {
	remote := &fakeCart{}
	local := &localCart{}
	local.add("apple", 2)
	local.add("apple", 1)
	local.add("milk", 3)

	r := NewFullReplace(remote, local.snapshot, newLeases("tok"), logger.Discard())
	require.NoError(t, r.Sync(context.Background()))
	assert.Equal(t, itemsToLines(local.snapshot()), remote.multiset())

	// повторная синхронизация не дублирует строки
	require.NoError(t, r.Sync(context.Background()))
	assert.Equal(t, itemsToLines(local.snapshot()), remote.multiset())
}

func TestFullReplace_ConcurrentRequestsNeverOverlap(t *testing.T) {
	remote := &fakeCart{delay: 10 * time.Millisecond}
	local := &localCart{}
	r := NewFullReplace(remote, local.snapshot, newLeases("tok"), logger.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		local.add("p", i+1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Sync(context.Background()))
		}()
	}
	wg.Wait()

	assert.False(t, remote.overlap.Load(), "прогоны синхронизации пересеклись")
	assert.Less(t, remote.runs.Load(), int32(20), "запросы должны схлопываться")
	assert.Equal(t, itemsToLines(local.snapshot()), remote.multiset())
}

func TestFullReplace_ErrorReachesWaiters(t *testing.T) {
	remote := &fakeCart{failAdd: "bad"}
	local := &localCart{}
	local.add("good", 1)
	local.add("bad", 1)

	err := NewFullReplace(remote, local.snapshot, newLeases("tok"), logger.Discard()).Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestFullReplace_ClearErrorStopsRun(t *testing.T) {
	remote := &fakeCart{clearErr: errors.New("503")}
	local := &localCart{}
	local.add("apple", 1)

	err := NewFullReplace(remote, local.snapshot, newLeases("tok"), logger.Discard()).Sync(context.Background())
	require.Error(t, err)
	assert.Empty(t, remote.multiset())
}

func TestFullReplace_CancelledWaitDoesNotStopRun(t *testing.T) {
	remote := &fakeCart{delay: 50 * time.Millisecond}
	local := &localCart{}
	local.add("apple", 1)
	r := NewFullReplace(remote, local.snapshot, newLeases("tok"), logger.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Sync(ctx), context.DeadlineExceeded)

	require.NoError(t, r.Sync(context.Background()))
	assert.Equal(t, []line{{"apple", 1}}, remote.multiset())
}

type MockFavoritesRemote struct {
	mock.Mock
}

func (m *MockFavoritesRemote) AddFavorite(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockFavoritesRemote) RemoveFavorite(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func TestIncremental_Toggle(t *testing.T) {
	remote := new(MockFavoritesRemote)
	remote.On("AddFavorite", mock.Anything, "p1").Return(nil).Once()
	remote.On("RemoveFavorite", mock.Anything, "p2").Return(errors.New("404")).Once()

	inc := NewIncremental(remote)
	assert.NoError(t, inc.Toggle(context.Background(), "p1", true))

	err := inc.Toggle(context.Background(), "p2", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	remote.AssertExpectations(t)
}
