package mutation

import "context"

// Pending исход операции, которая еще может выполняться на сервере
type Pending struct {
	done    chan struct{}
	err     error
	skipped bool
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func resolved(err error) *Pending {
	p := newPending()
	p.resolve(err)
	return p
}

func skipped() *Pending {
	p := resolved(nil)
	p.skipped = true
	return p
}

func (p *Pending) resolve(err error) {
	p.err = err
	close(p.done)
}

// Wait ждет ответа сервера
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Skipped операция не выполнялась, потому что не было подходящей сессии
func (p *Pending) Skipped() bool {
	return p.skipped
}
