// Package view contiene las vistas del cliente: estado local, carga asíncrona
// atada al ciclo mount/unmount y render a texto.
package view

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"personal-site/internal/client"
)

// ErrUnmounted se devuelve al operar sobre una vista ya desmontada.
var ErrUnmounted = errors.New("view unmounted")

// lifecycle guarda el estado de montaje. Su mutex protege también el estado de
// la vista que lo contiene.
type lifecycle struct {
	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	mounted   bool
	unmounted bool
	done      chan struct{}
	doneOnce  sync.Once
}

func newLifecycle() *lifecycle {
	return &lifecycle{done: make(chan struct{})}
}

// start marca la vista como montada. Devuelve false si ya estaba montada o
// desmontada, así la carga inicial corre una sola vez.
func (l *lifecycle) start(parent context.Context) (context.Context, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mounted || l.unmounted {
		return nil, false
	}
	l.mounted = true
	l.ctx, l.cancel = context.WithCancel(parent)
	return l.ctx, true
}

// stop cancela lo que esté en vuelo y cierra done.
func (l *lifecycle) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unmounted {
		return
	}
	l.unmounted = true
	if l.cancel != nil {
		l.cancel()
	}
	l.closeDone()
}

// apply ejecuta fn con el lock tomado salvo que la vista ya se haya desmontado.
func (l *lifecycle) apply(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unmounted {
		return false
	}
	fn()
	return true
}

func (l *lifecycle) closeDone() {
	l.doneOnce.Do(func() { close(l.done) })
}

// viewContext devuelve el contexto de la vista combinado con ctx, para que un
// unmount cancele también las operaciones iniciadas por el usuario.
func (l *lifecycle) viewContext(ctx context.Context) (context.Context, context.CancelFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unmounted {
		return nil, nil, ErrUnmounted
	}
	merged, cancel := context.WithCancel(ctx)
	if l.ctx != nil {
		stop := context.AfterFunc(l.ctx, cancel)
		return merged, func() { stop(); cancel() }, nil
	}
	return merged, cancel, nil
}

// formatError serializa el error para mostrarlo tal cual en pantalla.
func formatError(err error) string {
	var payload any
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		payload = apiErr
	} else {
		payload = map[string]string{"message": err.Error()}
	}
	out, mErr := json.MarshalIndent(payload, "", "  ")
	if mErr != nil {
		return err.Error()
	}
	return string(out)
}
