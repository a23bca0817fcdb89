package ordering

import (
	"context"
	"sync"
)

// UserLocks candado por usuario para operaciones de leer-modificar-escribir
// sobre el carrito y el checkout. Usuarios distintos no se bloquean entre sí.
type UserLocks struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewUserLocks construye el registro de candados.
func NewUserLocks() *UserLocks {
	return &UserLocks{slots: make(map[string]chan struct{})}
}

// Lock espera el candado de username o hasta que ctx se cancele.
// Devuelve la función que lo libera.
func (l *UserLocks) Lock(ctx context.Context, username string) (func(), error) {
	slot := l.slot(username)
	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *UserLocks) slot(username string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[username]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[username] = s
	}
	return s
}
