package memory

import (
	"strconv"
	"sync/atomic"
)

// Sequence generador de IDs estrictamente crecientes. Nunca reutiliza valores,
// aunque el recurso asociado se borre.
type Sequence struct {
	last atomic.Uint64
}

// Next devuelve el siguiente ID como string decimal ("1", "2", ...).
func (s *Sequence) Next() string {
	return strconv.FormatUint(s.last.Add(1), 10)
}

// compareIDs ordena IDs numéricos generados por Sequence.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA != nil || errB != nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return 0
}
