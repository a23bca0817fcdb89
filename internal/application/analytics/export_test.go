package analytics

import "time"

// SetClock fija el reloj del caso de uso en tests.
func (uc *DashboardUseCase) SetClock(now func() time.Time) { uc.now = now }
