package walks

import "time"

// SetClock permite fijar la hora en tests externos al paquete.
func (s *Service) SetClock(now func() time.Time) { s.now = now }
