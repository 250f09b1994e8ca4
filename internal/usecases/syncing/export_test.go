package syncing

import "time"

// SetNowForTest substitui o relógio do serviço nos testes do pacote externo.
func SetNowForTest(s *Service, now func() time.Time) {
	s.now = now
}
