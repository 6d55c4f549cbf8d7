package timers

import "time"

//go:generate mockgen -source=timer_service.go -destination=./mocks/timer_service_mock.go -package=mocks
type TimerService interface {
	// Every invokes callback once per interval, the first time one full
	// interval after the call. Callbacks registered through one TimerService
	// run for the process lifetime; there is no cancellation.
	Every(interval time.Duration, callback func())
}

type timerService struct{}

func NewTimerService() TimerService {
	return &timerService{}
}

func (t *timerService) Every(interval time.Duration, callback func()) {
	// One-shot timer that re-arms itself after each firing, so a slow
	// callback delays the next firing instead of stacking up behind it.
	var fire func()
	fire = func() {
		callback()
		time.AfterFunc(interval, fire)
	}
	time.AfterFunc(interval, fire)
}
