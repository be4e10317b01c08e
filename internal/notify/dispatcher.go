package notify

import "go.uber.org/zap"

// Dispatcher sends confirmation mail off the request path. Failures are
// logged and never reach the booking caller; a full queue drops the
// event rather than block the API.
type Dispatcher struct {
	mailer Mailer
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(mailer Mailer, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.mailer.Send(ev); err != nil {
			d.logger.Warn("notification failed",
				zap.String("to", ev.To),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notification queue full, dropping event",
			zap.String("to", ev.To),
		)
	}
}
