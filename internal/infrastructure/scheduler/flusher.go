// Package scheduler vuelca periódicamente los snapshots en memoria (catálogo,
// reservas, pagos, usuarios) usando una expresión cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Flusher colección que sabe escribir su snapshot.
type Flusher interface {
	Flush(ctx context.Context)
}

// FlushScheduler ejecuta Flush sobre todas las colecciones registradas según la expresión cron.
type FlushScheduler struct {
	cron     *cron.Cron
	flushers map[string]Flusher
	timeout  time.Duration
	log      zerolog.Logger
}

// New valida spec (estándar de 5 campos o descriptores como "@every 5m") y registra el job.
// No arranca hasta Start.
func New(spec string, flushers map[string]Flusher, log zerolog.Logger) (*FlushScheduler, error) {
	s := &FlushScheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		flushers: flushers,
		timeout:  30 * time.Second,
		log:      log,
	}
	if _, err := s.cron.AddFunc(spec, s.FlushAll); err != nil {
		return nil, fmt.Errorf("scheduler: expresión cron %q: %w", spec, err)
	}
	return s, nil
}

// Start arranca el cron en su propia goroutine.
func (s *FlushScheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("collections", len(s.flushers)).Msg("volcado periódico de snapshots iniciado")
}

// Stop detiene el cron y espera a que termine un volcado en curso (o a que ctx expire).
func (s *FlushScheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler: volcado en curso no terminó antes del apagado")
	}
}

// FlushAll vuelca todas las colecciones.
func (s *FlushScheduler) FlushAll() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	for name, f := range s.flushers {
		f.Flush(ctx)
		s.log.Debug().Str("collection", name).Msg("snapshot volcado")
	}
	s.log.Debug().Dur("elapsed", time.Since(start)).Msg("volcado periódico completado")
}
