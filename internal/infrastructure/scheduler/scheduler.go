package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/config"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/logger"
)

// Scheduler corre las tareas periódicas de inventario: el barrido de
// vencimientos (castigo de stock vencido a merma) y el marcado rápido de
// estados expired entre barridos.
type Scheduler struct {
	cron  *cron.Cron
	sweep *appinventory.ExpirySweepUseCase
	cfg   config.SweepConfig
	log   *logger.Logger
}

// New construye el scheduler.
func New(cfg config.SweepConfig, sweep *appinventory.ExpirySweepUseCase, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		sweep: sweep,
		cfg:   cfg,
		log:   log,
	}
}

// Start registra los jobs y arranca el cron. Con Sweep deshabilitado no hace nada.
func (s *Scheduler) Start() {
	if !s.cfg.Enabled {
		s.log.Info().Msg("barrido de vencimientos deshabilitado")
		return
	}
	if _, err := s.cron.AddFunc(s.cfg.Spec, s.runSweep); err != nil {
		s.log.Error().Err(err).Str("spec", s.cfg.Spec).Msg("programar barrido de vencimientos")
	}
	if _, err := s.cron.AddFunc(s.cfg.StatusSpec, s.markExpired); err != nil {
		s.log.Error().Err(err).Str("spec", s.cfg.StatusSpec).Msg("programar marcado de vencidos")
	}
	s.log.Info().Str("sweep", s.cfg.Spec).Str("status", s.cfg.StatusSpec).Msg("scheduler iniciado")
	s.cron.Start()
}

// Stop detiene el cron; los jobs en curso terminan.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := s.sweep.RunExpirySweep(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de vencimientos")
		return
	}
	if summary.ProcessedCount > 0 {
		s.log.Info().
			Int("processed", summary.ProcessedCount).
			Str("waste_cost", summary.TotalWasteCost.String()).
			Msg("barrido de vencimientos completado")
	}
}

func (s *Scheduler) markExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.sweep.MarkExpiredStatus(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("marcado de insumos vencidos")
		return
	}
	if n > 0 {
		s.log.Info().Int("marked", n).Msg("insumos marcados como vencidos")
	}
}
