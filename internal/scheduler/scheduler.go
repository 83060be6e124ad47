// Package scheduler tareas periódicas del painel (revisión de estoque baixo).
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
)

// InventoryOverview fuente de la revisión (implementada por usecase.ProductUseCase).
type InventoryOverview interface {
	Overview(ctx context.Context) (*dto.InventoryOverviewDTO, error)
}

// Alert producto en o por debajo del mínimo.
type Alert struct {
	ProductID string
	Name      string
	Stock     int
	MinStock  int
	Status    string
}

// Notifier recibe las alertas de cada revisión. Opcional: sin notifier sólo se registran en log.
type Notifier func(ctx context.Context, alerts []Alert)

// Scheduler envuelve cron con la revisión de stock bajo.
type Scheduler struct {
	cron      *cron.Cron
	inventory InventoryOverview
	notify    Notifier
	log       zerolog.Logger
	timeout   time.Duration
}

// New crea el scheduler. El parser es el estándar de 5 campos (min hora dia mes dia-semana).
func New(inventory InventoryOverview, notify Notifier, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		inventory: inventory,
		notify:    notify,
		log:       log,
		timeout:   30 * time.Second,
	}
}

// Start agenda la revisión con la expresión indicada y arranca el cron.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("scheduler: expresión cron %q: %w", spec, err)
	}
	s.log.Info().Str("cron", spec).Msg("revisão de estoque agendada")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine la tarea en curso (o a que venza ctx).
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler: tarea en curso no terminó antes del cierre")
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.Sweep(ctx); err != nil {
		s.log.Error().Err(err).Msg("falha na revisão de estoque")
	}
}

// Sweep ejecuta una revisión: registra cada producto con estoque baixo y llama al notifier.
func (s *Scheduler) Sweep(ctx context.Context) ([]Alert, error) {
	overview, err := s.inventory.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("scheduler: overview: %w", err)
	}
	alerts := make([]Alert, 0, len(overview.LowStock))
	for _, p := range overview.LowStock {
		alerts = append(alerts, Alert{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
			Status:    p.Status,
		})
		s.log.Warn().
			Str("product_id", p.ID).
			Str("product", p.Name).
			Int("stock", p.Stock).
			Int("min_stock", p.MinStock).
			Msg("estoque baixo")
	}
	if len(alerts) > 0 && s.notify != nil {
		s.notify(ctx, alerts)
	}
	s.log.Debug().Int("low_stock", len(alerts)).Msg("revisão de estoque concluída")
	return alerts, nil
}
