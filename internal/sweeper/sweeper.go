package sweeper

import (
	"context"
	"time"

	"github.com/wkittisak/shoppay/internal/config"
	"github.com/wkittisak/shoppay/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TransferRepo interface {
	FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.TransferReference, error)
	DeletePending(ctx context.Context, transRef string) error
}

// Service removes pending transfer references whose slip check was never
// followed by a top-up. Verified references are never touched, so the
// duplicate-redemption guard keeps its full history.
type Service struct {
	repo          TransferRepo
	ttl           time.Duration
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, repo TransferRepo) *Service {
	return &Service{
		repo:          repo,
		ttl:           time.Duration(cfg.PendingRefTTL) * time.Hour,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Minute * 10,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Pending reference sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	before := time.Now().Add(-s.ttl)
	refs, err := s.repo.FindStalePending(ctx, before, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch stale pending references", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				if err := s.repo.DeletePending(ctx, ref.TransRef); err != nil {
					return err
				}
				zap.L().Debug("swept stale pending reference", zap.String("trans_ref", ref.TransRef))
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping pending references", zap.Error(err))
	}
}
