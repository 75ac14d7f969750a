package cron

import (
	"context"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

// 單次補償工作的上限時間
const reconcileTimeout = 2 * time.Minute

type Cron struct {
	logger          *zap.Logger
	server          *cron.Cron
	schedule        string
	identityService *service.IdentityService
}

// NewCron .
func NewCron(logger *zap.Logger, config *config.Configuration, identityService *service.IdentityService) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Cron{
		logger:          logger,
		server:          server,
		schedule:        config.Identity.ReconcileSchedule,
		identityService: identityService,
	}
}

func (c *Cron) Run() error {
	if c.schedule != "" {
		if _, err := c.server.AddFunc(c.schedule, c.reconcileIdentities); err != nil {
			return err
		}
		c.logger.Info("identity reconcile scheduled", zap.String("schedule", c.schedule))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	stopped := c.server.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reconcileIdentities 刪除建立 user 失敗後留下的 identity
func (c *Cron) reconcileIdentities() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	deleted, err := c.identityService.ReconcileOrphans(ctx)
	if err != nil {
		c.logger.Error("identity reconcile failed", zap.Int("deleted", deleted), zap.Error(err))
		return
	}
	if deleted > 0 {
		c.logger.Info("identity reconcile finished", zap.Int("deleted", deleted))
	}
}
