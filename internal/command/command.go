package command

import (
	"context"
	"time"

	"stundenmanager/internal/database/mongodb/repository"
	"stundenmanager/internal/service"

	"github.com/google/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCommand)

// Command 維運用的一次性指令
type Command struct {
	logger          *zap.Logger
	mongoRepository *repository.MongoDBRepository
	identityService *service.IdentityService
}

// NewCommand .
func NewCommand(
	logger *zap.Logger,
	mongoRepository *repository.MongoDBRepository,
	identityService *service.IdentityService,
) *Command {
	return &Command{
		logger:          logger,
		mongoRepository: mongoRepository,
		identityService: identityService,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	var timeout time.Duration

	ensureIndexes := &cobra.Command{
		Use:   "ensure-indexes",
		Short: "建立所有 collection 的索引",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return command.EnsureIndexes(ctx, cmd)
		},
	}
	ensureIndexes.Flags().DurationVar(&timeout, "timeout", time.Minute, "指令逾時")

	reconcile := &cobra.Command{
		Use:   "reconcile-identities",
		Short: "刪除沒有對應 user 文件的 identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return command.ReconcileIdentities(ctx, cmd)
		},
	}
	reconcile.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "指令逾時")

	rootCmd.AddCommand(ensureIndexes, reconcile)
}

func (command *Command) EnsureIndexes(ctx context.Context, cmd *cobra.Command) error {
	if err := command.mongoRepository.EnsureIndexes(ctx); err != nil {
		command.logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	cmd.Println("indexes ensured")
	return nil
}

func (command *Command) ReconcileIdentities(ctx context.Context, cmd *cobra.Command) error {
	deleted, err := command.identityService.ReconcileOrphans(ctx)
	cmd.Printf("deleted %d orphan identities\n", deleted)
	if err != nil {
		command.logger.Error("reconcile identities failed", zap.Error(err))
		return err
	}
	return nil
}
