package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/cron"
	"stundenmanager/internal/database/mongodb/repository"
	"stundenmanager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 啟動時建立索引的上限時間
const ensureIndexesTimeout = 30 * time.Second

type RuntimeInfo struct {
	Env       string    `json:"env"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	GoVersion string    `json:"go_version"`
	StartAt   time.Time `json:"start_at"`
}

type App struct {
	conf            *config.Configuration
	logger          *zap.Logger
	cronSrv         *cron.Cron
	httpServer      *http.Server
	healthService   *service.HealthService
	mongoRepository *repository.MongoDBRepository

	appInfo RuntimeInfo // 版本/環境快照（來源 = conf.App）
}

func newHttpServer(
	conf *config.Configuration,
	router *gin.Engine,
) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.FormatUint(uint64(conf.App.Port), 10),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// startHttpServer 同步綁定 port，之後才在背景 Serve；回傳實際監聽位址
func startHttpServer(logger *zap.Logger, server *http.Server) (net.Addr, <-chan error, error) {
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, nil, err
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return listener.Addr(), errCh, nil
}

func newApp(
	conf *config.Configuration,
	logger *zap.Logger,
	httpServer *http.Server,
	healthService *service.HealthService,
	mongoRepository *repository.MongoDBRepository,
	cronSrv *cron.Cron,
) *App {
	return &App{
		conf:            conf,
		logger:          logger,
		httpServer:      httpServer,
		healthService:   healthService,
		mongoRepository: mongoRepository,
		cronSrv:         cronSrv,
		appInfo: RuntimeInfo{
			Env:       conf.App.Env,
			Name:      conf.App.Name,
			Version:   conf.App.Version,
			GoVersion: runtime.Version(),
			StartAt:   time.Now(),
		},
	}
}

// Run 建索引、啟動 cron 與 http server；errCh 會收到 server 非正常結束的錯誤
func (a *App) Run() (<-chan error, error) {
	info := a.appInfo
	a.logger.Info("app runtime info",
		zap.String("env", info.Env),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.String("go_version", info.GoVersion),
		zap.Time("start_at", info.StartAt),
	)

	// 1) 索引（unique index 是重複資料的最後防線）
	ctx, cancel := context.WithTimeout(context.Background(), ensureIndexesTimeout)
	defer cancel()
	if err := a.mongoRepository.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	a.logger.Info("mongodb indexes ensured")

	// 2) 啟動 cron
	if err := a.cronSrv.Run(); err != nil {
		return nil, err
	}
	a.logger.Info("cron server started")

	// 3) 先綁定 port 再打開 readiness
	_, errCh, err := startHttpServer(a.logger, a.httpServer)
	if err != nil {
		_ = a.cronSrv.Stop(ctx)
		return nil, err
	}

	a.healthService.SetReady(true)
	return errCh, nil
}

func (a *App) Close(ctx context.Context) error {
	if a.healthService != nil {
		a.healthService.SetReady(false)
	}

	var errs []error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("http server has been stop")
		}
	}
	if a.cronSrv != nil {
		if err := a.cronSrv.Stop(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("cron server has been stop")
		}
	}
	return errors.Join(errs...)
}

func (a *App) Stop(ctx context.Context) error {
	return a.Close(ctx)
}
