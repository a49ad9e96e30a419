package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"

	httpadapter "heavenearth/internal/adapter/http"
	"heavenearth/internal/adapter/metrics/inmemory"
	gormrepo "heavenearth/internal/adapter/repo/gorm"
	tomlrepo "heavenearth/internal/adapter/repo/toml"
	"heavenearth/internal/app/ports"
	"heavenearth/internal/app/profile"
	"heavenearth/internal/app/register"
	"heavenearth/internal/app/tick"
	"heavenearth/internal/domain/cultivation"
	"heavenearth/internal/logger"
)

type config struct {
	Addr                string  `env:"HNE_ADDR" envDefault:":8080"`
	DataDir             string  `env:"HNE_DATA_DIR" envDefault:".data"`
	DBDSN               string  `env:"HNE_DB_DSN"`
	TickIntervalSeconds int     `env:"HNE_TICK_INTERVAL_SECONDS" envDefault:"60"`
	ExpGainPerTick      float64 `env:"HNE_EXP_GAIN_PER_TICK" envDefault:"1.0"`
	LogLevel            string  `env:"HNE_LOG_LEVEL" envDefault:"info"`
	Environment         string  `env:"HNE_ENV" envDefault:"development"`
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	players, calendarRepo, err := buildRepos(cfg)
	if err != nil {
		log.Fatal("build repositories", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := ports.SystemClock{}
	worldStart, err := calendarRepo.LoadOrCreateStart(ctx, clock.Now())
	if err != nil {
		log.Fatal("load world calendar", zap.Error(err))
	}

	engine := cultivation.NewEngine(cultivation.DefaultProgression(), cfg.ExpGainPerTick)
	recorder := inmemory.NewRecorder()
	scheduler := &tick.Scheduler{
		Players:  players,
		Engine:   engine,
		Clock:    clock,
		Interval: time.Duration(cfg.TickIntervalSeconds) * time.Second,
		Logger:   log,
		Metrics:  recorder,
	}

	if err := scheduler.CatchUp(ctx); err != nil {
		log.Fatal("offline catch-up", zap.Error(err))
	}
	go func() {
		if err := scheduler.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("tick scheduler exited", zap.Error(err))
		}
	}()

	h := httpadapter.Handler{
		RegisterUC: register.UseCase{Players: players, Clock: clock},
		ProfileUC: profile.UseCase{
			Players:  players,
			Engine:   engine,
			Calendar: cultivation.Calendar{Start: worldStart},
			Clock:    clock,
		},
		Metrics: recorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Info("heavenearth server listening",
		zap.String("addr", cfg.Addr),
		zap.Int("tick_interval_seconds", cfg.TickIntervalSeconds))
	s.Spin()
}

func buildRepos(cfg config) (ports.PlayerRepository, ports.CalendarRepository, error) {
	if cfg.DBDSN != "" {
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := gormrepo.Migrate(db); err != nil {
			return nil, nil, err
		}
		return gormrepo.NewPlayerRepo(db), gormrepo.NewCalendarRepo(db), nil
	}

	players, err := tomlrepo.NewPlayerRepo(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	calendar, err := tomlrepo.NewCalendarRepo(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return players, calendar, nil
}
