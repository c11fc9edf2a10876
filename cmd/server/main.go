package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"golang.org/x/sync/errgroup"

	staticcatalog "tilerealm/internal/adapter/catalog/static"
	httpadapter "tilerealm/internal/adapter/http"
	metricsinmem "tilerealm/internal/adapter/metrics/inmemory"
	gormrepo "tilerealm/internal/adapter/repo/gorm"
	memrepo "tilerealm/internal/adapter/repo/memory"
	"tilerealm/internal/app/behavior"
	"tilerealm/internal/app/ports"
	"tilerealm/internal/app/scheduler"
	"tilerealm/internal/app/worldstate"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/sovereign"
	"tilerealm/internal/domain/world"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	catalogs, err := staticcatalog.Load(
		os.Getenv("TILEREALM_RESOURCES_FILE"),
		os.Getenv("TILEREALM_TILETYPES_FILE"),
	)
	if err != nil {
		log.Error("load catalogs", "err", err)
		os.Exit(1)
	}

	stores := buildStores(log)
	rng := rand.New(rand.NewSource(int64(intEnv("TILEREALM_SEED", int(time.Now().UnixNano())))))
	kpi := metricsinmem.NewRecorder()

	w, spawn := buildWorld(log, stores, catalogs, rng, kpi)
	engine := behavior.NewEngine(w, kpi, log, rng)
	sched := scheduler.New(w, engine, stores, kpi, scheduler.Config{
		NPCInterval:      secondsEnv("TILEREALM_NPC_INTERVAL_SECONDS", scheduler.DefaultNPCInterval),
		StrangerInterval: secondsEnv("TILEREALM_STRANGER_INTERVAL_SECONDS", scheduler.DefaultStrangerInterval),
		SaveDebounce:     secondsEnv("TILEREALM_SAVE_DEBOUNCE_SECONDS", scheduler.DefaultSaveDebounce),
		MaxAgentsPerPass: intEnv("TILEREALM_MAX_AGENTS_PER_PASS", scheduler.MaxAgentsPerPass),
		Rand:             rng,
		Log:              log,
	})

	addr := os.Getenv("TILEREALM_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := server.Default(server.WithHostPorts(addr))
	srv.Use(httpadapter.CORSMiddleware())
	httpadapter.Handler{
		World:         w,
		KPI:           kpi,
		SpawnPoint:    spawn,
		StartingCoins: intEnv("TILEREALM_STARTING_COINS", 100),
	}.RegisterRoutes(srv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Run returns ctx.Err() on teardown after flushing the save.
		if err := sched.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("tilerealm server listening", "addr", addr)
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// buildStores opens postgres when a DSN is configured and falls back to
// the in-memory adapters for DB-less local runs.
func buildStores(log *slog.Logger) scheduler.Stores {
	dsn := strings.TrimSpace(os.Getenv("TILEREALM_DB_DSN"))
	if dsn == "" {
		log.Warn("TILEREALM_DB_DSN not set, using in-memory persistence")
		return scheduler.Stores{
			Maps:          memrepo.NewMapRepo(),
			Agents:        memrepo.NewAgentRepo(),
			Players:       memrepo.NewPlayerRepo(),
			Sovereignties: memrepo.NewSovereigntyRepo(),
		}
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Error("open postgres", "err", err)
		os.Exit(1)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Error("migrate", "err", err)
		os.Exit(1)
	}
	return scheduler.Stores{
		Maps:          gormrepo.NewMapRepo(db),
		Agents:        gormrepo.NewAgentRepo(db),
		Players:       gormrepo.NewPlayerRepo(db),
		Sovereignties: gormrepo.NewSovereigntyRepo(db),
		Tx:            gormrepo.NewTxManager(db),
	}
}

type catalogSource interface {
	ports.ResourceCatalogProvider
	ports.TileTypeProvider
}

// buildWorld restores persisted state when present and generates a fresh
// world otherwise. Returns the world and its spawn point.
func buildWorld(log *slog.Logger, stores scheduler.Stores, catalogs catalogSource, rng *rand.Rand, kpi ports.SimMetrics) (*worldstate.World, world.Point) {
	ctx := context.Background()
	genesis := worldstate.GenesisConfig{
		Width:         intEnv("TILEREALM_WORLD_WIDTH", 64),
		Height:        intEnv("TILEREALM_WORLD_HEIGHT", 64),
		NPCCount:      intEnv("TILEREALM_NPC_COUNT", 12),
		StrangerCount: intEnv("TILEREALM_STRANGER_COUNT", 24),
		Rand:          rng,
	}

	grid, err := stores.Maps.LoadMap(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		log.Info("no saved map, generating world", "width", genesis.Width, "height", genesis.Height)
		grid = worldstate.GenerateGrid(genesis, catalogs.Resources())
		if saveErr := stores.Maps.SaveMapData(ctx, grid); saveErr != nil {
			log.Error("save generated map", "err", saveErr)
			os.Exit(1)
		}
	} else if err != nil {
		log.Error("load map", "err", err)
		os.Exit(1)
	}

	var agents []*agent.Agent
	stored, err := stores.Agents.ListAll(ctx)
	if err != nil {
		log.Error("load agents", "err", err)
		os.Exit(1)
	}
	if len(stored) == 0 {
		fresh := worldstate.SpawnPopulation(genesis, grid, catalogs.TileTypes())
		log.Info("spawned population", "npcs", genesis.NPCCount, "strangers", genesis.StrangerCount)
		agents = fresh
	} else {
		for i := range stored {
			a := stored[i]
			agents = append(agents, &a)
		}
	}

	var players []*agent.Player
	records, err := stores.Players.ListAll(ctx)
	if err != nil {
		log.Error("load players", "err", err)
		os.Exit(1)
	}
	for _, rec := range records {
		players = append(players, scheduler.PlayerFromRecord(rec))
	}

	var sovereignties []sovereign.Sovereignty
	if sovereignties, err = stores.Sovereignties.ListAll(ctx); err != nil {
		log.Error("load sovereignties", "err", err)
		os.Exit(1)
	}

	w := worldstate.New(worldstate.Config{
		Grid:          grid,
		Players:       players,
		Agents:        agents,
		Sovereignties: sovereignties,
		Resources:     catalogs.Resources(),
		TileTypes:     catalogs.TileTypes(),
		Metrics:       kpi,
	})
	return w, world.Point{X: genesis.Width / 2, Y: genesis.Height / 2}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func secondsEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
