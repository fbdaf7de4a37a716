// Command emberd runs the Ember entity daemon: periodic heartbeats, SQLite
// snapshots, workspace file rendering, and the HTTP API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/ember/internal/api"
	"github.com/talgya/ember/internal/config"
	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/heartbeat"
	"github.com/talgya/ember/internal/persistence"
	"github.com/talgya/ember/internal/render"
	"github.com/talgya/ember/internal/sched"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Load or Birth ────────────────────────────────────────────────
	state, found, err := db.LoadLatest()
	if err != nil {
		slog.Error("load snapshot", "error", err)
		os.Exit(1)
	}
	if found {
		slog.Info("entity restored",
			"name", state.Seed.Name,
			"species", entity.SpeciesName(state.Seed.Species),
			"growth_day", state.Status.GrowthDay,
		)
	} else {
		state = defaultGenesis(time.Now())
		slog.Info("no saved entity, new genesis",
			"name", state.Seed.Name,
			"species", entity.SpeciesName(state.Seed.Species),
			"hash", state.Seed.Hash[:12],
		)
		if err := db.SaveSnapshot(state, time.Now()); err != nil {
			slog.Error("save genesis snapshot", "error", err)
			os.Exit(1)
		}
	}

	keeper := sched.NewKeeper(state)

	// ── Heartbeat loop ───────────────────────────────────────────────
	loop := sched.NewLoop(cfg.HeartbeatInterval, func(now time.Time) {
		res := keeper.Beat(now)

		if err := db.SaveSnapshot(res.Updated, now); err != nil {
			slog.Error("save snapshot", "error", err)
		}
		if err := db.PruneSnapshots(cfg.SnapshotKeep); err != nil {
			slog.Error("prune snapshots", "error", err)
		}
		if err := db.AppendEvents(beatEvents(res, now)); err != nil {
			slog.Error("append events", "error", err)
		}
		if err := writeWorkspace(cfg.WorkspaceDir, res); err != nil {
			slog.Error("write workspace", "error", err)
		}

		slog.Info("heartbeat",
			"growth_day", res.Updated.Status.GrowthDay,
			"mood", res.Updated.Status.Mood,
			"comfort", res.Updated.Status.Comfort,
			"sulking", res.Updated.Sulk.IsSulking,
			"consolidated", res.MemoryConsolidated,
		)
	})

	// ── HTTP API ─────────────────────────────────────────────────────
	server := &api.Server{
		Keeper:   keeper,
		DB:       db,
		Port:     cfg.APIPort,
		AdminKey: cfg.AdminKey,
	}
	server.Start()

	go loop.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	loop.Stop()
	if err := db.SaveSnapshot(keeper.State(), time.Now()); err != nil {
		slog.Error("final snapshot", "error", err)
	}
	slog.Info("emberd shut down")
}

// defaultGenesis creates a fallback entity when the database is empty. The
// ember CLI's birth command is the intended genesis path.
func defaultGenesis(now time.Time) entity.EntityState {
	seed := entity.NewSeed(
		"ember",
		entity.SpeciesAether,
		entity.CognitionIntuitive,
		entity.TemperamentCuriousCautious,
		entity.FormOrb,
		entity.Traits{Warmth: 55, Resilience: 50, Wonder: 70, Focus: 45, Expression: 60},
		entity.HardwareBody{Board: "unknown"},
		now,
	)
	return entity.New(seed)
}

// beatEvents converts one heartbeat result into event log rows.
func beatEvents(res heartbeat.Result, now time.Time) []persistence.Event {
	events := []persistence.Event{
		{At: now, Kind: "heartbeat", Detail: res.Diary},
	}
	for _, m := range res.NewMilestones {
		events = append(events, persistence.Event{
			At: now, Kind: "milestone",
			Detail: fmt.Sprintf("day %d: %s", m.Day, m.Label),
		})
	}
	for _, ev := range res.NewReversals {
		events = append(events, persistence.Event{
			At: now, Kind: "reversal", Detail: ev.Summary,
		})
	}
	if res.MemoryConsolidated {
		events = append(events, persistence.Event{
			At: now, Kind: "consolidation", Detail: "memory tiers promoted",
		})
	}
	return events
}

// writeWorkspace renders the state files the chat agent reads.
func writeWorkspace(dir string, res heartbeat.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	st := res.Updated
	files := map[string]string{
		"STATE.md":  render.All(st),
		"DIARY.txt": res.Diary + "\n",
	}

	card, err := render.EntityCard(st)
	if err != nil {
		return err
	}
	files["entity.yaml"] = card

	if res.SoulEvilMd != "" {
		files["SOUL_EVIL.md"] = res.SoulEvilMd
	}
	files["ACTIVE_SOUL"] = res.ActiveSoulFile + "\n"

	var firstErr error
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write %s: %w", name, err)
		}
	}
	return firstErr
}
