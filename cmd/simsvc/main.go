package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"heroes_ai/internal/army"
	"heroes_ai/internal/combat"
	"heroes_ai/internal/config"
	"heroes_ai/internal/pathfind"
	"heroes_ai/internal/preset"
	"heroes_ai/internal/skirmish"
	"heroes_ai/internal/util"
)

func parseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// sideArmy builds one side's preset and prefixes its unit names with the side.
func sideArmy(gen *preset.Generator, catalog []*army.Unit, points int, side combat.Side) *army.Army {
	a := gen.Generate(catalog, points)
	for _, u := range a.Units {
		u.Name = side.String() + "." + u.Name
	}
	return a
}

func main() {
	var cfgDir, catalogPath, out string
	var seed int64
	var n, points, pointsB int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&catalogPath, "catalog", "", "archetype catalog (default <config>/archetypes.yaml)")
	flag.IntVar(&points, "points", 0, "point budget per army (default preset.maxPoints)")
	flag.IntVar(&pointsB, "points-b", 0, "point budget for side B (default -points)")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of battles")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	settings, err := config.LoadSettings(cfgDir)
	if err != nil {
		log.Fatal().Err(err).Msg("settings")
	}
	zerolog.SetGlobalLevel(parseLevel(settings.LogLevel))

	if catalogPath == "" {
		catalogPath = filepath.Join(cfgDir, "archetypes.yaml")
	}
	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog")
	}
	archetypes := catalog.Units()
	if points <= 0 {
		points = settings.Preset.MaxPoints
	}
	if pointsB <= 0 {
		pointsB = points
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	gen := preset.NewGenerator(settings.Preset.MaxPerType)
	battleCfg := func(s int64, record bool) skirmish.Config {
		return skirmish.Config{
			Grid:      pathfind.Grid{Width: settings.Grid.Width, Height: settings.Grid.Height},
			MoveRange: settings.Skirmish.MoveRange,
			MaxRounds: settings.Battle.MaxRounds,
			Seed:      s,
			Record:    record,
			Logger:    log.Logger,
		}
	}

	if n <= 1 {
		a := sideArmy(gen, archetypes, points, combat.SideA)
		b := sideArmy(gen, archetypes, pointsB, combat.SideB)
		res, err := skirmish.Run(ctx, battleCfg(seed, saveLog), a, b)
		if err != nil {
			log.Fatal().Err(err).Msg("battle")
		}
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
			log.Fatal().Err(err).Str("out", out).Msg("write result")
		}
		fmt.Printf("Single battle finished. Winner=%s, rounds=%d, turns=%d -> %s\n",
			res.Winner, res.Outcome.Rounds, res.Outcome.Turns, out)
		return
	}

	type stat struct {
		Wins       map[string]int
		Stalemates int
		Aborted    int
		SumRounds  int
		SumTurns   int
		Survivors  map[string]int
	}
	st := stat{Wins: map[string]int{}, Survivors: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := max(settings.Batch.Workers, 1)
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				a := sideArmy(gen, archetypes, points, combat.SideA)
				b := sideArmy(gen, archetypes, pointsB, combat.SideB)
				res, err := skirmish.Run(ctx, battleCfg(util.BattleSeed(seed, i), false), a, b)

				mu.Lock()
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						log.Error().Err(err).Int("run", i).Msg("battle failed")
					}
					st.Aborted++
					mu.Unlock()
					continue
				}
				st.Wins[res.Winner.String()]++
				if res.Outcome.Stalemate {
					st.Stalemates++
				}
				st.SumRounds += res.Outcome.Rounds
				st.SumTurns += res.Outcome.Turns
				st.Survivors["A"] += res.A.Survivors
				st.Survivors["B"] += res.B.Survivors
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	finished := n - st.Aborted
	ratio := func(v int) float64 {
		if finished == 0 {
			return 0
		}
		return float64(v) / float64(finished)
	}
	summary := map[string]any{
		"runs":          n,
		"finished":      finished,
		"aborted":       st.Aborted,
		"win_rate_a":    ratio(st.Wins["A"]),
		"win_rate_b":    ratio(st.Wins["B"]),
		"draw_rate":     ratio(st.Wins["none"]),
		"stalemates":    st.Stalemates,
		"avg_rounds":    ratio(st.SumRounds),
		"avg_turns":     ratio(st.SumTurns),
		"avg_survivors": map[string]float64{"A": ratio(st.Survivors["A"]), "B": ratio(st.Survivors["B"])},
		"points":        map[string]int{"A": points, "B": pointsB},
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		log.Fatal().Err(err).Str("out", out).Msg("write summary")
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}
