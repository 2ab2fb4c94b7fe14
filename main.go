package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dsp/neweden/internal/config"
	"github.com/dsp/neweden/internal/logger"
	"github.com/dsp/neweden/internal/navigation"
	"github.com/dsp/neweden/internal/sde"
	"github.com/dsp/neweden/internal/universe"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "neweden.json", "config file path")
	dbPath := flag.String("db", "", "SDE sqlite database (overrides config)")
	route := flag.String("route", "", "comma-separated waypoint system names")
	prefer := flag.String("prefer", "", "cost policy: shortest | highsec | lowsec")
	radius := flag.Float64("radius", 0, "list systems within this many lightyears of the first waypoint")
	titan := flag.String("titan", "", "system hosting a titan bridge to overlay")
	blackops := flag.String("blackops", "", "system hosting a black ops bridge to overlay")
	calibration := flag.Int("calibration", -1, "jump drive calibration level (overrides config)")
	conservation := flag.Int("conservation", -1, "jump fuel conservation level (overrides config)")
	flag.Parse()

	logger.Banner(version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Config", err.Error())
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *prefer != "" {
		cfg.Preference = *prefer
	}
	if *calibration >= 0 {
		cfg.JumpDriveCalibration = *calibration
	}
	if *conservation >= 0 {
		cfg.JumpFuelConservation = *conservation
	}

	logger.Info("SDE", fmt.Sprintf("Loading %s", cfg.DatabasePath))
	data, err := sde.Load(cfg.DatabasePath)
	if err != nil {
		logger.Error("SDE", fmt.Sprintf("Load failed: %v", err))
		os.Exit(1)
	}
	logger.Success("SDE", fmt.Sprintf("%d systems loaded", data.Universe.Len()))

	waypoints := resolveWaypoints(data, *route)
	if len(waypoints) == 0 {
		logger.Error("Route", "no waypoints; pass -route A,B[,C...]")
		os.Exit(1)
	}

	if *radius > 0 {
		listRadius(data, waypoints[0], universe.Lightyears(*radius))
		return
	}

	if len(waypoints) < 2 {
		logger.Error("Route", "need at least two waypoints for a route")
		os.Exit(1)
	}

	nav := overlay(data, cfg, *titan, *blackops)
	preference, err := parsePreference(cfg.Preference)
	if err != nil {
		logger.Error("Route", err.Error())
		os.Exit(1)
	}

	path := navigation.NewPathBuilder(nav).
		Waypoints(waypoints).
		Prefer(preference).
		Build()
	if path == nil {
		logger.Error("Route", "no route between the given waypoints")
		os.Exit(1)
	}

	printPath(path)
	logger.Success("Route", fmt.Sprintf("%d jumps (%s)", path.Jumps(), preference))
}

// overlay wraps the base universe with the requested bridges, if any.
func overlay(data *sde.Data, cfg *config.Config, titan, blackops string) universe.Navigatable {
	var nav universe.Navigatable = data.Universe
	builder := universe.NewExtendedUniverseBuilder(nav)
	extended := false

	add := func(name string, class universe.BridgeClass) {
		if name == "" {
			return
		}
		origin := data.ResolveSystem(name)
		if origin == nil {
			logger.Error("Bridge", fmt.Sprintf("unknown system %q", name))
			os.Exit(1)
		}
		bridge := universe.BridgeType{
			Class:                class,
			JumpDriveCalibration: cfg.JumpDriveCalibration,
			JumpFuelConservation: cfg.JumpFuelConservation,
		}
		builder.Bridge(origin.ID, bridge)
		logger.Info("Bridge", fmt.Sprintf("%s at %s, range %.1f ly", bridge, origin.Name, float64(bridge.Range())))
		extended = true
	}
	add(titan, universe.BridgeTitan)
	add(blackops, universe.BridgeBlackOps)

	if !extended {
		return nav
	}
	return builder.Build()
}

func resolveWaypoints(data *sde.Data, route string) []*universe.System {
	var systems []*universe.System
	for _, name := range strings.Split(route, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s := data.ResolveSystem(name)
		if s == nil {
			logger.Error("Route", fmt.Sprintf("unknown system %q", name))
			os.Exit(1)
		}
		systems = append(systems, s)
	}
	return systems
}

func parsePreference(s string) (navigation.Preference, error) {
	switch strings.ToLower(s) {
	case "", "shortest":
		return navigation.PreferShortest, nil
	case "highsec":
		return navigation.PreferHighsec, nil
	case "lowsec", "lowsec-and-nullsec":
		return navigation.PreferLowsecAndNullsec, nil
	}
	return 0, fmt.Errorf("unknown preference %q", s)
}

func listRadius(data *sde.Data, origin *universe.System, r universe.Lightyears) {
	systems, ok := data.Universe.GetSystemsInRadius(origin.ID, r.Meters())
	if !ok {
		logger.Error("Range", fmt.Sprintf("unknown system %q", origin.Name))
		os.Exit(1)
	}
	logger.Info("Range", fmt.Sprintf("%d systems within %.1f ly of %s", len(systems), float64(r), origin.Name))
	for _, s := range systems {
		dist := origin.Coordinate.Distance(s.Coordinate)
		fmt.Printf("  %-24s %s  %.2f ly\n", s.Name, s.Security.Class(), float64(dist)/float64(universe.Lightyears(1).Meters()))
	}
}

func printPath(path *navigation.Path) {
	it := path.Iter()
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		switch el.Kind {
		case navigation.ElementWaypoint:
			fmt.Printf("  ◆ %s [%s]\n", el.System, el.System.Security.Class())
		case navigation.ElementSystem:
			fmt.Printf("    %s [%s]\n", el.System, el.System.Security.Class())
		case navigation.ElementConnection:
			fmt.Printf("      ↓ %s\n", el.Connection.Type)
		}
	}
}
