// Package sde loads the universe graph from an EVE static data export
// in sqlite form (the mapSolarSystems and mapSolarSystemJumps tables).
// It is the boundary collaborator of the routing core: its only job is
// to produce the two flat collections the universe is built from.
package sde

import (
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/dsp/neweden/internal/universe"
)

// Data is the loaded universe plus the name lookup the CLI needs.
type Data struct {
	Universe     *universe.Universe
	SystemByName map[string]universe.SystemID
}

// ResolveSystem finds a system by name, case-insensitively.
func (d *Data) ResolveSystem(name string) *universe.System {
	id, ok := d.SystemByName[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return d.Universe.GetSystem(id)
}

// Load opens the SDE database and builds the universe from it. The
// database is only ever read. Failures are surfaced to the caller;
// there is no retry here.
func Load(path string) (*Data, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sde: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sde: %w", err)
	}
	return FromDB(db)
}

// FromDB builds the universe from an already-open SDE database. The
// two tables load concurrently; database/sql connections are safe to
// share.
func FromDB(db *sql.DB) (*Data, error) {
	var (
		systems     []universe.System
		connections []universe.Connection
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		systems, err = loadSystems(db)
		return err
	})
	g.Go(func() error {
		var err error
		connections, err = loadJumps(db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]universe.SystemID, len(systems))
	for _, s := range systems {
		byName[strings.ToLower(s.Name)] = s.ID
	}

	return &Data{
		Universe:     universe.NewUniverse(universe.NewSystemMap(systems), universe.NewAdjacentMap(connections)),
		SystemByName: byName,
	}, nil
}

// loadSystems reads known space and wormhole space; everything above
// the wormhole range (jove space, abyssal pockets) is not navigable
// and stays out of the graph.
func loadSystems(db *sql.DB) ([]universe.System, error) {
	rows, err := db.Query(`
		SELECT solarSystemID, solarSystemName, x, y, z, security
		FROM mapSolarSystems
		WHERE solarSystemID < 32000000
	`)
	if err != nil {
		return nil, fmt.Errorf("query systems: %w", err)
	}
	defer rows.Close()

	var systems []universe.System
	for rows.Next() {
		var (
			id       int64
			name     string
			x, y, z  float64
			security float64
		)
		if err := rows.Scan(&id, &name, &x, &y, &z, &security); err != nil {
			return nil, fmt.Errorf("scan system: %w", err)
		}
		systems = append(systems, universe.System{
			ID:         universe.SystemID(id),
			Name:       name,
			Coordinate: universe.Coordinate{X: x, Y: y, Z: z},
			Security:   universe.Security(security),
		})
	}
	return systems, rows.Err()
}

// loadJumps reads the stargate topology. Wormhole space has no
// database-recorded jumps, so both endpoints are restricted to known
// space. The stargate subtype falls out of comparing the region and
// constellation of the two endpoints.
func loadJumps(db *sql.DB) ([]universe.Connection, error) {
	rows, err := db.Query(`
		SELECT fromRegionID, fromConstellationID, fromSolarSystemID,
		       toSolarSystemID, toConstellationID, toRegionID
		FROM mapSolarSystemJumps
		WHERE fromSolarSystemID < 31000000 AND toSolarSystemID < 31000000
	`)
	if err != nil {
		return nil, fmt.Errorf("query jumps: %w", err)
	}
	defer rows.Close()

	var connections []universe.Connection
	for rows.Next() {
		var fromRegion, fromConstellation, from, to, toConstellation, toRegion int64
		if err := rows.Scan(&fromRegion, &fromConstellation, &from, &to, &toConstellation, &toRegion); err != nil {
			return nil, fmt.Errorf("scan jump: %w", err)
		}
		connections = append(connections, universe.Connection{
			From: universe.SystemID(from),
			To:   universe.SystemID(to),
			Type: stargateType(fromRegion, fromConstellation, toConstellation, toRegion),
		})
	}
	return connections, rows.Err()
}

func stargateType(fromRegion, fromConstellation, toConstellation, toRegion int64) universe.StargateType {
	switch {
	case fromRegion != toRegion:
		return universe.StargateRegional
	case fromConstellation != toConstellation:
		return universe.StargateConstellation
	default:
		return universe.StargateLocal
	}
}
