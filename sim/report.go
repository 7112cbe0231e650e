package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// EntityReport is the end-of-run state of one combatant.
type EntityReport struct {
	Entity ecs.Entity
	Name   string
	Player bool
	Health float64
	Alive  bool
	Mode   string
}

type Report struct {
	RunID     uuid.UUID
	Arena     string
	Seed      uint64
	Elapsed   time.Duration
	Shots     int
	Hits      int
	Damaged   int
	Defeats   int
	Sightings int
	Lost      int
	Entities  []EntityReport
}

// Report summarizes the run so far.
func (s *Simulation) Report() Report {
	stats := s.Fire.Stats()
	r := Report{
		RunID:     s.RunID,
		Arena:     s.spec.Name,
		Seed:      s.Seed,
		Elapsed:   s.elapsed,
		Shots:     stats.Shots,
		Hits:      stats.Hits,
		Damaged:   stats.Damaged,
		Defeats:   s.counts[ecs.EventDefeated],
		Sightings: s.counts[ecs.EventSighted],
		Lost:      s.counts[ecs.EventLost],
	}

	r.Entities = append(r.Entities, s.entityReport(s.Player))
	for _, e := range s.order {
		r.Entities = append(r.Entities, s.entityReport(e))
	}
	return r
}

func (s *Simulation) entityReport(e ecs.Entity) EntityReport {
	er := EntityReport{Entity: e, Player: e == s.Player}
	if name, ok := ecs.Get(s.World, e, component.NameComponent.Kind()); ok {
		er.Name = string(*name)
	}
	er.Health, er.Alive = s.Model.Health(e)
	if st, ok := ecs.Get(s.World, e, component.AIStateComponent.Kind()); ok {
		er.Mode = st.Mode.String()
	}
	return er
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s arena=%s seed=%d elapsed=%s\n", r.RunID, r.Arena, r.Seed, r.Elapsed)
	fmt.Fprintf(&b, "  shots=%d hits=%d damaged=%d defeats=%d sightings=%d lost=%d\n",
		r.Shots, r.Hits, r.Damaged, r.Defeats, r.Sightings, r.Lost)
	for _, e := range r.Entities {
		status := "alive"
		if !e.Alive {
			status = "defeated"
		}
		role := e.Mode
		if e.Player {
			role = "player"
		}
		fmt.Fprintf(&b, "  %-8s %-10s %-9s hp=%6.1f %s\n", e.Entity, e.Name, role, e.Health, status)
	}
	return b.String()
}
