package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/skirmish/ecs/component"
)

var ErrInvalidBounds = errors.New("prefabs: arena bounds must be positive")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AISpec struct {
	SearchRadius     float64  `yaml:"search_radius"`
	AcceptanceRadius float64  `yaml:"acceptance_radius"`
	SearchInterval   Duration `yaml:"search_interval"`
	LoseRange        float64  `yaml:"lose_range"`
	SensePlayersOnly *bool    `yaml:"sense_players_only"`
}

// Config converts the spec, leaving defaults in place of omitted fields.
func (s AISpec) Config() component.AIConfig {
	cfg := component.AIConfig{
		SearchRadius:     s.SearchRadius,
		AcceptanceRadius: s.AcceptanceRadius,
		SearchInterval:   time.Duration(s.SearchInterval),
		LoseRange:        s.LoseRange,
		SensePlayersOnly: true,
	}
	if s.SensePlayersOnly != nil {
		cfg.SensePlayersOnly = *s.SensePlayersOnly
	}
	return cfg.Normalized()
}

type SensorSpec struct {
	SightRadius     float64  `yaml:"sight_radius"`
	HalfAngleDeg    float64  `yaml:"half_angle_deg"`
	ResightInterval Duration `yaml:"resight_interval"`
}

func (s SensorSpec) Sensor() component.Sensor {
	out := component.DefaultSensor()
	if s.SightRadius > 0 {
		out.SightRadius = s.SightRadius
	}
	if s.HalfAngleDeg > 0 {
		out.HalfAngle = mgl64.DegToRad(math.Min(s.HalfAngleDeg, 180))
	}
	if s.ResightInterval > 0 {
		out.ResightInterval = time.Duration(s.ResightInterval)
	}
	return out
}

type WeaponSpec struct {
	Range  float64  `yaml:"range"`
	Damage *float64 `yaml:"damage"`
	Socket string   `yaml:"socket"`
}

func (s WeaponSpec) Weapon() component.Weapon {
	w := component.Weapon{Range: s.Range, Damage: component.DefaultWeaponDamage, Socket: s.Socket}
	if s.Damage != nil {
		w.Damage = *s.Damage
	}
	return w.Normalized()
}

// FirePolicySpec selects how an agent gates its shots. Kind is one of
// "always", "cooldown" or "script".
type FirePolicySpec struct {
	Kind     string   `yaml:"kind"`
	Cooldown Duration `yaml:"cooldown"`
	MaxRange float64  `yaml:"max_range"`
	Script   string   `yaml:"script"`
}

type AgentSpec struct {
	Name       string          `yaml:"name"`
	Health     float64         `yaml:"health"`
	MoveSpeed  float64         `yaml:"move_speed"`
	Radius     float64         `yaml:"radius"`
	AI         AISpec          `yaml:"ai"`
	Sensor     SensorSpec      `yaml:"sensor"`
	Weapon     WeaponSpec      `yaml:"weapon"`
	Sockets    map[string]Vec3 `yaml:"sockets"`
	FirePolicy FirePolicySpec  `yaml:"fire_policy"`
}

type PlayerSpec struct {
	Name       string          `yaml:"name"`
	Health     float64         `yaml:"health"`
	MoveSpeed  float64         `yaml:"move_speed"`
	Radius     float64         `yaml:"radius"`
	TurnRate   float64         `yaml:"turn_rate"`
	LookUpRate float64         `yaml:"look_up_rate"`
	Weapon     WeaponSpec      `yaml:"weapon"`
	Sockets    map[string]Vec3 `yaml:"sockets"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	YawDeg float64 `yaml:"yaw_deg"`
}

type ArenaSpec struct {
	Name          string      `yaml:"name"`
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	CellSize      float64     `yaml:"cell_size"`
	TraceLifetime Duration    `yaml:"trace_lifetime"`
	TraceColor    YAMLColor   `yaml:"trace_color"`
	Obstacles     []RectSpec  `yaml:"obstacles"`
	Player        SpawnSpec   `yaml:"player"`
	Agents        []SpawnSpec `yaml:"agents"`
}

func LoadAgentSpec(name string) (AgentSpec, error) {
	return LoadSpec[AgentSpec](name)
}

func LoadPlayerSpec(name string) (PlayerSpec, error) {
	return LoadSpec[PlayerSpec](name)
}

func LoadArenaSpec(name string) (ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](name)
	if err != nil {
		return spec, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return spec, fmt.Errorf("prefabs: arena %s: %w", name, ErrInvalidBounds)
	}
	return spec, nil
}

// Duration accepts Go duration strings ("100ms") or plain numbers of
// seconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar")
	}
	s := strings.TrimSpace(value.Value)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Vec3 decodes a two or three element sequence.
type Vec3 mgl64.Vec3

func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	var parts []float64
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("vector must be a list of numbers: %w", err)
	}
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("vector needs 2 or 3 components, got %d", len(parts))
	}
	*v = Vec3{}
	copy(v[:], parts)
	return nil
}

// Sockets converts socket offsets for the entity's Sockets component.
func Sockets(specs map[string]Vec3) component.Sockets {
	out := make(component.Sockets, len(specs))
	for name, v := range specs {
		out[name] = mgl64.Vec3(v)
	}
	return out
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the color, or fallback when none was configured.
func (c YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
