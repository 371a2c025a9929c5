package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/tinytank/ecs"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// TuningFile is the prefab holding every gameplay constant.
const TuningFile = "tank.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

type TuningSpec struct {
	Name       string         `yaml:"name"`
	Window     WindowSpec     `yaml:"window"`
	Simulation SimulationSpec `yaml:"simulation"`
	Player     PlayerSpec     `yaml:"player"`
	Turret     TurretSpec     `yaml:"turret"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Debug      DebugSpec      `yaml:"debug"`
}

type WindowSpec struct {
	Title      string    `yaml:"title"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	ClearColor YAMLColor `yaml:"clear_color"`
}

type SimulationSpec struct {
	// TickRate is the number of fixed ticks per simulated second.
	TickRate int `yaml:"tick_rate"`
}

type PlayerSpec struct {
	Accel        float64   `yaml:"accel"`
	Damping      float64   `yaml:"damping"`
	Radius       float64   `yaml:"radius"`
	Sides        int       `yaml:"sides"`
	Fill         YAMLColor `yaml:"fill"`
	Outline      YAMLColor `yaml:"outline"`
	OutlineWidth float64   `yaml:"outline_width"`
}

type TurretSpec struct {
	OffsetX float64   `yaml:"offset_x"`
	OffsetY float64   `yaml:"offset_y"`
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Fill    YAMLColor `yaml:"fill"`
}

type ProjectileSpec struct {
	Speed  float64   `yaml:"speed"`
	Radius float64   `yaml:"radius"`
	Sides  int       `yaml:"sides"`
	Fill   YAMLColor `yaml:"fill"`
	// MaxLive caps live projectiles; 0 disables the cap.
	MaxLive int `yaml:"max_live"`
}

type DebugSpec struct {
	CrossSize  float64   `yaml:"cross_size"`
	CrossColor YAMLColor `yaml:"cross_color"`
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() TuningSpec {
	return TuningSpec{
		Name: "tiny_tank",
		Window: WindowSpec{
			Title:      "Tiny Tank",
			Width:      800,
			Height:     600,
			ClearColor: YAMLColor{color.NRGBA{R: 0x4D, G: 0x59, B: 0x82, A: 0xFF}},
		},
		Simulation: SimulationSpec{TickRate: 120},
		Player: PlayerSpec{
			Accel:        0.37,
			Damping:      0.9,
			Radius:       20,
			Sides:        30,
			Fill:         YAMLColor{color.NRGBA{R: 0x59, G: 0x99, B: 0xFC, A: 0xFF}},
			Outline:      YAMLColor{colornames.Black},
			OutlineWidth: 4,
		},
		Turret: TurretSpec{
			OffsetX: 24,
			Width:   16,
			Height:  16,
			Fill:    YAMLColor{colornames.Black},
		},
		Projectile: ProjectileSpec{
			Speed:  10,
			Radius: 6,
			Sides:  30,
			Fill:   YAMLColor{colornames.Black},
		},
		Debug: DebugSpec{
			CrossSize:  15,
			CrossColor: YAMLColor{colornames.Red},
		},
	}
}

// LoadTuning reads the tuning prefab, preferring the on-disk copy.
func LoadTuning() (TuningSpec, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

// LoadTuningFile reads a tuning file from an explicit path.
func LoadTuningFile(path string) (TuningSpec, error) {
	data, err := LoadFile(path)
	if err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML over the defaults, so omitted keys keep their
// shipped values, and validates the result. A document with no content is
// rejected; editors briefly leave a file empty while saving it.
func ParseTuning(data []byte) (TuningSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if len(doc.Content) == 0 {
		return TuningSpec{}, fmt.Errorf("%w: empty document", ErrInvalidTuning)
	}
	spec := DefaultTuning()
	if err := doc.Decode(&spec); err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return TuningSpec{}, err
	}
	return spec, nil
}

func (s TuningSpec) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidTuning, s.Window.Width, s.Window.Height)
	case s.Simulation.TickRate <= 0 || s.Simulation.TickRate > ecs.MaxTickRate:
		return fmt.Errorf("%w: tick_rate %d must be in [1, %d]", ErrInvalidTuning, s.Simulation.TickRate, ecs.MaxTickRate)
	case s.Player.Damping < 0 || s.Player.Damping >= 1:
		return fmt.Errorf("%w: damping %v must be in [0, 1)", ErrInvalidTuning, s.Player.Damping)
	case s.Projectile.Speed < 0:
		return fmt.Errorf("%w: projectile speed %v", ErrInvalidTuning, s.Projectile.Speed)
	case s.Projectile.MaxLive < 0:
		return fmt.Errorf("%w: max_live %d", ErrInvalidTuning, s.Projectile.MaxLive)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns c's colour, or fallback when c was never set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
