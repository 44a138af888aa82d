package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/geom"
	"github.com/san-kum/skipstone/internal/hydro"
	"github.com/san-kum/skipstone/internal/phase"
	"github.com/san-kum/skipstone/internal/stone"
)

const (
	DefaultDt       = 0.001
	DefaultDuration = 20.0
)

type Config struct {
	Integrator  string            `yaml:"integrator"`
	Dt          float64           `yaml:"dt"`
	Duration    float64           `yaml:"duration"`
	Seed        int64             `yaml:"seed"`
	StopOnSink  bool              `yaml:"stop_on_sink"`
	SettleTime  float64           `yaml:"settle_time"`
	Stone       StoneConfig       `yaml:"stone"`
	Throw       ThrowConfig       `yaml:"throw"`
	Environment EnvironmentConfig `yaml:"environment"`
}

// StoneConfig selects one of the built-in outline generators, or an explicit
// outline given as [x, y] pairs in body-local meters.
type StoneConfig struct {
	Shape     string       `yaml:"shape"` // ellipse, disc, rect, custom
	Width     float64      `yaml:"width"`
	Height    float64      `yaml:"height"`
	Thickness float64      `yaml:"thickness"`
	Density   float64      `yaml:"density"`
	Outline   [][2]float64 `yaml:"outline,omitempty"`
}

// ThrowConfig describes the release: launch height, speed, flight angle in
// degrees above the horizontal, body pitch in radians and spin rate.
type ThrowConfig struct {
	X      float64 `yaml:"x"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Angle  float64 `yaml:"angle"`
	Pitch  float64 `yaml:"pitch"`
	Spin   float64 `yaml:"spin"`
}

type EnvironmentConfig struct {
	Gravity         float64 `yaml:"gravity"`
	WaterLevel      float64 `yaml:"water_level"`
	Rho             float64 `yaml:"rho"`
	Lift            float64 `yaml:"lift"`
	Drag            float64 `yaml:"drag"`
	DampLinear      float64 `yaml:"damp_linear"`
	DampQuadratic   float64 `yaml:"damp_quadratic"`
	Suction         float64 `yaml:"suction"`
	SuctionDepth    float64 `yaml:"suction_depth"`
	SuctionSpeed    float64 `yaml:"suction_speed"`
	AddedMass       float64 `yaml:"added_mass"`
	PitchDamp       float64 `yaml:"pitch_damp"`
	MaxLeverArm     float64 `yaml:"max_lever_arm"`
	MaxAngularAccel float64 `yaml:"max_angular_accel"`
	ContactArea     float64 `yaml:"contact_area"`
	SinkFraction    float64 `yaml:"sink_fraction"`
	SinkDuration    float64 `yaml:"sink_duration"`
	MinBounceSpeed  float64 `yaml:"min_bounce_speed"`
}

func DefaultConfig() *Config {
	env := hydro.DefaultEnvironment()
	return &Config{
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		StopOnSink: true,
		SettleTime: 0.5,
		Stone: StoneConfig{
			Shape:     "ellipse",
			Width:     0.08,
			Height:    0.06,
			Thickness: 0.01,
			Density:   stone.DensitySlate,
		},
		Throw: ThrowConfig{
			Height: 0.3,
			Speed:  8,
			Angle:  -15,
			Pitch:  0.2,
			Spin:   0,
		},
		Environment: environmentConfig(env),
	}
}

func environmentConfig(env hydro.Environment) EnvironmentConfig {
	return EnvironmentConfig{
		Gravity:         env.Gravity,
		WaterLevel:      env.WaterLevel,
		Rho:             env.Rho,
		Lift:            env.Lift,
		Drag:            env.Drag,
		DampLinear:      env.DampLinear,
		DampQuadratic:   env.DampQuadratic,
		Suction:         env.Suction,
		SuctionDepth:    env.SuctionDepth,
		SuctionSpeed:    env.SuctionSpeed,
		AddedMass:       env.AddedMass,
		PitchDamp:       env.PitchDamp,
		MaxLeverArm:     env.MaxLeverArm,
		MaxAngularAccel: env.MaxAngularAccel,
		ContactArea:     env.Thresholds.ContactArea,
		SinkFraction:    env.Thresholds.SinkFraction,
		SinkDuration:    env.Thresholds.SinkDuration,
		MinBounceSpeed:  env.Thresholds.MinBounceSpeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// outlineVertices is the resolution of the generated curved outlines.
const outlineVertices = 32

// BuildStone resolves the shape selection into derived rigid-body properties.
// Width and Height are full extents; the generators take semi-axes.
func (c *Config) BuildStone() (*stone.Properties, error) {
	s := c.Stone
	var bp *stone.Blueprint
	switch s.Shape {
	case "ellipse", "":
		bp = stone.Ellipse("ellipse", s.Width/2, s.Height/2, outlineVertices)
	case "disc":
		bp = stone.Disc("disc", s.Width/2, outlineVertices)
	case "rect":
		bp = stone.Rect("rect", s.Width, s.Height)
	case "custom":
		outline := make(geom.Polygon, len(s.Outline))
		for i, pt := range s.Outline {
			outline[i] = geom.Vec{X: pt[0], Y: pt[1]}
		}
		bp = &stone.Blueprint{
			Name:      "custom",
			Outline:   outline,
			Thickness: 0.01,
			Density:   stone.DensitySlate,
		}
	default:
		return nil, fmt.Errorf("unknown stone shape: %s", s.Shape)
	}
	if s.Thickness > 0 {
		bp.Thickness = s.Thickness
	}
	if s.Density > 0 {
		bp.Density = s.Density
	}
	return stone.NewProperties(bp)
}

// BuildEnvironment assembles the force coefficients from the config values.
func (c *Config) BuildEnvironment() hydro.Environment {
	e := c.Environment
	return hydro.Environment{
		Gravity:         e.Gravity,
		WaterLevel:      e.WaterLevel,
		Rho:             e.Rho,
		Lift:            e.Lift,
		Drag:            e.Drag,
		DampLinear:      e.DampLinear,
		DampQuadratic:   e.DampQuadratic,
		Suction:         e.Suction,
		SuctionDepth:    e.SuctionDepth,
		SuctionSpeed:    e.SuctionSpeed,
		AddedMass:       e.AddedMass,
		PitchDamp:       e.PitchDamp,
		MaxLeverArm:     e.MaxLeverArm,
		MaxAngularAccel: e.MaxAngularAccel,
		Thresholds: phase.Thresholds{
			ContactArea:    e.ContactArea,
			SinkFraction:   e.SinkFraction,
			SinkDuration:   e.SinkDuration,
			MinBounceSpeed: e.MinBounceSpeed,
		},
	}
}

// InitState converts the throw description into the state vector
// [x, y, vx, vy, theta, omega].
func (c *Config) InitState() dynamo.State {
	rad := c.Throw.Angle * math.Pi / 180
	return dynamo.State{
		c.Throw.X,
		c.Throw.Height,
		c.Throw.Speed * math.Cos(rad),
		c.Throw.Speed * math.Sin(rad),
		c.Throw.Pitch,
		c.Throw.Spin,
	}
}
