package city

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/nightcity/math"
)

const (
	DefaultBuildings  = 50
	DefaultVehicles   = 8
	DefaultBillboards = 15

	// half extent of the square the city is scattered on
	Extent = 50
)

var (
	Blue        = mgl32.Vec3{0.2, 0.2, 0.8}
	Magenta     = mgl32.Vec3{0.8, 0.2, 0.8}
	Cyan        = mgl32.Vec3{0.2, 0.8, 0.8}
	Golden      = mgl32.Vec3{1.0, 0.8, 0.2}
	Holographic = mgl32.Vec3{0.0, 1.0, 0.5}
)

type Config struct {
	Buildings  int `mapstructure:"buildings"`
	Vehicles   int `mapstructure:"vehicles"`
	Billboards int `mapstructure:"billboards"`
}

func DefaultConfig() Config {
	return Config{
		Buildings:  DefaultBuildings,
		Vehicles:   DefaultVehicles,
		Billboards: DefaultBillboards,
	}
}

type City struct {
	Buildings  []Building
	Vehicles   []Vehicle
	Billboards []Billboard

	drawables []Drawable
}

// NewRand returns the random source used for generation.
// A zero seed is replaced by the current time, the used seed is returned.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Generate builds a city from the random source. The result only depends
// on the config and the state of rng.
func Generate(cfg Config, rng *rand.Rand) *City {
	c := &City{
		Buildings:  make([]Building, 0, cfg.Buildings),
		Vehicles:   make([]Vehicle, 0, cfg.Vehicles),
		Billboards: make([]Billboard, 0, cfg.Billboards),
	}

	for i := 0; i < cfg.Buildings; i++ {
		c.Buildings = append(c.Buildings, newBuilding(rng))
	}

	for i := 0; i < cfg.Vehicles; i++ {
		c.Vehicles = append(c.Vehicles, newVehicle(i, cfg.Vehicles))
	}

	for i := 0; i < cfg.Billboards; i++ {
		c.Billboards = append(c.Billboards, newBillboard(i, rng))
	}

	return c
}

func newBuilding(rng *rand.Rand) Building {
	x := uniform(rng, -Extent, Extent)
	z := uniform(rng, -Extent, Extent)
	height := uniform(rng, 5, 40)
	width := uniform(rng, 2, 8)

	color := paletteColor(uniform(rng, 0.1, 0.9))

	return Building{
		Position:         mgl32.Vec3{x, height / 2, z},
		Scale:            mgl32.Vec3{width, height, width},
		Color:            color,
		EmissionStrength: emissionStrength(height),
		EmissionColor:    color.Mul(0.5),
	}
}

func paletteColor(choice float32) mgl32.Vec3 {
	switch {
	case choice < 0.3:
		return Blue
	case choice < 0.6:
		return Magenta
	default:
		return Cyan
	}
}

// tall buildings glow brighter
func emissionStrength(height float32) float32 {
	if height > 20 {
		return 0.3
	}
	return 0.1
}

// vehicles are placed by index only, start angles evenly distributed
func newVehicle(i, n int) Vehicle {
	return Vehicle{
		Direction: mgl32.Vec3{0, 0, 1},
		Speed:     0.5 + float32(i%3)*0.3,
		Color:     Golden,
		Height:    15 + float32(i)*3,
		Radius:    20 + float32(i)*5,
		Angle:     math.WrapRadians(float32(i) * (math.TwoPi / float32(n))),
	}
}

func newBillboard(i int, rng *rand.Rand) Billboard {
	x := uniform(rng, -Extent, Extent)
	z := uniform(rng, -Extent, Extent)

	return Billboard{
		Position:      mgl32.Vec3{x, 20 + float32(i)*2, z},
		RotationSpeed: 30 + float32(i%3)*20,
		Color:         Holographic,
	}
}

func uniform(rng *rand.Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}

// Update advances every animated entity by delta
func (c *City) Update(delta time.Duration) {
	for i := range c.Vehicles {
		c.Vehicles[i].Update(delta)
	}

	for i := range c.Billboards {
		c.Billboards[i].Update(delta)
	}
}

// Drawables lists buildings, vehicles and billboards in that order.
// The entries point at the live entities and are collected on every call,
// so entities appended to the exported slices are included. The returned
// slice is reused by the next call.
func (c *City) Drawables() []Drawable {
	c.drawables = c.drawables[:0]

	for i := range c.Buildings {
		c.drawables = append(c.drawables, &c.Buildings[i])
	}
	for i := range c.Vehicles {
		c.drawables = append(c.drawables, &c.Vehicles[i])
	}
	for i := range c.Billboards {
		c.drawables = append(c.drawables, &c.Billboards[i])
	}

	return c.drawables
}
