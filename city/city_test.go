package city

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/nightcity/math"
)

func newTestCity(seed int64) *City {
	return Generate(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func TestGenerate_Counts(t *testing.T) {
	c := newTestCity(1)

	if r := len(c.Buildings); r != 50 {
		t.Errorf("generated %v buildings instead of 50", r)
	}
	if r := len(c.Vehicles); r != 8 {
		t.Errorf("generated %v vehicles instead of 8", r)
	}
	if r := len(c.Billboards); r != 15 {
		t.Errorf("generated %v billboards instead of 15", r)
	}
	if r := len(c.Drawables()); r != 73 {
		t.Errorf("city has %v drawables instead of 73", r)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, seed := range []int64{1, 42, -7, 1 << 40} {
		a, b := newTestCity(seed), newTestCity(seed)

		for i := range a.Buildings {
			if a.Buildings[i] != b.Buildings[i] {
				t.Errorf("seed %v: building %v differs: %v != %v", seed, i, a.Buildings[i], b.Buildings[i])
			}
		}
		for i := range a.Vehicles {
			if a.Vehicles[i] != b.Vehicles[i] {
				t.Errorf("seed %v: vehicle %v differs: %v != %v", seed, i, a.Vehicles[i], b.Vehicles[i])
			}
		}
		for i := range a.Billboards {
			if a.Billboards[i] != b.Billboards[i] {
				t.Errorf("seed %v: billboard %v differs: %v != %v", seed, i, a.Billboards[i], b.Billboards[i])
			}
		}
	}

	a, b := newTestCity(1), newTestCity(2)
	if a.Buildings[0] == b.Buildings[0] {
		t.Errorf("different seeds generated the same first building %v", a.Buildings[0])
	}
}

func TestGenerate_Buildings(t *testing.T) {
	c := newTestCity(3)

	for i, b := range c.Buildings {
		height := b.Scale[1]
		width := b.Scale[0]

		if b.Position[0] < -Extent || b.Position[0] > Extent || b.Position[2] < -Extent || b.Position[2] > Extent {
			t.Errorf("building %v at %v outside of the city", i, b.Position)
		}
		if height < 5 || height > 40 {
			t.Errorf("building %v has height %v outside [5, 40]", i, height)
		}
		if width < 2 || width > 8 || b.Scale[2] != width {
			t.Errorf("building %v has scale %v, want square footprint in [2, 8]", i, b.Scale)
		}
		if b.Position[1] != height/2 {
			t.Errorf("building %v does not stand on the ground: y %v, height %v", i, b.Position[1], height)
		}
		if b.Color != Blue && b.Color != Magenta && b.Color != Cyan {
			t.Errorf("building %v has color %v outside the palette", i, b.Color)
		}
		if b.EmissionColor != b.Color.Mul(0.5) {
			t.Errorf("building %v emission color %v != half of %v", i, b.EmissionColor, b.Color)
		}

		expected := float32(0.1)
		if height > 20 {
			expected = 0.3
		}
		if b.EmissionStrength != expected {
			t.Errorf("building %v of height %v has emission %v instead of %v", i, height, b.EmissionStrength, expected)
		}
	}
}

func TestEmissionStrength(t *testing.T) {
	tests := []struct {
		Height   float32
		Expected float32
	}{
		{5, 0.1},
		{19.999, 0.1},
		{20, 0.1},
		{20.001, 0.3},
		{40, 0.3},
	}

	for _, c := range tests {
		if r := emissionStrength(c.Height); r != c.Expected {
			t.Errorf("emissionStrength(%v) != %v (got %v)", c.Height, c.Expected, r)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		Choice   float32
		Expected mgl32.Vec3
	}{
		{0.1, Blue},
		{0.2999, Blue},
		{0.3, Magenta},
		{0.5999, Magenta},
		{0.6, Cyan},
		{0.9, Cyan},
	}

	for _, c := range tests {
		if r := paletteColor(c.Choice); r != c.Expected {
			t.Errorf("paletteColor(%v) != %v (got %v)", c.Choice, c.Expected, r)
		}
	}
}

func TestGenerate_Vehicles(t *testing.T) {
	c := newTestCity(4)

	for i, v := range c.Vehicles {
		fi := float32(i)

		if v.Height != 15+3*fi {
			t.Errorf("vehicle %v has height %v instead of %v", i, v.Height, 15+3*fi)
		}
		if v.Radius != 20+5*fi {
			t.Errorf("vehicle %v has radius %v instead of %v", i, v.Radius, 20+5*fi)
		}
		if e := 0.5 + 0.3*float32(i%3); !math.NearlyEquals(v.Speed, e, 0.00001) {
			t.Errorf("vehicle %v has speed %v instead of %v", i, v.Speed, e)
		}
		if e := fi * math.TwoPi / 8; !math.NearlyEquals(v.Angle, e, 0.00001) {
			t.Errorf("vehicle %v starts at angle %v instead of %v", i, v.Angle, e)
		}
		if v.Color != Golden {
			t.Errorf("vehicle %v has color %v instead of %v", i, v.Color, Golden)
		}
	}
}

func TestGenerate_Billboards(t *testing.T) {
	c := newTestCity(5)

	for i, b := range c.Billboards {
		if e := 20 + 2*float32(i); b.Position[1] != e {
			t.Errorf("billboard %v hovers at %v instead of %v", i, b.Position[1], e)
		}
		if e := 30 + 20*float32(i%3); b.RotationSpeed != e {
			t.Errorf("billboard %v spins with %v instead of %v", i, b.RotationSpeed, e)
		}
		if b.Rotation != 0 {
			t.Errorf("billboard %v starts rotated by %v", i, b.Rotation)
		}
		if b.Color != Holographic {
			t.Errorf("billboard %v has color %v instead of %v", i, b.Color, Holographic)
		}
	}
}

func TestCity_Drawables(t *testing.T) {
	c := newTestCity(6)
	d := c.Drawables()

	for i := range c.Buildings {
		if d[i] != Drawable(&c.Buildings[i]) {
			t.Errorf("drawable %v is not building %v", i, i)
		}
	}

	off := len(c.Buildings)
	for i := range c.Vehicles {
		if d[off+i] != Drawable(&c.Vehicles[i]) {
			t.Errorf("drawable %v is not vehicle %v", off+i, i)
		}
	}

	off += len(c.Vehicles)
	for i := range c.Billboards {
		if d[off+i] != Drawable(&c.Billboards[i]) {
			t.Errorf("drawable %v is not billboard %v", off+i, i)
		}
	}

	// drawables follow the animation
	before := d[len(c.Buildings)].Model()
	c.Update(time.Second)
	if after := d[len(c.Buildings)].Model(); after.ApproxEqual(before) {
		t.Errorf("vehicle drawable did not move after update")
	}
}

func TestCity_DrawablesAfterAppend(t *testing.T) {
	c := newTestCity(6)
	c.Drawables()

	c.Buildings = append(c.Buildings, Building{Position: mgl32.Vec3{1, 2, 3}})
	c.Vehicles = append(c.Vehicles, Vehicle{Radius: 10, Speed: 1})

	d := c.Drawables()
	if r := len(d); r != 51+9+15 {
		t.Fatalf("len(Drawables()) != %v (got %v)", 51+9+15, r)
	}

	if d[50] != Drawable(&c.Buildings[50]) {
		t.Errorf("drawable 50 is not the appended building")
	}
	for i := range c.Vehicles {
		if d[51+i] != Drawable(&c.Vehicles[i]) {
			t.Errorf("drawable %v does not point into the current vehicle slice", 51+i)
		}
	}
}

func TestCity_EndToEnd(t *testing.T) {
	c := newTestCity(7)
	c.Update(time.Second)

	v := c.Vehicles[0]
	if !math.NearlyEquals(v.Angle, 0.5, 0.00001) {
		t.Errorf("vehicle 0 angle after 1s != 0.5 (got %v)", v.Angle)
	}

	expected := mgl32.Vec3{17.5517, 15, 9.5885}
	if p := v.Position(); !p.ApproxEqualThreshold(expected, 0.001) {
		t.Errorf("vehicle 0 position after 1s != %v (got %v)", expected, p)
	}
}

func BenchmarkGenerate(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	cfg := DefaultConfig()

	for i := 0; i < b.N; i++ {
		Generate(cfg, rng)
	}
}

func BenchmarkCity_Update(b *testing.B) {
	c := newTestCity(1)

	for i := 0; i < b.N; i++ {
		c.Update(16 * time.Millisecond)
	}
}
