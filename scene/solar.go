package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	SunPulse     = 0.3
	SunFrequency = 1.0

	OrbitPeriod = 20.0 // seconds per revolution around the sun
	SpinPeriod  = 2.0  // seconds per revolution around own axis

	PlanetScale = 0.5

	// moon rotation axis grows along Y by this much per second
	MoonAxisRate = 1.0 / 20.0

	OuterOrbitRadius = 3.0
)

const (
	Ground = "ground"
	Sun    = "sun"
	Planet = "planet"
	Moon   = "moon"
	Outer  = "outer"
)

var (
	yAxis        = mgl32.Vec3{0, 1, 0}
	planetOffset = mgl32.Vec3{2, 0.5, 0}
)

// SolarSystem returns the demo scene in draw order.
func SolarSystem() []Object {
	return []Object{
		{Name: Ground, Mesh: MeshGround},
		{Name: Sun, Mesh: MeshCube, Recipe: Recipe{
			Scale{Factor: mgl32.Vec3{1, 1, 1}, Pulse: SunPulse, Frequency: SunFrequency},
		}},
		{Name: Planet, Mesh: MeshCube, Recipe: Recipe{
			Rotate{Period: OrbitPeriod, Axis: yAxis},
			Translate{Offset: planetOffset},
			Rotate{Period: SpinPeriod, Axis: yAxis},
			Uniform(PlanetScale),
		}},
		{Name: Moon, Mesh: MeshCube, Recipe: Recipe{
			Rotate{Period: SpinPeriod, AxisRate: mgl32.Vec3{0, MoonAxisRate, 0}},
			Translate{Offset: planetOffset},
			Uniform(PlanetScale),
			Uniform(PlanetScale),
		}},
		{Name: Outer, Mesh: MeshCube, Recipe: Recipe{
			Rotate{Period: OrbitPeriod, Axis: yAxis},
			Translate{Offset: mgl32.Vec3{OuterOrbitRadius, 0, 0}},
			Uniform(PlanetScale),
		}},
	}
}

// PlanetOrbitRadius is the distance of the planet from the sun's Y axis.
func PlanetOrbitRadius() float32 {
	return mgl32.Vec2{planetOffset[0], planetOffset[2]}.Len()
}
