package catalog

import "github.com/orrerylab/orrery/internal/orbit"

// DefaultSolarSystem is the built-in catalog: the Sun, the eight
// planets and the Moon. Radii and semi-major axes are artistic scene
// units (Earth radius = 1, Earth orbit = 8); eccentricities,
// inclinations, node and periapsis angles, tilts, rotation periods and
// flattenings are the physical values.
func DefaultSolarSystem() *Catalog {
	c := New()

	// The designated primary: radius, tilt and appearance only, no
	// orbital elements and no carriers.
	c.Add(Body{
		Name:          "Sun",
		Radius:        3.0,
		TiltDeg:       7.25,
		RotationHours: 609.12,
		Appearance:    Appearance{TempK: 5778, Texture: "sun.jpg", Emission: 8.0},
	})

	planets := []Body{
		{
			Name: "Mercury", Radius: 0.30, TiltDeg: 0.03, Flattening: 0.00006,
			RotationHours: 1407.5, PeriodYears: 0.2408467,
			Elements:   &orbit.Elements{SemiMajor: 4.0, Eccentricity: 0.2056, Inclination: 7.005, Node: 48.331, Periapsis: 29.124},
			Appearance: Appearance{Color: [3]float64{0.55, 0.52, 0.50}, Texture: "mercury.jpg"},
		},
		{
			Name: "Venus", Radius: 0.95, TiltDeg: 177.4, Flattening: 0.0001,
			RotationHours: -5832.5, PeriodYears: 0.61519726,
			Elements:   &orbit.Elements{SemiMajor: 6.0, Eccentricity: 0.0068, Inclination: 3.395, Node: 76.680, Periapsis: 54.884},
			Appearance: Appearance{Color: [3]float64{0.90, 0.78, 0.55}, Texture: "venus.jpg"},
		},
		{
			Name: "Earth", Radius: 1.00, TiltDeg: 23.44, Flattening: 1.0 / 298.257,
			RotationHours: 23.934, PeriodYears: 1.0,
			Elements:   &orbit.Elements{SemiMajor: 8.0, Eccentricity: 0.0167, Periapsis: 102.9374},
			Appearance: Appearance{Color: [3]float64{0.25, 0.45, 0.85}, Texture: "earth.jpg"},
		},
		{
			Name: "Mars", Radius: 0.53, TiltDeg: 25.19, Flattening: 0.00589,
			RotationHours: 24.623, PeriodYears: 1.8808158,
			Elements:   &orbit.Elements{SemiMajor: 10.0, Eccentricity: 0.0934, Inclination: 1.850, Node: 49.558, Periapsis: 286.502},
			Appearance: Appearance{Color: [3]float64{0.80, 0.40, 0.25}, Texture: "mars.jpg"},
		},
		{
			Name: "Jupiter", Radius: 2.80, TiltDeg: 3.13, Flattening: 0.06487,
			RotationHours: 9.925, PeriodYears: 11.862615,
			Elements:   &orbit.Elements{SemiMajor: 14.0, Eccentricity: 0.0489, Inclination: 1.303, Node: 100.464, Periapsis: 273.867},
			Appearance: Appearance{Color: [3]float64{0.80, 0.70, 0.55}, Texture: "jupiter.jpg"},
		},
		{
			Name: "Saturn", Radius: 2.40, TiltDeg: 26.73, Flattening: 0.09796,
			RotationHours: 10.656, PeriodYears: 29.447498,
			Elements:   &orbit.Elements{SemiMajor: 18.0, Eccentricity: 0.0565, Inclination: 2.485, Node: 113.665, Periapsis: 339.392},
			Ring:       &Ring{InnerRatio: 1.2, OuterRatio: 2.2},
			Appearance: Appearance{Color: [3]float64{0.87, 0.80, 0.62}, Texture: "saturn.jpg"},
		},
		{
			Name: "Uranus", Radius: 1.80, TiltDeg: 97.77, Flattening: 0.0229,
			RotationHours: -17.24, PeriodYears: 84.016846,
			Elements:   &orbit.Elements{SemiMajor: 22.0, Eccentricity: 0.0457, Inclination: 0.773, Node: 74.006, Periapsis: 96.998},
			Appearance: Appearance{Color: [3]float64{0.60, 0.82, 0.85}, Texture: "uranus.jpg"},
		},
		{
			Name: "Neptune", Radius: 1.70, TiltDeg: 28.32, Flattening: 0.0171,
			RotationHours: 16.11, PeriodYears: 164.79132,
			Elements:   &orbit.Elements{SemiMajor: 26.0, Eccentricity: 0.0113, Inclination: 1.770, Node: 131.784, Periapsis: 276.336},
			Appearance: Appearance{Color: [3]float64{0.25, 0.40, 0.90}, Texture: "neptune.jpg"},
		},
	}
	for _, p := range planets {
		c.Add(p)
	}

	// Tidally locked: rotation period equals the revolution period.
	c.Add(Body{
		Name: "Moon", Radius: 0.27, TiltDeg: 6.68,
		RotationHours: 655.7, PeriodYears: 0.0748,
		Elements:   &orbit.Elements{SemiMajor: 1.8, Eccentricity: 0.0549, Inclination: 5.145, Node: 125.08, Periapsis: 318.15},
		Primary:    "Earth",
		Appearance: Appearance{Color: [3]float64{0.70, 0.70, 0.70}},
	})

	return c
}
