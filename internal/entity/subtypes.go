package entity

import "time"

// The structs below are typed views over celestial_objects. Each one maps
// only the base columns plus its own, so writes through a view never touch
// another subtype's columns.

type Planet struct {
	CelestialBase
	HasRings        bool    `json:"hasRings"`
	SupportsLife    bool    `json:"supportsLife"`
	Diameter        float64 `json:"diameter"`
	Mass            float64 `json:"mass"`
	DistanceFromSun float64 `json:"distanceFromSun"`
	SurfaceTexture  string  `gorm:"size:32" json:"surfaceTexture"`
	Moons           []Moon  `gorm:"foreignKey:PlanetID" json:"moons,omitempty"`
}

func (Planet) TableName() string     { return CelestialTable }
func (Planet) CelestialType() string { return TypePlanet }

type Moon struct {
	CelestialBase
	PlanetID           uint    `json:"planetId"`
	Planet             *Planet `gorm:"foreignKey:PlanetID" json:"planet,omitempty"`
	OrbitalPeriod      float64 `json:"orbitalPeriod"`
	DistanceFromPlanet float64 `json:"distanceFromPlanet"`
}

func (Moon) TableName() string     { return CelestialTable }
func (Moon) CelestialType() string { return TypeMoon }

type Satellite struct {
	CelestialBase
	OrbitType  string    `gorm:"size:100" json:"orbitType"`
	LaunchDate time.Time `json:"launchDate"`
	Function   string    `gorm:"size:200" json:"function"`
}

func (Satellite) TableName() string     { return CelestialTable }
func (Satellite) CelestialType() string { return TypeSatellite }

type Comet struct {
	CelestialBase
	NextAppearance time.Time `json:"nextAppearance"`
	TailColor      string    `gorm:"size:16" json:"tailColor"`
}

func (Comet) TableName() string     { return CelestialTable }
func (Comet) CelestialType() string { return TypeComet }

type Constellation struct {
	CelestialBase
	MainStars         string `gorm:"type:text" json:"mainStars"`
	BestViewingMonths string `gorm:"size:200" json:"bestViewingMonths"`
}

func (Constellation) TableName() string     { return CelestialTable }
func (Constellation) CelestialType() string { return TypeConstellation }

type Spaceship struct {
	CelestialBase
	Mission    string    `gorm:"type:text" json:"mission"`
	LaunchDate time.Time `json:"launchDate"`
	ReturnDate time.Time `json:"returnDate"`
}

func (Spaceship) TableName() string     { return CelestialTable }
func (Spaceship) CelestialType() string { return TypeSpaceship }

type Alien struct {
	CelestialBase
	OriginPlanet string `gorm:"size:100" json:"originPlanet"`
	IsFriendly   bool   `json:"isFriendly"`
}

func (Alien) TableName() string     { return CelestialTable }
func (Alien) CelestialType() string { return TypeAlien }
