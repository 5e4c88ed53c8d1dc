package palette

// Earthlike enumerates the terrain categories of a rocky, watery planet.
type Earthlike int

const (
	DeepOcean Earthlike = iota
	ShallowOcean
	Beach
	Grass
	Forest
	Mountain
	Snow
)

var earthlikeNames = [...]string{
	DeepOcean:    "deep-ocean",
	ShallowOcean: "shallow-ocean",
	Beach:        "beach",
	Grass:        "grass",
	Forest:       "forest",
	Mountain:     "mountain",
	Snow:         "snow",
}

func (k Earthlike) String() string {
	if k < 0 || int(k) >= len(earthlikeNames) {
		return "unknown"
	}
	return earthlikeNames[k]
}

// Sunlike enumerates the surface categories of a star.
type Sunlike int

const (
	DeepBase Sunlike = iota
	BrightMiddle
	HotTop
)

var sunlikeNames = [...]string{
	DeepBase:     "deep-base",
	BrightMiddle: "bright-middle",
	HotTop:       "hot-top",
}

func (k Sunlike) String() string {
	if k < 0 || int(k) >= len(sunlikeNames) {
		return "unknown"
	}
	return sunlikeNames[k]
}

// EarthlikePalette returns the built-in planet palette.
func EarthlikePalette() Palette[Earthlike] {
	return Palette[Earthlike]{
		MaxChaos: DefaultMaxChaos,
		Anchors: []Anchor[Earthlike]{
			{Kind: DeepOcean, Color: FromRGB255(19, 30, 180), Elevation: -1000},
			{Kind: ShallowOcean, Color: FromRGB255(40, 80, 220), Elevation: -100},
			{Kind: Beach, Color: FromRGB255(222, 208, 148), Elevation: 0},
			{Kind: Grass, Color: FromRGB255(72, 160, 64), Elevation: 80},
			{Kind: Forest, Color: FromRGB255(30, 110, 50), Elevation: 400},
			{Kind: Mountain, Color: FromRGB255(120, 110, 100), Elevation: 1000},
			{Kind: Snow, Color: FromRGB255(238, 246, 245), Elevation: 1700},
		},
	}
}

// SunlikePalette returns the built-in star palette.
func SunlikePalette() Palette[Sunlike] {
	return Palette[Sunlike]{
		MaxChaos: DefaultMaxChaos,
		Anchors: []Anchor[Sunlike]{
			{Kind: DeepBase, Color: FromRGB255(200, 60, 10), Elevation: -500},
			{Kind: BrightMiddle, Color: FromRGB255(250, 170, 40), Elevation: 0},
			{Kind: HotTop, Color: FromRGB255(255, 240, 200), Elevation: 500},
		},
	}
}
