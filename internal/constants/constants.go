package constants

// Application constants
const (
	Name        = "chargeevolve-go"
	Version     = "1.0.0"
	Description = "genetic search for minimum-energy charge configurations in a bounded conductor"

	// Default evolution parameters
	DefaultCharges        = 15
	DefaultPopulationSize = 100
	DefaultGenerations    = 300
	DefaultEliteFraction  = 0.1
	DefaultMutationRate   = 0.2
	DefaultMutationScale  = 0.05

	// Default region dimensions
	DefaultDiskRadius   = 1.0
	DefaultSemiAxisX    = 1.0
	DefaultSemiAxisY    = 0.5
	DefaultEllipseScale = 1.0
	DefaultRectWidth    = 2.0
	DefaultRectHeight   = 1.0

	// MinPairDistance is the distance below which a charge pair is treated
	// as coincident. MaxPairEnergy is the contribution substituted for such
	// a pair. Kept as two separate constants; folding them into one changes
	// the numeric output.
	MinPairDistance = 1e-9
	MaxPairEnergy   = 1.0 / MinPairDistance

	// BoundarySegments is the polyline resolution used when drawing a
	// curved region outline.
	BoundarySegments = 256

	// Directory and file names
	OutputDir         = "chargeevolve_output"
	LatestReport      = "latest.json"
	DefaultPlot       = "best_configuration.png"
	DefaultConfigFile = "chargeevolve.yaml"

	// Exit codes
	ExitSuccess   = 0
	ExitError     = 1
	ExitInterrupt = 2
)

// Region shape names
const (
	ShapeDisk    = "disk"
	ShapeEllipse = "ellipse"
	ShapeRect    = "rect"
)
