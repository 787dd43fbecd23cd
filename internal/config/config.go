package config

// Core configuration constants that define the boundaries and defaults
// for bank conversion.
const (
	// Default values for a conversion run
	DefaultTargetRate    = 44100    // Uniform playback rate for the bank
	DefaultBitDepth      = 16       // Full depth, no requantization
	DefaultInterpolation = "linear" // Smoother default; "hold" keeps exact values
	DefaultOutputDir     = ""       // Empty means rewrite the bank in place
	DefaultLoopPasses    = 2        // Extra loop passes during audition
	DefaultLogLevel      = "info"

	// Processing limits
	MinSampleRate = 8000   // Minimum usable sample rate (Hz)
	MaxSampleRate = 192000 // Maximum supported sample rate (Hz)
	MinBitDepth   = 1
	MaxBitDepth   = 16

	// Spectrum analysis
	DefaultSpectrumWindow = 4096 // FFT window in samples, rounded to a power of 2
)

// Commands dispatched by main after argument parsing.
const (
	CommandSweep   = "sweep"
	CommandAnalyze = "analyze"
	CommandPlay    = "play"
	CommandEntries = "entries"
	CommandDevices = "devices"
)

// Config holds all runtime options for a bank conversion run. It is
// constructed from command line flags and/or a YAML config file.
type Config struct {
	// Bank locations
	BankDir   string `yaml:"bank_dir"`   // Directory holding the bank's WAV entries
	OutputDir string `yaml:"output_dir"` // Where converted entries are written ("" = in place)

	// Conversion targets
	TargetRate    int    `yaml:"target_rate"`   // Target sample rate in Hz
	BitDepth      int    `yaml:"bit_depth"`     // Effective output bit depth, 16 = unchanged
	Interpolation string `yaml:"interpolation"` // "hold" or "linear"

	// Analysis and audition
	Entry        string `yaml:"entry,omitempty"`         // Bank entry (file name) for analyze/play
	LoopPasses   int    `yaml:"loop_passes"`             // Extra loop passes during audition
	SpectrumAddr string `yaml:"spectrum_addr,omitempty"` // WebSocket listen address ("" = off)

	// Logging
	LogLevel string `yaml:"log_level"`
	Verbose  bool   `yaml:"-"`

	// One-off command selected by the CLI, dispatched by main.
	Command string `yaml:"-"`
}

// NewConfig creates a Config populated with default values, the base
// configuration before flags or a config file are applied.
func NewConfig() *Config {
	return &Config{
		OutputDir:     DefaultOutputDir,
		TargetRate:    DefaultTargetRate,
		BitDepth:      DefaultBitDepth,
		Interpolation: DefaultInterpolation,
		LoopPasses:    DefaultLoopPasses,
		LogLevel:      DefaultLogLevel,
	}
}
