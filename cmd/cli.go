package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sndbank/internal/config"
	"sndbank/pkg/build"
)

// ParseArgs builds the runtime configuration from command line flags, an
// optional YAML config file, and the chosen subcommand. The returned
// Config carries the command for main to dispatch; an empty Command
// means help or version output was already printed.
func ParseArgs() (*config.Config, error) {
	buildInfo := build.GetBuildFlags()
	options := config.NewConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         "Convert the samples of a sound bank to a uniform rate",
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	persistent := rootCmd.PersistentFlags()

	// Bank and conversion configuration
	persistent.StringVarP(&options.BankDir, "bank", "b", "",
		"Directory holding the bank's WAV entries")
	persistent.StringVarP(&options.OutputDir, "out", "o", config.DefaultOutputDir,
		"Directory for converted entries (default rewrites the bank in place)")
	persistent.IntVarP(&options.TargetRate, "rate", "r", config.DefaultTargetRate,
		"Target sample rate, measured in Hertz (Hz)")
	persistent.IntVar(&options.BitDepth, "bits", config.DefaultBitDepth,
		"Effective output bit depth (1-16, 16 leaves samples untouched)")
	persistent.StringVarP(&options.Interpolation, "interp", "i", config.DefaultInterpolation,
		"Interpolation strategy: hold (sample repetition) or linear")

	// Debug configuration
	persistent.BoolVarP(&options.Verbose, "verbose", "v", false,
		"Show verbose output")
	persistent.StringVar(&configFile, "config", "",
		"Path to a YAML config file (flags override file values)")

	// File values apply only where the user did not pass a flag.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configFile == "" {
			return nil
		}
		fileCfg, err := config.LoadFile(configFile)
		if err != nil {
			return err
		}
		if !persistent.Changed("bank") && fileCfg.BankDir != "" {
			options.BankDir = fileCfg.BankDir
		}
		if !persistent.Changed("out") && fileCfg.OutputDir != "" {
			options.OutputDir = fileCfg.OutputDir
		}
		if !persistent.Changed("rate") {
			options.TargetRate = fileCfg.TargetRate
		}
		if !persistent.Changed("bits") {
			options.BitDepth = fileCfg.BitDepth
		}
		if !persistent.Changed("interp") {
			options.Interpolation = fileCfg.Interpolation
		}
		if fileCfg.SpectrumAddr != "" && options.SpectrumAddr == "" {
			options.SpectrumAddr = fileCfg.SpectrumAddr
		}
		if fileCfg.LogLevel != "" {
			options.LogLevel = fileCfg.LogLevel
		}
		return nil
	}

	requireBank := func() error {
		if options.BankDir == "" {
			return fmt.Errorf("no bank directory; pass --bank or set bank_dir in the config file")
		}
		return nil
	}
	requireEntry := func() error {
		if err := requireBank(); err != nil {
			return err
		}
		if options.Entry == "" {
			return fmt.Errorf("no bank entry; pass --entry")
		}
		return nil
	}

	// Sweep command: the actual conversion run
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Resample every bank entry below the target rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireBank(); err != nil {
				return err
			}
			if err := options.Validate(); err != nil {
				return err
			}
			options.Command = config.CommandSweep
			return nil
		},
	}
	rootCmd.AddCommand(sweepCmd)

	// Analyze command: spectrum report for one entry
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report the magnitude spectrum of one bank entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireEntry(); err != nil {
				return err
			}
			options.Command = config.CommandAnalyze
			return nil
		},
	}
	analyzeCmd.Flags().StringVarP(&options.Entry, "entry", "e", "",
		"Bank entry (file name) to analyze")
	analyzeCmd.Flags().StringVar(&options.SpectrumAddr, "serve", "",
		"Serve spectra to WebSocket clients on this address (e.g. :8080)")
	rootCmd.AddCommand(analyzeCmd)

	// Play command: audition one entry at the conversion target
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Audition one bank entry through the default output device",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireEntry(); err != nil {
				return err
			}
			if err := options.Validate(); err != nil {
				return err
			}
			options.Command = config.CommandPlay
			return nil
		},
	}
	playCmd.Flags().StringVarP(&options.Entry, "entry", "e", "",
		"Bank entry (file name) to play")
	playCmd.Flags().IntVar(&options.LoopPasses, "loops", config.DefaultLoopPasses,
		"Extra passes over the loop region during playback")
	rootCmd.AddCommand(playCmd)

	// Entries command: list the bank's contents
	entriesCmd := &cobra.Command{
		Use:   "entries",
		Short: "List the bank's sample entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireBank(); err != nil {
				return err
			}
			options.Command = config.CommandEntries
			return nil
		},
	}
	rootCmd.AddCommand(entriesCmd)

	// Devices command: list audio output devices for audition
	devicesCmd := &cobra.Command{
		Use:   "devices",
		Short: "List available audio devices",
		Run: func(cmd *cobra.Command, args []string) {
			options.Command = config.CommandDevices
		},
	}
	rootCmd.AddCommand(devicesCmd)

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	return options, nil
}
