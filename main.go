package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sndbank/cmd"
	"sndbank/internal/analysis"
	"sndbank/internal/audition"
	"sndbank/internal/bank"
	"sndbank/internal/config"
	"sndbank/internal/log"
	"sndbank/internal/resample"
	"sndbank/pkg/build"
)

// main wires the tool together:
//
//  1. Startup: populate build information, parse command line arguments
//     (and the optional YAML config file) into a Config.
//  2. Dispatch: run the selected command (a bank sweep, a spectrum
//     report, an audition playback, or a listing).
//
// All conversion work is synchronous; the only long-running mode is
// "analyze --serve", which blocks until a termination signal.
func main() {
	build.Initialize()

	cfg, err := cmd.ParseArgs()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg == nil || cfg.Command == "" {
		// Help or version output was already printed.
		return
	}

	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	} else if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg *config.Config) error {
	switch cfg.Command {
	case config.CommandSweep:
		return runSweep(cfg)
	case config.CommandAnalyze:
		return runAnalyze(cfg)
	case config.CommandPlay:
		return runPlay(cfg)
	case config.CommandEntries:
		return runEntries(cfg)
	case config.CommandDevices:
		if err := audition.Initialize(); err != nil {
			return err
		}
		defer audition.Terminate()
		return audition.ListDevices()
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

func runSweep(cfg *config.Config) error {
	interp, err := resample.ParseInterpolator(cfg.Interpolation)
	if err != nil {
		return err
	}

	b, err := bank.Load(cfg.BankDir)
	if err != nil {
		return err
	}
	if len(b.Entries) == 0 {
		return fmt.Errorf("no usable entries in %s", cfg.BankDir)
	}

	req := resample.Request{TargetRate: cfg.TargetRate, BitDepth: cfg.BitDepth}
	log.Infof("sweeping %d entries to %d Hz (%s interpolation, %d-bit)",
		len(b.Entries), req.TargetRate, interp.Name(), req.BitDepth)

	sum := bank.Sweep(b, req, interp)

	if err := b.Save(cfg.OutputDir); err != nil {
		return err
	}

	log.Infof("sweep done: %d processed, %d skipped, %d failed",
		sum.Processed, sum.Skipped, sum.Failed)
	return nil
}

func runAnalyze(cfg *config.Config) error {
	entry, err := loadEntry(cfg)
	if err != nil {
		return err
	}

	var transport analysis.Transport
	var ws *analysis.WebSocketTransport
	if cfg.SpectrumAddr != "" {
		ws = analysis.NewWebSocketTransport(cfg.SpectrumAddr, 100*time.Millisecond)
		defer ws.Close()
		transport = ws
	}

	s := analysis.NewSpectrum(config.DefaultSpectrumWindow, transport)
	wave := entry.Wave
	mags := s.Analyze(wave.Samples)

	peak := s.PeakFrequency(mags, wave.SampleRate)
	bw := s.Bandwidth(mags, wave.SampleRate, 0.01)

	fmt.Printf("%s: %d samples @ %d Hz (%.2fs)\n",
		entry.Name, wave.Len(), wave.SampleRate, wave.Duration())
	if wave.Loop != nil {
		fmt.Printf("  loop:      [%d,%d]\n", wave.Loop.Start, wave.Loop.End)
	}
	fmt.Printf("  peak:      %.1f Hz\n", peak)
	fmt.Printf("  bandwidth: %.1f Hz of %.1f Hz Nyquist (-40 dB floor)\n",
		bw, float64(wave.SampleRate)/2)

	if ws == nil {
		return nil
	}

	// Keep serving so WebSocket clients that connect late still get the
	// spectrum; each tick re-broadcasts it.
	log.Infof("serving spectrum on ws://%s/spectrum, Ctrl-C to stop", cfg.SpectrumAddr)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-ticker.C:
			s.Analyze(wave.Samples)
		}
	}
}

func runPlay(cfg *config.Config) error {
	entry, err := loadEntry(cfg)
	if err != nil {
		return err
	}

	// Audition at the sweep target so what is heard matches what a sweep
	// would write back into the bank.
	wave := entry.Wave
	if cfg.BitDepth < 16 || wave.SampleRate < cfg.TargetRate {
		interp, err := resample.ParseInterpolator(cfg.Interpolation)
		if err != nil {
			return err
		}
		req := resample.Request{TargetRate: cfg.TargetRate, BitDepth: cfg.BitDepth}
		wave, err = resample.Resample(wave, req, interp)
		if err != nil {
			return err
		}
	}

	if err := audition.Initialize(); err != nil {
		return err
	}
	defer audition.Terminate()

	log.Infof("playing %s (%d Hz, %.2fs, %d loop passes)",
		entry.Name, wave.SampleRate, wave.Duration(), cfg.LoopPasses)
	return audition.Play(wave, cfg.LoopPasses)
}

func runEntries(cfg *config.Config) error {
	b, err := bank.Load(cfg.BankDir)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s: %d entries\n\n", cfg.BankDir, len(b.Entries))
	for _, e := range b.Entries {
		loop := "-"
		if e.Wave.Loop != nil {
			loop = fmt.Sprintf("[%d,%d]", e.Wave.Loop.Start, e.Wave.Loop.End)
		}
		fmt.Printf("%-24s %6d Hz  %8d samples  %6.2fs  loop %s\n",
			e.Name, e.Wave.SampleRate, e.Wave.Len(), e.Wave.Duration(), loop)
	}
	return nil
}

func loadEntry(cfg *config.Config) (*bank.Entry, error) {
	b, err := bank.Load(cfg.BankDir)
	if err != nil {
		return nil, err
	}
	e := b.Lookup(cfg.Entry)
	if e == nil {
		return nil, fmt.Errorf("entry %q not found in %s", cfg.Entry, cfg.BankDir)
	}
	return e, nil
}
