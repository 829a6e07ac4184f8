package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cricklet/speedscope/config"
	"github.com/cricklet/speedscope/preview"
	"github.com/cricklet/speedscope/report"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Write the mapping report without opening a window")
	outputDir := flag.String("output-dir", "", "Output directory for CSV reports (overrides config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *outputDir != "" {
		cfg.Report.OutputDir = *outputDir
	}

	if *headless {
		if err := writeReport(cfg); err != nil {
			slog.Error("report failed", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.InitWindow(int32(cfg.Preview.Width), int32(cfg.Preview.Height), "Rect Mapping Preview")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Preview.TargetFPS))

	p := preview.New(cfg)
	for !rl.WindowShouldClose() {
		p.Update()
		p.Draw()
	}

	s := p.Scene()
	slog.Info("final scene", "source", s.Source.String(), "target", s.Target.String(), "transform", s.Transform().String())
}

func writeReport(cfg *config.Config) (err error) {
	om, err := report.NewOutputManager(cfg.Report.OutputDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := om.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	for _, m := range cfg.Derived.Mappings {
		rec := report.NewTransformRecord(m, cfg.Report.Tolerance)
		slog.Info("mapping",
			"name", m.Name,
			"from", m.From.String(),
			"to", m.To.String(),
			"scale_x", rec.ScaleX,
			"scale_y", rec.ScaleY,
			"translate_x", rec.TranslateX,
			"translate_y", rec.TranslateY,
			"corner_deviation", rec.CornerDeviation,
			"maps_corners", rec.MapsCorners,
		)
		if !rec.MapsCorners {
			slog.Warn("transform does not map from onto to", "name", m.Name, "deviation", rec.CornerDeviation)
		}

		if err := om.WriteTransform(rec); err != nil {
			return err
		}
		if err := om.WriteProbes(report.NewProbeRecords(m, cfg.Derived.Probes)); err != nil {
			return err
		}
	}

	slog.Info("report complete", "mappings", len(cfg.Derived.Mappings), "output_dir", om.Dir())
	return nil
}
