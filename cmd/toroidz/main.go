package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"toroidz/pkg/analysis"
	"toroidz/pkg/config"
	"toroidz/pkg/material"
	"toroidz/pkg/render"
	"toroidz/pkg/util"
)

func main() {
	configPath := flag.String("config", "", "config file (YAML); defaults apply when empty")
	dataPath := flag.String("data", "", "material data file, overrides config")
	pngPath := flag.String("png", "", "figure output path, overrides config")
	quiet := flag.Bool("quiet", false, "suppress the per-frequency table")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	if *dataPath != "" {
		cfg.Material.File = *dataPath
	}
	if *pngPath != "" {
		cfg.Output.PNG = *pngPath
	}

	tbl, err := loadMaterial(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Material.File).Msg("material data")
	}
	tbl = tbl.Trim(cfg.Material.FMin, cfg.Material.FMax)
	if tbl.Len() == 0 {
		log.Fatal().
			Float64("fmin_hz", cfg.Material.FMin).
			Float64("fmax_hz", cfg.Material.FMax).
			Msg("no material samples inside the requested band")
	}
	log.Info().Int("points", tbl.Len()).
		Str("band", fmt.Sprintf("%s .. %s",
			strings.TrimSpace(util.FormatFrequency(tbl.Freq[0])),
			strings.TrimSpace(util.FormatFrequency(tbl.Freq[tbl.Len()-1])))).
		Msg("material table loaded")

	sweep := analysis.NewImpedanceSweep(cfg.Coil(), tbl)
	if err := sweep.Setup(); err != nil {
		log.Fatal().Err(err).Msg("sweep setup")
	}
	if err := sweep.Execute(); err != nil {
		log.Fatal().Err(err).Msg("sweep")
	}

	if !*quiet {
		printResults(sweep.GetResults())
	}

	if srf, ok := analysis.SelfResonance(sweep.Frequencies(), sweep.Curve()); ok {
		log.Info().Str("srf", strings.TrimSpace(util.FormatFrequency(srf))).Msg("self-resonance inside band")
	}

	ann := render.Annotation{Title: cfg.Title, Coil: cfg.Coil()}

	if cfg.Output.PNG != "" {
		if err := render.SavePNG(cfg.Output.PNG, sweep.Frequencies(), sweep.Curve(), ann); err != nil {
			log.Fatal().Err(err).Msg("rendering figure")
		}
		log.Info().Str("file", cfg.Output.PNG).Msg("figure saved")
	}
	if cfg.Output.XLSX != "" {
		if err := render.SaveXLSX(cfg.Output.XLSX, sweep.Frequencies(), sweep.Curve(), ann); err != nil {
			log.Fatal().Err(err).Msg("saving workbook")
		}
		log.Info().Str("file", cfg.Output.XLSX).Msg("workbook saved")
	}
	if cfg.Output.TSV != "" {
		if err := render.SaveTSV(cfg.Output.TSV, sweep.Frequencies(), sweep.Curve()); err != nil {
			log.Fatal().Err(err).Msg("saving tsv")
		}
		log.Info().Str("file", cfg.Output.TSV).Msg("tsv saved")
	}
}

func loadMaterial(cfg *config.Config) (*material.Table, error) {
	switch strings.ToLower(filepath.Ext(cfg.Material.File)) {
	case ".xlsx":
		return material.LoadXLSX(cfg.Material.File, cfg.Material.Sheet)
	default:
		return material.LoadCSV(cfg.Material.File)
	}
}

func printResults(results map[string][]float64) {
	freqs := results[analysis.SeriesFreq]

	fmt.Printf("\nImpedance Sweep Results (%d frequency points):\n", len(freqs))
	fmt.Println("Frequency      |Z|<phase                R         X")
	fmt.Println("------------------------------------------------------------")

	mags := results[analysis.SeriesMag]
	phases := results[analysis.SeriesPhase]
	res := results[analysis.SeriesRe]
	reacts := results[analysis.SeriesIm]

	for i, freq := range freqs {
		fmt.Printf("%-13s Z=%s<%sdeg  %s  %s\n",
			util.FormatFrequency(freq),
			util.FormatMagnitude(mags[i]),
			util.FormatPhase(phases[i]),
			util.FormatMagnitude(res[i]),
			util.FormatMagnitude(reacts[i]))
	}
	fmt.Println()
}
