// Command gospectral estimates gas mixture composition from infrared
// absorbance or transmittance scans by least-squares decomposition over known
// reference spectra.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specproj/gospectral/analysis"
	"github.com/specproj/gospectral/render"
	"github.com/specproj/gospectral/synth"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	var outDir string
	cfg := analysis.DefaultConfig()
	mixture := synth.DefaultMixture()

	root := &cobra.Command{
		Use:   "gospectral",
		Short: "Estimate gas mixture composition from infrared spectra",
		Long: `gospectral decomposes an infrared sample spectrum into a linear
combination of known reference spectra and reports the fitted multiplier of
each gas. Run without arguments it analyzes every sample in the configured
sample directory.

Reference spectra are JCAMP-DX files, such as the infrared spectra published
by the NIST Chemistry WebBook; sample spectra are two-column CSV files
(wavenumber, absorbance).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, mix, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			if mix != nil {
				mixture = mix
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := analysis.Run(cfg)
			if err != nil {
				return err
			}
			return writeReports(reports, cfg, outDir)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default gospectral.yaml in the working directory, if present)")
	root.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "directory for rendered figures")

	root.AddCommand(
		newAnalyzeCmd(&cfg, &outDir),
		newPlotCmd(&cfg, &outDir),
		newListRefsCmd(&cfg),
		newGenSampleCmd(&cfg, &mixture),
	)
	return root
}

func newAnalyzeCmd(cfg *analysis.Config, outDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Analyze the specified sample spectra (.csv or .jdx)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := analysis.RunFiles(args, *cfg)
			if err != nil {
				return err
			}
			return writeReports(reports, *cfg, *outDir)
		},
	}
}

func newPlotCmd(cfg *analysis.Config, outDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plot <file>...",
		Short: "Render the specified spectra as PNG figures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				s, err := analysis.LoadSpectrum(path, *cfg)
				if err != nil {
					return err
				}
				out := filepath.Join(*outDir, figureName(s.Title)+".png")
				if err := render.Spectrum(s, out, render.DefaultOptions()); err != nil {
					return err
				}
				fmt.Println(out)
			}
			return nil
		},
	}
}

func newListRefsCmd(cfg *analysis.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list-refs",
		Short: "List the molecular formulas of all available reference spectra",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := analysis.LoadLibrary(cfg.RefDir, *cfg)
			if err != nil {
				return err
			}
			for _, name := range lib.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newGenSampleCmd(cfg *analysis.Config, mixture *synth.Mixture) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "gen-sample",
		Short: "Generate a synthetic sample from the configured mixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := analysis.LoadLibrary(cfg.RefDir, *cfg)
			if err != nil {
				return err
			}
			s, err := synth.Generate(lib, *mixture)
			if err != nil {
				return err
			}
			out := outFile
			if out == "" {
				out = filepath.Join(cfg.SampleDir, "synthetic_sample.csv")
			}
			if err := s.SaveCSV(out); err != nil {
				return err
			}
			fmt.Printf("Synthetic sample written to: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&outFile, "file", "", "output path (default <sample dir>/synthetic_sample.csv)")
	return cmd
}

func writeReports(reports []*analysis.Report, cfg analysis.Config, outDir string) error {
	opts := render.DefaultOptions()
	opts.ShowConstituents = cfg.ShowConstituents
	opts.PlotResiduals = cfg.PlotResiduals

	for _, rep := range reports {
		fmt.Printf("Sample: %s\n", rep.Sample.Title)
		for _, c := range rep.Fit.Components {
			fmt.Printf("  %-10s %10.4f\n", c.Ref.Molform, c.Multiplier)
		}
		if rep.Fit.Solved {
			fmt.Printf("  R² = %.4f\n", rep.Fit.R2)
		}

		out := filepath.Join(outDir, figureName(rep.Sample.Title)+"_fit.png")
		if err := render.Fit(rep, out, opts); err != nil {
			return err
		}
		fmt.Printf("  figure: %s\n", out)
	}
	return nil
}

func figureName(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}
