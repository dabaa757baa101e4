// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cogentcore.org/colors"
	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/lab"
	"cogentcore.org/colors/logx"
	"cogentcore.org/colors/srgb"
)

// NewRootCommand returns the root colors command with all of its
// subcommands. The returned command owns a fresh [Config].
func NewRootCommand() *cobra.Command {
	cfg := &Config{}
	SetFromDefaults(cfg)
	var configFile string

	root := &cobra.Command{
		Use:           "colors",
		Short:         "Convert, compare and interpolate colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := loadConfig(cmd.Flags(), cfg, configFile); err != nil {
					return err
				}
			}
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			slog.Debug("configured", "space", cfg.Space, "illuminant", cfg.Illuminant, "file", configFile)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML or YAML config `file`")
	pf.StringVarP(&cfg.Space, "space", "s", cfg.Space, "output color space")
	pf.StringVar(&cfg.Illuminant, "illuminant", cfg.Illuminant, "illuminant for XYZ output")
	pf.BoolVar(&cfg.Swatch, "swatch", cfg.Swatch, "print terminal color swatches")
	pf.BoolVar(&cfg.VeryVerbose, "vv", cfg.VeryVerbose, "print debug messages")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print informational messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "only print errors")

	root.AddCommand(
		newConvertCommand(cfg),
		newDistanceCommand(cfg),
		newGradientCommand(cfg),
		newInfoCommand(cfg),
		newIlluminantsCommand(),
	)
	return root
}

// loadConfig opens the config file and then reapplies the flags that
// were set on the command line, so that they take precedence.
func loadConfig(fs *pflag.FlagSet, cfg *Config, file string) error {
	set := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})
	if err := Open(cfg, file); err != nil {
		return err
	}
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// parseColor parses a color given on the command line.
func parseColor(s string) (srgb.RGB, error) {
	return colors.FromString(s, srgb.RGB{})
}

// printColor writes the color, preceded by a swatch if enabled.
func printColor(w io.Writer, cfg *Config, c colors.Color, text string) {
	if cfg.Swatch {
		fmt.Fprintf(w, "%s %s\n", colors.Swatch(c), text)
		return
	}
	fmt.Fprintln(w, text)
}

func newConvertCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert color...",
		Short: "Convert colors to the output space",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := lookupSpace(cfg.Space)
			if err != nil {
				return err
			}
			for _, arg := range args {
				c, err := parseColor(arg)
				if err != nil {
					return err
				}
				slog.Debug("converting", "color", arg, "space", cfg.Space)
				printColor(cmd.OutOrStdout(), cfg, c, sp.convert(c).String())
			}
			return nil
		},
	}
}

func newDistanceCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "distance color1 color2",
		Short: "Print the perceptual distance between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseColor(args[0])
			if err != nil {
				return err
			}
			b, err := parseColor(args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printColor(w, cfg, a, a.Hex())
			printColor(w, cfg, b, b.Hex())
			fmt.Fprintf(w, "CIEDE2000: %.4f\n", colors.Distance(a, b))
			fmt.Fprintf(w, "Euclidean CIELAB: %.4f\n", colors.EuclideanDistance(colors.Convert[lab.Lab](a), colors.Convert[lab.Lab](b)))
			fmt.Fprintf(w, "Indistinguishable: %t\n", colors.VisuallyIndistinguishable(a, b))
			return nil
		},
	}
}

func newGradientCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradient start end",
		Short: "Print a gradient between two colors in the output space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := lookupSpace(cfg.Space)
			if err != nil {
				return err
			}
			a, err := parseColor(args[0])
			if err != nil {
				return err
			}
			b, err := parseColor(args[1])
			if err != nil {
				return err
			}
			n := max(cfg.Steps, 0)
			xs := make([]float64, n+2)
			for i := range xs {
				xs[i] = float64(i) / float64(n+1)
			}
			for _, c := range sp.gradient(a, b, xs, cfg.Cbrt) {
				printColor(cmd.OutOrStdout(), cfg, c, c.String())
			}
			if cfg.PNG != "" {
				img := sp.render(a, b, cfg.Cbrt, cfg.Width, cfg.Height)
				if err := imgio.Save(cfg.PNG, img, imgio.PNGEncoder()); err != nil {
					return err
				}
				slog.Info("saved gradient", "file", cfg.PNG)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&cfg.Steps, "steps", "n", cfg.Steps, "number of intermediate colors")
	fs.BoolVar(&cfg.Cbrt, "cbrt", cfg.Cbrt, "use cube root normalization")
	fs.StringVar(&cfg.PNG, "png", cfg.PNG, "save a rendering of the gradient to this PNG `file`")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "width of the PNG rendering")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "height of the PNG rendering")
	return cmd
}

func newInfoCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info color",
		Short: "Print a color in every space along with its perceptual attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			il, ok := cie.IlluminantFromName(cfg.Illuminant)
			if !ok {
				return fmt.Errorf("unknown illuminant %q", cfg.Illuminant)
			}
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printColor(w, cfg, c, c.Hex())
			for _, name := range spaceNames() {
				fmt.Fprintf(w, "%-11s %s\n", name, spaces[name].convert(c))
			}
			fmt.Fprintf(w, "%-11s %s\n", "xyz", c.ToXYZ(il))
			fmt.Fprintf(w, "%-11s %.4g\n", "hue", colors.Hue(c))
			fmt.Fprintf(w, "%-11s %.4g\n", "lightness", colors.Lightness(c))
			fmt.Fprintf(w, "%-11s %.4g\n", "chroma", colors.Chroma(c))
			fmt.Fprintf(w, "%-11s %.4g\n", "saturation", colors.Saturation(c))
			fmt.Fprintf(w, "%-11s %t\n", "imaginary", colors.IsImaginary(c))
			return nil
		},
	}
}

func newIlluminantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "illuminants",
		Short: "List the standard illuminants and their white points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, il := range cie.Illuminants {
				wp := il.WhitePoint()
				fmt.Fprintf(w, "%-4s %.5f %.5f %.5f\n", il, wp.X, wp.Y, wp.Z)
			}
			return nil
		},
	}
}
