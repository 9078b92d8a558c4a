package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"spincloud/internal/assets"
	"spincloud/internal/cloud"
	"spincloud/internal/config"
	"spincloud/internal/render"
	"spincloud/internal/sampler"
	"spincloud/internal/viz"
)

var (
	configFile string
	stride     int
	invert     bool
	brightness float64
	contrast   float64
	// render command
	angle   float64
	frames  int
	braille bool
	// sample command
	bins int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spincloud [image]",
		Short: "rotating ascii point-cloud viewer",
		Long: "spincloud samples an image into a 3D point cloud and spins an\n" +
			"ascii-art projection of it in the terminal. Without an argument it\n" +
			"shows a built-in image.",
		Args: cobra.MaximumNArgs(1),
		RunE: runView,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	viewCmd := &cobra.Command{
		Use:   "view [image]",
		Short: "interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}

	renderCmd := &cobra.Command{
		Use:   "render [image]",
		Short: "print one or more frames to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle in radians")
	renderCmd.Flags().IntVar(&frames, "frames", 1, "number of frames, one tick apart")
	renderCmd.Flags().BoolVar(&braille, "braille", false, "rasterize with braille cells")

	sampleCmd := &cobra.Command{
		Use:   "sample [image]",
		Short: "show point cloud statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSample,
	}
	sampleCmd.Flags().IntVar(&bins, "bins", 16, "depth histogram bins")

	for _, cmd := range []*cobra.Command{rootCmd, viewCmd, renderCmd, sampleCmd} {
		cmd.Flags().IntVar(&stride, "stride", 0, "pixel sampling stride (0 = default)")
		cmd.Flags().BoolVar(&invert, "invert", false, "invert colors before sampling")
		cmd.Flags().Float64Var(&brightness, "brightness", 0, "brightness shift in percent")
		cmd.Flags().Float64Var(&contrast, "contrast", 0, "contrast shift in percent")
	}

	rootCmd.AddCommand(viewCmd, renderCmd, sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func samplerOptions() []sampler.Option {
	var opts []sampler.Option
	if brightness != 0 {
		opts = append(opts, sampler.WithBrightness(brightness))
	}
	if contrast != 0 {
		opts = append(opts, sampler.WithContrast(contrast))
	}
	if invert {
		opts = append(opts, sampler.WithInvert())
	}
	return opts
}

// loadCloud samples the named image, or the embedded default when no path
// is given.
func loadCloud(args []string, cfg *config.Config) (cloud.Cloud, string, error) {
	if stride > 0 {
		cfg.Sampler.Stride = stride
	}

	var (
		r    io.Reader
		name string
	)
	if len(args) == 0 {
		r = bytes.NewReader(assets.DefaultPNG)
		name = assets.DefaultName
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		r = f
		name = filepath.Base(args[0])
	}

	c, err := sampler.Load(r, cfg.Sampler, samplerOptions()...)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	return c, name, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, name, err := loadCloud(args, cfg)
	if err != nil {
		return err
	}
	return viz.Run(cfg, c, name)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, _, err := loadCloud(args, cfg)
	if err != nil {
		return err
	}

	r := render.New(cfg.Render)
	r.SetCloud(c)
	r.SetAngle(angle)

	mode := render.ModeGlyph
	if braille {
		mode = render.ModeBraille
	}
	tick := time.Second / time.Duration(cfg.Render.FPS)
	for i := 0; i < frames; i++ {
		if i > 0 {
			r.Advance(tick)
		}
		fmt.Print(r.FrameIn(mode))
	}
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, name, err := loadCloud(args, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "image\t%s\n", name)
	fmt.Fprintf(w, "points\t%d\n", len(c))
	fmt.Fprintf(w, "layers\t%d\n", cfg.Sampler.Layers())
	fmt.Fprintf(w, "stride\t%d\n", cfg.Sampler.Stride)
	if len(c) > 0 {
		min, max := c.Bounds()
		fmt.Fprintf(w, "x\t[%.1f, %.1f]\n", min.X, max.X)
		fmt.Fprintf(w, "y\t[%.1f, %.1f]\n", min.Y, max.Y)
		fmt.Fprintf(w, "z\t[%.1f, %.1f]\n", min.Z, max.Z)
		fmt.Fprintf(w, "radius\t%.1f\n", c.Radius())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(c) == 0 {
		fmt.Println("\nno qualifying pixels (empty cloud)")
		return nil
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(c.DepthHistogram(bins),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("points per depth bin (far to near)"),
	))
	return nil
}
