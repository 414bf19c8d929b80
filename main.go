// Command whitted renders the built-in demo scenes, or a loaded OBJ/glTF
// model, to an image file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

type renderOptions struct {
	sceneName        string
	modelPath        string
	width            int
	height           int
	output           string
	maxDepth         int
	threads          int
	oversampling     int
	aperture         float64
	focalLength      float64
	blurOversampling int
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "whitted",
		Short:         "A recursive ray tracer with reflection, refraction and soft shadows",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(renderCommand(), scenesCommand())
	return root
}

func renderCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.sceneName, "scene", "default",
		fmt.Sprintf("scene to render (%s)", strings.Join(scene.Names(), ", ")))
	cmd.Flags().StringVar(&opts.modelPath, "model", "", "render an OBJ or glTF model instead of a built-in scene")
	cmd.Flags().IntVar(&opts.width, "width", 800, "output width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 600, "output height in pixels")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "render.png", "output file (.png, .jpg or .ppm)")
	cmd.Flags().IntVar(&opts.maxDepth, "depth", 5, "maximum reflection/refraction bounces")
	cmd.Flags().IntVar(&opts.threads, "threads", 0, "render workers, 0 for one per CPU")
	cmd.Flags().IntVar(&opts.oversampling, "oversampling", 1, "antialiasing grid resolution, n casts n*n rays per pixel")
	cmd.Flags().Float64Var(&opts.aperture, "aperture", 0, "lens radius for depth of field, 0 to disable")
	cmd.Flags().Float64Var(&opts.focalLength, "focal-length", 0, "distance to the focal plane, 0 keeps the scene default")
	cmd.Flags().IntVar(&opts.blurOversampling, "blur-oversampling", 4, "lens samples per ray when depth of field is on")

	return cmd
}

func scenesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func runRender(ctx context.Context, opts renderOptions) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := buildScene(opts)
	if err != nil {
		return err
	}
	applyCameraOptions(s.Camera, opts)

	canvas, err := s.Camera.Render(ctx, s.World, logger)
	if err != nil {
		return errors.Wrap(err, "render")
	}

	if err := saveCanvas(canvas, opts.output); err != nil {
		return err
	}
	logger.Info("wrote image", zap.String("path", opts.output))
	return nil
}

func buildScene(opts renderOptions) (*scene.Scene, error) {
	if opts.modelPath != "" {
		return scene.NewModelScene(opts.modelPath, opts.width, opts.height)
	}
	return scene.New(opts.sceneName, opts.width, opts.height)
}

func applyCameraOptions(camera *renderer.Camera, opts renderOptions) {
	camera.MaxDepth = opts.maxDepth
	camera.Threads = opts.threads
	camera.Oversampling = opts.oversampling
	camera.Aperture = opts.aperture
	camera.BlurOversampling = opts.blurOversampling
	if opts.focalLength > 0 {
		camera.FocalLength = opts.focalLength
	}
}

func saveCanvas(canvas *renderer.Canvas, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return errors.Wrap(os.WriteFile(path, []byte(canvas.ToPPM()), 0o644), "write ppm")
	}
	return errors.Wrapf(imaging.Save(canvas.Image(), path), "save %s", path)
}
