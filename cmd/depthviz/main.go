// Command depthviz displays synthetic depth maps in the interactive point
// cloud viewer. It exists to exercise the viewer without a trained network:
// the generated scenes use the same entry points that training-loop hooks do.
package main

import (
	"math"
	"os"

	"github.com/golang/geo/r3"
	"github.com/urfave/cli/v2"

	"github.com/motionvis/depthviz/logging"
	"github.com/motionvis/depthviz/rimage"
	"github.com/motionvis/depthviz/vis"
)

func main() {
	logger := logging.NewLogger("depthviz")

	app := &cli.App{
		Name:  "depthviz",
		Usage: "interactive point cloud viewer for depth maps",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Value: "maps",
				Usage: "'maps' compares several depth maps, 'prediction' shows one with camera poses",
			},
			&cli.IntFlag{
				Name:  "width",
				Value: 64,
				Usage: "synthetic depth map width",
			},
			&cli.IntFlag{
				Name:  "height",
				Value: 48,
				Usage: "synthetic depth map height",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: 3,
				Usage: "number of depth maps in 'maps' mode",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug level logging",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool("debug") {
				vis.SetDebug(true)
			}
			w := ctx.Int("width")
			h := ctx.Int("height")
			switch mode := ctx.String("mode"); mode {
			case "maps":
				return runMaps(w, h, ctx.Int("count"))
			case "prediction":
				return runPrediction(w, h)
			default:
				return cli.Exit("unknown mode: "+mode, 1)
			}
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

// rippleDepth builds a depth map of a plane at the given distance with a
// radial ripple, so the unprojected cloud has visible relief.
func rippleDepth(width, height int, distance float64) *rimage.DepthMap {
	dm := rimage.NewEmptyDepthMap(width, height)
	cx := float64(width) / 2
	cy := float64(height) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := math.Hypot(float64(x)-cx, float64(y)-cy)
			dm.Set(x, y, distance+0.1*math.Sin(r/4))
		}
	}
	return dm
}

func runMaps(width, height, count int) error {
	if count < 1 {
		count = 1
	}
	colors := vis.DistinctColors(count)
	depths := make(map[string]vis.DepthVis, count)
	for i := 0; i < count; i++ {
		c := colors[i]
		depths[string(rune('a'+i))] = vis.DepthVis{
			Depth:        rippleDepth(width, height, 1+0.5*float64(i)),
			UniformColor: &c,
		}
	}
	return vis.VisualizeDepthMaps(depths, nil)
}

func runPrediction(width, height int) error {
	// color ramp in the network's [-0.5, 0.5] range
	planes := [3][]float64{
		make([]float64, width*height),
		make([]float64, width*height),
		make([]float64, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			planes[0][i] = float64(x)/float64(width) - 0.5
			planes[1][i] = float64(y)/float64(height) - 0.5
			planes[2][i] = 0.25
		}
	}
	rotation := r3.Vector{0, 0.3, 0}
	translation := r3.Vector{-0.8, 0, 0.2}
	return vis.VisualizePrediction(vis.Prediction{
		Depth:       rippleDepth(width, height, 1.5),
		Rotation:    &rotation,
		Translation: &translation,
		FloatImage:  planes,
	})
}
