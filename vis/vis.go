// Package vis composes depth-map point clouds, camera glyphs, and an axes
// gizmo into an interactive 3D scene.
package vis

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/motionvis/depthviz/logging"
	"github.com/motionvis/depthviz/pointcloud"
	"github.com/motionvis/depthviz/render"
	"github.com/motionvis/depthviz/rimage"
	"github.com/motionvis/depthviz/rimage/transform"
	"github.com/motionvis/depthviz/spatialmath"
	"github.com/motionvis/depthviz/viewer"
)

var logger = logging.NewLogger("vis")

// SetDebug switches the package logger between Info and Debug level output.
// Debug logs include per-map point counts during composition.
func SetDebug(debug bool) {
	if debug {
		logger = logging.NewDebugLogger("vis")
	} else {
		logger = logging.NewLogger("vis")
	}
}

// solidWhite is the fallback fill when a depth map carries no color.
var solidWhite = [3]uint8{255, 255, 255}

// DepthVis is one named entry of a multi-depth-map comparison: the depth map
// plus either a uniform color or a full color image, or neither.
type DepthVis struct {
	Depth *rimage.DepthMap
	// UniformColor, when set, fills every pixel with one color.
	UniformColor *[3]uint8
	// Color, when set, supplies per-pixel colors; same dimensions as Depth.
	Color *rimage.Image
}

// VisualizeDepthMaps compares multiple depth maps in one 3D point cloud,
// each unprojected under the identity pose with the shared intrinsics
// (the network defaults when nil). The call blocks until the user closes
// the window.
//
// Entries are processed in sorted key order, and each entry's points are
// prepended before the running total, so the last-processed map's points
// come first in the merged cloud.
func VisualizeDepthMaps(depths map[string]DepthVis, intrinsics *transform.NormalizedIntrinsics) error {
	actors, err := composeDepthMaps(depths, intrinsics)
	if err != nil {
		return err
	}
	return show(actors)
}

func composeDepthMaps(depths map[string]DepthVis, intrinsics *transform.NormalizedIntrinsics) ([]*render.Actor, error) {
	if len(depths) == 0 {
		return nil, errors.New("no depth maps to visualize")
	}
	ni := transform.DefaultIntrinsics
	if intrinsics != nil {
		ni = *intrinsics
	}

	keys := make([]string, 0, len(depths))
	for key := range depths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	identity := spatialmath.NewZeroPose()
	var total pointcloud.PointCloud
	for _, key := range keys {
		entry := depths[key]
		if err := validateDepthVis(key, entry); err != nil {
			return nil, err
		}
		dm := entry.Depth
		img := entry.Color
		switch {
		case entry.UniformColor != nil:
			img = rimage.NewUniformImage(dm.Width(), dm.Height(), *entry.UniformColor)
		case img == nil:
			img = rimage.NewUniformImage(dm.Width(), dm.Height(), solidWhite)
		}

		params := ni.Denormalize(dm.Width(), dm.Height())
		cur, err := transform.DepthMapToPointCloud(dm, params, identity, nil, img)
		if err != nil {
			return nil, errors.Wrapf(err, "unprojecting %q", key)
		}
		logger.Debugw("unprojected depth map", "key", key, "points", cur.Size())

		if total == nil {
			total = cur
		} else if err := total.PrependAll(cur); err != nil {
			return nil, errors.Wrapf(err, "merging %q", key)
		}
	}

	cloudActor, err := render.NewPointCloudActor(total)
	if err != nil {
		return nil, err
	}
	return []*render.Actor{
		cloudActor,
		render.NewCameraActor(identity),
		render.NewAxesActor(),
	}, nil
}

func validateDepthVis(key string, entry DepthVis) error {
	var err error
	if entry.Depth == nil {
		err = multierr.Append(err, errors.Errorf("entry %q has no depth map", key))
	} else if entry.Depth.Width() <= 0 || entry.Depth.Height() <= 0 {
		err = multierr.Append(err, errors.Errorf("entry %q has empty depth map", key))
	}
	if entry.Depth != nil && entry.Color != nil &&
		(entry.Color.Width() != entry.Depth.Width() || entry.Color.Height() != entry.Depth.Height()) {
		err = multierr.Append(err, errors.Errorf("entry %q color image size (%d, %d) does not match depth (%d, %d)",
			key, entry.Color.Width(), entry.Color.Height(), entry.Depth.Width(), entry.Depth.Height()))
	}
	return err
}

// Prediction bundles one network prediction for visualization. Only Depth is
// required.
type Prediction struct {
	Depth *rimage.DepthMap
	// Intrinsics in normalized form; the network defaults when nil.
	Intrinsics *transform.NormalizedIntrinsics
	// Normals is an optional per-pixel normal map; same dimensions as Depth.
	Normals *rimage.NormalMap
	// Rotation is an optional axis-angle rotation and Translation an optional
	// offset for the second camera. Both nil means identity.
	Rotation    *r3.Vector
	Translation *r3.Vector
	// Image is an optional color image; same dimensions as Depth.
	Image *rimage.Image
	// FloatImage is raw network color output in [-0.5, 0.5], planar RGB.
	// Ignored when Image is set; otherwise rescaled via (x+0.5)*255.
	FloatImage [3][]float64
}

// VisualizePrediction shows one predicted depth map as a point cloud together
// with two camera glyphs: one at the identity pose that produced the depth
// map, and one at the supplied relative pose. The pose places the second
// glyph only; it does not transform the unprojected points. The call blocks
// until the user closes the window.
func VisualizePrediction(pred Prediction) error {
	actors, err := composePrediction(pred)
	if err != nil {
		return err
	}
	return show(actors)
}

func composePrediction(pred Prediction) ([]*render.Actor, error) {
	if err := validatePrediction(pred); err != nil {
		return nil, err
	}
	dm := pred.Depth
	ni := transform.DefaultIntrinsics
	if pred.Intrinsics != nil {
		ni = *pred.Intrinsics
	}
	params := ni.Denormalize(dm.Width(), dm.Height())

	identity := spatialmath.NewZeroPose()
	secondCam := identity
	if pred.Rotation != nil && pred.Translation != nil {
		secondCam = spatialmath.NewPoseFromAxisAngle(*pred.Rotation, *pred.Translation)
	}

	img := pred.Image
	if img == nil && pred.FloatImage[0] != nil {
		var err error
		img, err = rimage.NewImageFromFloats(pred.FloatImage, dm.Width(), dm.Height())
		if err != nil {
			return nil, err
		}
	}

	pc, err := transform.DepthMapToPointCloud(dm, params, identity, pred.Normals, img)
	if err != nil {
		return nil, err
	}
	logger.Debugw("unprojected prediction", "points", pc.Size())

	cloudActor, err := render.NewPointCloudActor(pc)
	if err != nil {
		return nil, err
	}
	return []*render.Actor{
		cloudActor,
		render.NewCameraActor(identity),
		render.NewCameraActor(secondCam),
		render.NewAxesActor(),
	}, nil
}

func validatePrediction(pred Prediction) error {
	var err error
	if pred.Depth == nil {
		return errors.New("prediction has no depth map")
	}
	if pred.Depth.Width() <= 0 || pred.Depth.Height() <= 0 {
		err = multierr.Append(err, errors.New("prediction depth map is empty"))
	}
	if pred.Image != nil && (pred.Image.Width() != pred.Depth.Width() || pred.Image.Height() != pred.Depth.Height()) {
		err = multierr.Append(err, errors.Errorf("image size (%d, %d) does not match depth (%d, %d)",
			pred.Image.Width(), pred.Image.Height(), pred.Depth.Width(), pred.Depth.Height()))
	}
	if pred.Normals != nil && (pred.Normals.Width() != pred.Depth.Width() || pred.Normals.Height() != pred.Depth.Height()) {
		err = multierr.Append(err, errors.Errorf("normal map size (%d, %d) does not match depth (%d, %d)",
			pred.Normals.Width(), pred.Normals.Height(), pred.Depth.Width(), pred.Depth.Height()))
	}
	return err
}

// show hands the composed actors to a fresh viewer and blocks in its
// interactive loop.
func show(actors []*render.Actor) error {
	v, err := viewer.New(viewer.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, actor := range actors {
		v.AddActor(actor)
	}
	return v.Run()
}
