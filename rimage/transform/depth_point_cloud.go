package transform

import (
	"image/color"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/motionvis/depthviz/pointcloud"
	"github.com/motionvis/depthviz/rimage"
	"github.com/motionvis/depthviz/spatialmath"
)

// DepthMapToPointCloud unprojects a depth map into a 3D point cloud. Pixels
// are scanned in row-major order; a pixel contributes a point only if its
// depth is finite and positive. Each pixel (x, y) with depth d back-projects
// through the pinhole model to camera space and is then mapped into the world
// frame by the pose, world = (p - t) * R, the same convention that places the
// camera glyphs. Colors and normals, when given, are carried per point.
func DepthMapToPointCloud(
	dm *rimage.DepthMap,
	intrinsics *PinholeCameraIntrinsics,
	pose spatialmath.Pose,
	normals *rimage.NormalMap,
	img *rimage.Image,
) (pointcloud.PointCloud, error) {
	if dm == nil {
		return nil, errors.New("depth map is nil")
	}
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	if intrinsics.Width != dm.Width() || intrinsics.Height != dm.Height() {
		return nil, errors.Errorf("depth map dimension and intrinsics don't match Depth(%d,%d) != Intrinsics(%d,%d)",
			dm.Width(), dm.Height(), intrinsics.Width, intrinsics.Height)
	}
	if img != nil && (img.Width() != dm.Width() || img.Height() != dm.Height()) {
		return nil, errors.Errorf("color image dimension and depth map don't match Image(%d,%d) != Depth(%d,%d)",
			img.Width(), img.Height(), dm.Width(), dm.Height())
	}
	if normals != nil && (normals.Width() != dm.Width() || normals.Height() != dm.Height()) {
		return nil, errors.Errorf("normal map dimension and depth map don't match Normals(%d,%d) != Depth(%d,%d)",
			normals.Width(), normals.Height(), dm.Width(), dm.Height())
	}

	pc := pointcloud.NewWithPrealloc(dm.Width() * dm.Height())
	for y := 0; y < dm.Height(); y++ {
		for x := 0; x < dm.Width(); x++ {
			d := dm.GetDepth(x, y)
			if !rimage.ValidDepth(d) {
				continue
			}
			px, py, pz := intrinsics.PixelToPoint(float64(x), float64(y), d)
			world := pose.TransformPoint(r3.Vector{X: px, Y: py, Z: pz})

			data := pointcloud.NewBasicData()
			if img != nil {
				r, g, b := img.RGBAt(x, y)
				data = pointcloud.NewColoredData(color.NRGBA{R: r, G: g, B: b, A: 255})
			}
			if normals != nil {
				data.SetNormal(normals.NormalAt(x, y))
			}
			if err := pc.Add(world, data); err != nil {
				return nil, err
			}
		}
	}
	return pc, nil
}
