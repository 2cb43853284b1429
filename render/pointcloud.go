package render

import (
	"github.com/pkg/errors"

	"github.com/motionvis/depthviz/pointcloud"
)

// pointCloudPointSize is the pixel size used for rendered cloud points.
const pointCloudPointSize = 3

// NewPointCloudActor builds a point-primitive actor from a point cloud: one
// single-vertex cell per point, in insertion order. Colors are carried through
// when the cloud has them; otherwise the backend's default color applies.
func NewPointCloudActor(pc pointcloud.PointCloud) (*Actor, error) {
	if pc == nil {
		return nil, errors.New("point cloud is nil")
	}
	pts := pc.Points()
	colors := pc.Colors()
	if colors != nil && len(colors) != 3*len(pts) {
		return nil, errors.Errorf("cloud has %d points but %d color values, need %d",
			len(pts), len(colors), 3*len(pts))
	}
	verts := make([][]int, len(pts))
	for i := range pts {
		verts[i] = []int{i}
	}
	geom := &PolyData{
		Points: pts,
		Verts:  verts,
		Colors: colors,
	}
	return &Actor{
		Geometry: geom,
		Style:    Style{Lighting: false, PointSize: pointCloudPointSize},
	}, nil
}
