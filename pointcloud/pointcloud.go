package pointcloud

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// PointCloud is an ordered sequence of 3D points with optional per-point data.
// Insertion order is preserved and duplicate positions are allowed. A cloud is
// either fully colored or fully uncolored: mixing the two is an error.
type PointCloud interface {
	// Size returns the number of points.
	Size() int

	// At returns the point and data at the given index.
	At(i int) (r3.Vector, Data)

	// Add appends a point with its data. A nil Data is treated as positional only.
	Add(p r3.Vector, d Data) error

	// HasColors reports whether the points carry colors.
	HasColors() bool

	// Iterate walks the points in insertion order until fn returns false.
	Iterate(fn func(i int, p r3.Vector, d Data) bool)

	// Points returns the positions in insertion order.
	Points() []r3.Vector

	// Colors returns the packed RGB bytes (3 per point) in insertion order, or
	// nil for an uncolored cloud.
	Colors() []uint8

	// PrependAll inserts all of other's points before this cloud's points.
	PrependAll(other PointCloud) error
}

// basicPointCloud is the slice-backed implementation of PointCloud.
type basicPointCloud struct {
	points []r3.Vector
	data   []Data
}

// New returns an empty PointCloud.
func New() PointCloud {
	return NewWithPrealloc(0)
}

// NewWithPrealloc returns an empty PointCloud with the given capacity.
func NewWithPrealloc(size int) PointCloud {
	return &basicPointCloud{
		points: make([]r3.Vector, 0, size),
		data:   make([]Data, 0, size),
	}
}

func (cloud *basicPointCloud) Size() int {
	return len(cloud.points)
}

func (cloud *basicPointCloud) At(i int) (r3.Vector, Data) {
	return cloud.points[i], cloud.data[i]
}

func (cloud *basicPointCloud) Add(p r3.Vector, d Data) error {
	if d == nil {
		d = NewBasicData()
	}
	if len(cloud.points) > 0 && cloud.HasColors() != d.HasColor() {
		return errors.New("cannot mix colored and uncolored points in one cloud")
	}
	cloud.points = append(cloud.points, p)
	cloud.data = append(cloud.data, d)
	return nil
}

func (cloud *basicPointCloud) HasColors() bool {
	return len(cloud.data) > 0 && cloud.data[0].HasColor()
}

func (cloud *basicPointCloud) Iterate(fn func(i int, p r3.Vector, d Data) bool) {
	for i, p := range cloud.points {
		if !fn(i, p, cloud.data[i]) {
			return
		}
	}
}

func (cloud *basicPointCloud) Points() []r3.Vector {
	out := make([]r3.Vector, len(cloud.points))
	copy(out, cloud.points)
	return out
}

func (cloud *basicPointCloud) Colors() []uint8 {
	if !cloud.HasColors() {
		return nil
	}
	out := make([]uint8, 0, 3*len(cloud.data))
	for _, d := range cloud.data {
		r, g, b := d.RGB255()
		out = append(out, r, g, b)
	}
	return out
}

// PrependAll inserts other's points before this cloud's points, preserving the
// internal order of both. Both clouds must agree on coloring unless one is empty.
func (cloud *basicPointCloud) PrependAll(other PointCloud) error {
	if other == nil || other.Size() == 0 {
		return nil
	}
	if cloud.Size() > 0 && cloud.HasColors() != other.HasColors() {
		return errors.New("cannot merge colored and uncolored clouds")
	}
	points := make([]r3.Vector, 0, other.Size()+len(cloud.points))
	data := make([]Data, 0, other.Size()+len(cloud.data))
	other.Iterate(func(_ int, p r3.Vector, d Data) bool {
		points = append(points, p)
		data = append(data, d)
		return true
	})
	cloud.points = append(points, cloud.points...)
	cloud.data = append(data, cloud.data...)
	return nil
}
