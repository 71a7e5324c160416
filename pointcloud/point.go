package pointcloud

import (
	"github.com/golang/geo/r3"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// PointAndData is a tuple of a point's position and its associated data.
type PointAndData struct {
	P r3.Vector
	D Data
}

// Data describes data associated with a single point within a PointCloud.
type Data interface {
	// HasValue returns whether or not this point has some user data value
	// associated with it, e.g. a sensor intensity reading.
	HasValue() bool

	// Value returns the user data set value, if it exists.
	Value() int

	// SetValue sets the given user data value on the point.
	SetValue(v int) Data
}

type basicData struct {
	hasValue bool
	value    int
}

// NewBasicData returns a point data with no value.
func NewBasicData() Data {
	return &basicData{}
}

// NewValueData returns a point data with an associated value, e.g. intensity.
func NewValueData(v int) Data {
	return &basicData{hasValue: true, value: v}
}

func (bd *basicData) HasValue() bool {
	return bd.hasValue
}

func (bd *basicData) Value() int {
	return bd.value
}

func (bd *basicData) SetValue(v int) Data {
	bd.hasValue = true
	bd.value = v
	return bd
}
