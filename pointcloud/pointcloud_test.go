package pointcloud

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPointCloudBasic(t *testing.T) {
	pc := New()

	p0 := NewVector(0, 0, 0)
	d0 := NewValueData(5)

	test.That(t, pc.Set(p0, d0), test.ShouldBeNil)
	d, got := pc.At(0, 0, 0)
	test.That(t, got, test.ShouldBeTrue)
	test.That(t, d, test.ShouldResemble, d0)

	_, got = pc.At(1, 0, 1)
	test.That(t, got, test.ShouldBeFalse)

	p1 := NewVector(1, 0, 1)
	d1 := NewValueData(17)
	test.That(t, pc.Set(p1, d1), test.ShouldBeNil)

	d, got = pc.At(1, 0, 1)
	test.That(t, got, test.ShouldBeTrue)
	test.That(t, d, test.ShouldResemble, d1)
	test.That(t, d, test.ShouldNotResemble, d0)

	p2 := NewVector(-1, -2, 1)
	d2 := NewValueData(81)
	test.That(t, pc.Set(p2, d2), test.ShouldBeNil)
	d, got = pc.At(-1, -2, 1)
	test.That(t, got, test.ShouldBeTrue)
	test.That(t, d, test.ShouldResemble, d2)

	test.That(t, pc.Size(), test.ShouldEqual, 3)

	count := 0
	pc.Iterate(0, 0, func(p r3.Vector, d Data) bool {
		count++
		return true
	})
	test.That(t, count, test.ShouldEqual, 3)

	// overwriting a position does not grow the cloud
	test.That(t, pc.Set(p1, NewValueData(99)), test.ShouldBeNil)
	test.That(t, pc.Size(), test.ShouldEqual, 3)
	d, got = pc.At(1, 0, 1)
	test.That(t, got, test.ShouldBeTrue)
	test.That(t, d.Value(), test.ShouldEqual, 99)
}

func TestPointCloudSetNaN(t *testing.T) {
	pc := New()
	err := pc.Set(NewVector(math.NaN(), 0, 0), NewBasicData())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, pc.Size(), test.ShouldEqual, 0)
}

func TestPointCloudMetaData(t *testing.T) {
	pc := New()
	test.That(t, pc.Set(NewVector(-2, 1, 6), NewValueData(3)), test.ShouldBeNil)
	test.That(t, pc.Set(NewVector(4, -5, 0), NewBasicData()), test.ShouldBeNil)

	meta := pc.MetaData()
	test.That(t, meta.HasValue, test.ShouldBeTrue)
	test.That(t, meta.MinX, test.ShouldEqual, -2)
	test.That(t, meta.MaxX, test.ShouldEqual, 4)
	test.That(t, meta.MinY, test.ShouldEqual, -5)
	test.That(t, meta.MaxY, test.ShouldEqual, 1)
	test.That(t, meta.MinZ, test.ShouldEqual, 0)
	test.That(t, meta.MaxZ, test.ShouldEqual, 6)
}

func TestPointCloudIterateBatches(t *testing.T) {
	pc := New()
	for i := 0; i < 10; i++ {
		test.That(t, pc.Set(NewVector(float64(i), 0, 0), NewBasicData()), test.ShouldBeNil)
	}
	seen := 0
	for batch := 0; batch < 3; batch++ {
		pc.Iterate(3, batch, func(p r3.Vector, d Data) bool {
			seen++
			return true
		})
	}
	test.That(t, seen, test.ShouldEqual, 10)
}
