package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// List is a composite hittable over a flat collection of objects.
// The closest hit wins, so the result is independent of insertion order.
type List struct {
	Objects []core.Hittable
}

// NewList creates a list containing the given objects
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends objects to the list
func (l *List) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Clear removes all objects from the list
func (l *List) Clear() {
	l.Objects = nil
}

// Count returns the number of objects in the list
func (l *List) Count() int {
	return len(l.Objects)
}

// Hit tests the ray against every member, keeping the nearest hit by
// shrinking the upper bound of the interval as closer hits are found
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
