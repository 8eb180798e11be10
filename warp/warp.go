// Package warp maps points from the unit square onto other domains. Each
// mapping keeps the density uniform with respect to the target measure (or
// cosine-weighted where the name says so) and has a matching PDF function
// for use as the denominator of a Monte-Carlo estimator.
//
// The u1 and u2 arguments are expected in [0, 1), as produced by the
// samplers. Out-of-range inputs are not checked.
package warp

import (
	fmath "github.com/nozzle/sampling/internal/math"
)

// Disk maps (u1, u2) uniformly onto a disk of the given radius centered at
// the origin using the polar mapping r = radius*sqrt(u1), theta = 2*pi*u2.
func Disk[T fmath.Float](radius, u1, u2 T) (x, y T) {
	r := radius * fmath.Sqrt(u1)
	theta := 2 * T(fmath.Pi) * u2
	return r * fmath.Cos(theta), r * fmath.Sin(theta)
}

// DiskPDF is the area density of Disk and DiskConcentric.
func DiskPDF[T fmath.Float](radius T) T {
	return T(fmath.InvPi) / (radius * radius)
}

// DiskConcentric maps (u1, u2) uniformly onto a disk with Shirley's
// concentric mapping, which keeps neighbouring points close and so
// preserves more of the input's stratification than Disk.
func DiskConcentric[T fmath.Float](radius, u1, u2 T) (x, y T) {
	a := 2*u1 - 1
	b := 2*u2 - 1
	if a == 0 && b == 0 {
		return 0, 0
	}

	var r, theta T
	if fmath.Abs(a) > fmath.Abs(b) {
		r = radius * a
		theta = T(0.25*fmath.Pi) * (b / a)
	} else {
		r = radius * b
		theta = T(0.5*fmath.Pi) - T(0.25*fmath.Pi)*(a/b)
	}
	return r * fmath.Cos(theta), r * fmath.Sin(theta)
}

// Sphere maps (u1, u2) uniformly onto the surface of a sphere. u1 selects
// the height z = radius*(1-2*u1) and u2 the azimuth.
func Sphere[T fmath.Float](radius, u1, u2 T) (x, y, z T) {
	h := 1 - 2*u1
	phi := 2 * T(fmath.Pi) * u2
	s := radius * fmath.Sqrt(max(0, 1-h*h))
	return fmath.Cos(phi) * s, fmath.Sin(phi) * s, radius * h
}

// SpherePDF is the surface density of Sphere.
func SpherePDF[T fmath.Float](radius T) T {
	return T(0.25*fmath.InvPi) / (radius * radius)
}

// Hemisphere maps (u1, u2) uniformly onto the hemisphere z >= 0. u1 is the
// cosine of the polar angle.
func Hemisphere[T fmath.Float](radius, u1, u2 T) (x, y, z T) {
	phi := 2 * T(fmath.Pi) * u2
	s := radius * fmath.Sqrt(max(0, 1-u1*u1))
	return fmath.Cos(phi) * s, fmath.Sin(phi) * s, radius * u1
}

// HemispherePDF is the surface density of Hemisphere.
func HemispherePDF[T fmath.Float](radius T) T {
	return T(0.5*fmath.InvPi) / (radius * radius)
}

// HemisphereCosine maps (u1, u2) onto the hemisphere z >= 0 with density
// proportional to the cosine of the polar angle, by projecting a uniform
// disk point up onto the surface (Malley's method).
func HemisphereCosine[T fmath.Float](radius, u1, u2 T) (x, y, z T) {
	dx, dy := Disk(1, u1, u2)
	return lift(radius, dx, dy)
}

// HemisphereCosineConcentric is HemisphereCosine built on the concentric
// disk mapping.
func HemisphereCosineConcentric[T fmath.Float](radius, u1, u2 T) (x, y, z T) {
	dx, dy := DiskConcentric(1, u1, u2)
	return lift(radius, dx, dy)
}

// HemisphereCosinePDF is the surface density of the cosine-weighted
// hemisphere mappings at a point whose polar angle has cosine cosTheta.
func HemisphereCosinePDF[T fmath.Float](radius, cosTheta T) T {
	return cosTheta * T(fmath.InvPi) / (radius * radius)
}

// HemisphereCosinePDFAngular is the density of the cosine-weighted
// mappings with respect to the polar and azimuthal angles, that is
// HemisphereCosinePDF times the sin(theta) Jacobian.
func HemisphereCosinePDFAngular[T fmath.Float](radius, cosTheta T) T {
	sinTheta := fmath.Sqrt(max(0, 1-cosTheta*cosTheta))
	return sinTheta * HemisphereCosinePDF(radius, cosTheta)
}

func lift[T fmath.Float](radius, dx, dy T) (x, y, z T) {
	return radius * dx, radius * dy, radius * fmath.Sqrt(max(0, 1-dx*dx-dy*dy))
}
