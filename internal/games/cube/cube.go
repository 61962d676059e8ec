package cube

import "math"

// Vec3 is a point in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Rotate turns v about the origin by ax, ay and az radians around the X, Y
// and Z axes, in that order. Each axis rotation reads only the coordinates
// produced by the previous one, so lengths are preserved exactly.
func (v Vec3) Rotate(ax, ay, az float64) Vec3 {
	sin, cos := math.Sincos(ax)
	v.Y, v.Z = cos*v.Y-sin*v.Z, sin*v.Y+cos*v.Z

	sin, cos = math.Sincos(ay)
	v.X, v.Z = cos*v.X-sin*v.Z, sin*v.X+cos*v.Z

	sin, cos = math.Sincos(az)
	v.X, v.Y = cos*v.X-sin*v.Y, sin*v.X+cos*v.Y
	return v
}

// Edge joins two vertices by index.
type Edge struct {
	A, B int
}

// Edges of a cube whose vertices are ordered front face then back face.
var Edges = [12]Edge{
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // front to back
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // back face
}

// Cube is a wireframe cube that spins about its centroid.
type Cube struct {
	Vertices [8]Vec3
	Center   Vec3
}

// NewCube returns an axis-aligned cube spanning [size, 2*size] on each axis.
func NewCube(size float64) Cube {
	lo, hi := size, 2*size
	c := Cube{
		Vertices: [8]Vec3{
			{lo, lo, lo}, {hi, lo, lo}, {hi, hi, lo}, {lo, hi, lo},
			{lo, lo, hi}, {hi, lo, hi}, {hi, hi, hi}, {lo, hi, hi},
		},
	}
	for _, v := range c.Vertices {
		c.Center = c.Center.Add(v)
	}
	n := float64(len(c.Vertices))
	c.Center = Vec3{c.Center.X / n, c.Center.Y / n, c.Center.Z / n}
	return c
}

// Rotate spins every vertex about the centroid.
func (c *Cube) Rotate(ax, ay, az float64) {
	for i, v := range c.Vertices {
		c.Vertices[i] = v.Sub(c.Center).Rotate(ax, ay, az).Add(c.Center)
	}
}

// Radius returns the largest vertex distance from the centroid.
func (c *Cube) Radius() float64 {
	var r float64
	for _, v := range c.Vertices {
		r = max(r, v.Sub(c.Center).Len())
	}
	return r
}
