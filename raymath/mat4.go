package raymath

// Matrix4 holds 16 scalars in row-major order (spec §3): M[row][col]. The
// implicit 4th row is always [0 0 0 1] — TransformPoint relies on that
// rather than storing it, matching the teacher's Mat4 convention
// (mrigankad-gorenderengine's math.Mat4, ported here row-major for the
// spec's own layout rather than mgl64's column-major one, so
// TransformPoint reads as a direct dot-product against each row).
type Matrix4 [4][4]float64

func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Concat multiplies m * other (apply other first, then m).
func (m Matrix4) Concat(other Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// TransformPoint applies the matrix to a point (w=1), treating the 4th row
// as [0 0 0 1] so the result is always a plain Vec3.
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	x := m[0][0]*p[0] + m[0][1]*p[1] + m[0][2]*p[2] + m[0][3]
	y := m[1][0]*p[0] + m[1][1]*p[1] + m[1][2]*p[2] + m[1][3]
	z := m[2][0]*p[0] + m[2][1]*p[1] + m[2][2]*p[2] + m[2][3]
	return Vec3{x, y, z}
}

// TransformDirection applies only the 3x3 rotation/scale block (no
// translation), used for transforming ray directions and normals.
func (m Matrix4) TransformDirection(d Vec3) Vec3 {
	x := m[0][0]*d[0] + m[0][1]*d[1] + m[0][2]*d[2]
	y := m[1][0]*d[0] + m[1][1]*d[1] + m[1][2]*d[2]
	z := m[2][0]*d[0] + m[2][1]*d[1] + m[2][2]*d[2]
	return Vec3{x, y, z}
}

func Translation4(t Vec3) Matrix4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = t[0], t[1], t[2]
	return m
}
