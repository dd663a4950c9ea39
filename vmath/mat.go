package vmath

import "math"

// Mat3 is a 3x3 column-major matrix: E[column][row].
type Mat3 struct {
	E [3][3]float64
}

// Mat4 is a 4x4 column-major matrix: E[column][row].
type Mat4 struct {
	E [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	m.E[0][0] = 1
	m.E[1][1] = 1
	m.E[2][2] = 1
	m.E[3][3] = 1
	return m
}

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.E[k][row] * b.E[col][k]
			}
			out.E[col][row] = sum
		}
	}
	return out
}

// Scale returns a with every element multiplied by x.
func (a Mat4) Scale(x float64) Mat4 {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			a.E[col][row] *= x
		}
	}
	return a
}

// Transpose returns a transposed.
func (a Mat4) Transpose() Mat4 {
	for col := 0; col < 4; col++ {
		for row := col + 1; row < 4; row++ {
			a.E[col][row], a.E[row][col] = a.E[row][col], a.E[col][row]
		}
	}
	return a
}

// MulVec returns the matrix-vector product a * v.
func (a Mat3) MulVec(v Vec3) Vec3 {
	in := [3]float64{v.X, v.Y, v.Z}
	var out [3]float64
	for row := 0; row < 3; row++ {
		sum := 0.0
		for col := 0; col < 3; col++ {
			sum += a.E[col][row] * in[col]
		}
		out[row] = sum
	}
	return Vec3{out[0], out[1], out[2]}
}

// Transpose returns a transposed.
func (a Mat3) Transpose() Mat3 {
	for col := 0; col < 3; col++ {
		for row := col + 1; row < 3; row++ {
			a.E[col][row], a.E[row][col] = a.E[row][col], a.E[col][row]
		}
	}
	return a
}

// Translate returns m translated by t.
func (m Mat4) Translate(t Vec3) Mat4 {
	translate := Identity()
	translate.E[3][0] = t.X
	translate.E[3][1] = t.Y
	translate.E[3][2] = t.Z
	return m.Mul(translate)
}

// Rotate returns m rotated by angle radians around axis.
func (m Mat4) Rotate(angle float64, axis Vec3) Mat4 {
	sinTheta := math.Sin(angle)
	cosTheta := math.Cos(angle)
	cosValue := 1.0 - cosTheta

	axis = axis.Normalized()
	rotate := Identity()

	rotate.E[0][0] = axis.X*axis.X*cosValue + cosTheta
	rotate.E[0][1] = axis.X*axis.Y*cosValue + axis.Z*sinTheta
	rotate.E[0][2] = axis.X*axis.Z*cosValue - axis.Y*sinTheta

	rotate.E[1][0] = axis.Y*axis.X*cosValue - axis.Z*sinTheta
	rotate.E[1][1] = axis.Y*axis.Y*cosValue + cosTheta
	rotate.E[1][2] = axis.Y*axis.Z*cosValue + axis.X*sinTheta

	rotate.E[2][0] = axis.Z*axis.X*cosValue + axis.Y*sinTheta
	rotate.E[2][1] = axis.Z*axis.Y*cosValue - axis.X*sinTheta
	rotate.E[2][2] = axis.Z*axis.Z*cosValue + cosTheta

	return m.Mul(rotate)
}

// Perspective builds a perspective projection. fovy is the vertical
// field of view in radians, aspect is width over height, zNear and zFar
// are the positive clip plane distances.
func Perspective(fovy, aspect, zNear, zFar float64) Mat4 {
	f := 1.0 / math.Tan(fovy*0.5)
	fn := 1.0 / (zNear - zFar)
	var out Mat4
	out.E[0][0] = f / aspect
	out.E[1][1] = f
	out.E[2][2] = (zNear + zFar) * fn
	out.E[2][3] = -1
	out.E[3][2] = 2 * zNear * zFar * fn
	return out
}

// LookAt builds a view matrix for an eye looking at center. up must not
// be parallel to the line of sight.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	var out Mat4
	out.E[0][0] = s.X
	out.E[0][1] = u.X
	out.E[0][2] = -f.X

	out.E[1][0] = s.Y
	out.E[1][1] = u.Y
	out.E[1][2] = -f.Y

	out.E[2][0] = s.Z
	out.E[2][1] = u.Z
	out.E[2][2] = -f.Z

	out.E[3][0] = -s.Dot(eye)
	out.E[3][1] = -u.Dot(eye)
	out.E[3][2] = f.Dot(eye)
	out.E[3][3] = 1
	return out
}
