package lines

// Stride is the number of float32 values one instance occupies on the GPU:
// join, position (2), thickness, direction (2), color (3)
const Stride = 9

// StrideBytes is the instance size in bytes
const StrideBytes = Stride * 4

// Attribute describes where an instance field lives inside the stride
type Attribute struct {
	Name   string
	Size   int32 // float components
	Offset int   // in floats
}

// Attributes lists the per-instance vertex attributes in shader location
// order, starting at location 1 (location 0 is the quad template)
var Attributes = []Attribute{
	{Name: "join", Size: 1, Offset: 0},
	{Name: "inst_pos", Size: 2, Offset: 1},
	{Name: "thickness", Size: 1, Offset: 3},
	{Name: "dir", Size: 2, Offset: 4},
	{Name: "color0", Size: 3, Offset: 6},
}

// AppendFloats encodes instances in GPU layout and appends them to dst
func AppendFloats(dst []float32, instances []Instance) []float32 {
	for _, in := range instances {
		dst = append(dst,
			float32(in.Join),
			in.Position.X(), in.Position.Y(),
			in.Thickness,
			in.Direction.X(), in.Direction.Y(),
			in.Color.R, in.Color.G, in.Color.B,
		)
	}
	return dst
}

// DecodeFloats is the inverse of AppendFloats. Trailing floats that do not
// fill a whole stride are ignored.
func DecodeFloats(data []float32) []Instance {
	out := make([]Instance, 0, len(data)/Stride)
	for i := 0; i+Stride <= len(data); i += Stride {
		f := data[i : i+Stride]
		in := Instance{
			Join:      Join(f[0]),
			Thickness: f[3],
			Color:     Color{R: f[6], G: f[7], B: f[8]},
		}
		in.Position[0], in.Position[1] = f[1], f[2]
		in.Direction[0], in.Direction[1] = f[4], f[5]
		out = append(out, in)
	}
	return out
}
