package render

// quadVertices is a full-viewport quad in clip space, two floats per vertex.
var quadVertices = []float32{
	-1, -1,
	-1, 1,
	1, 1,
	1, -1,
}

// quadIndices lists two counter-clockwise triangles so back-face culling keeps them.
var quadIndices = []uint16{
	2, 1, 0,
	3, 2, 0,
}
