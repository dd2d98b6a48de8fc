package smoke

// Vertex is one corner of a textured, colored quad in the trail's local
// space (after the draw transform has been applied).
type Vertex struct {
	Pos   Point
	UV    Point
	Color RGBA
}

// initialBatchCapacity sizes a fresh batch to hold on the order of a
// thousand quads without reallocating. The slice is grown only on
// exhaustion.
const initialBatchCapacity = 4096

// Batch is a reusable vertex buffer. Quads are pushed as four vertices
// in top-left, top-right, bottom-left, bottom-right order. Reset keeps
// the underlying capacity so a batch can be reused across frames
// without reallocating.
type Batch struct {
	vertices []Vertex
}

// NewBatch creates a batch pre-sized for typical trail workloads.
func NewBatch() *Batch {
	return &Batch{
		vertices: make([]Vertex, 0, initialBatchCapacity),
	}
}

// Reset empties the batch while keeping its capacity.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
}

// Len returns the number of vertices in the batch.
func (b *Batch) Len() int {
	return len(b.vertices)
}

// QuadCount returns the number of complete quads in the batch.
func (b *Batch) QuadCount() int {
	return len(b.vertices) / 4
}

// Vertices returns the batch contents. The slice is valid until the
// next Reset or push.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// PushQuad appends one quad as four vertices.
func (b *Batch) PushQuad(tl, tr, bl, br Vertex) {
	if len(b.vertices)+4 > cap(b.vertices) {
		Logger().Debug("smoke: batch growing",
			"len", len(b.vertices), "cap", cap(b.vertices))
	}
	b.vertices = append(b.vertices, tl, tr, bl, br)
}

// Quad returns the i-th quad's four vertices in push order.
func (b *Batch) Quad(i int) (tl, tr, bl, br Vertex) {
	base := i * 4
	return b.vertices[base], b.vertices[base+1], b.vertices[base+2], b.vertices[base+3]
}
