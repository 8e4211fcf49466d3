package gfx

// Fixed attribute slots shared by every sprite shader.
const (
	SlotPosition       = 0
	SlotTexCoord       = 1
	SlotSpritePosition = 2
	SlotSpriteSize     = 3
	SlotSpriteType     = 4
	SlotSpriteColor    = 5
	SlotSpriteAngle    = 6
)

var spriteAttribs = []AttribBinding{
	{Slot: SlotPosition, Name: "vertexPosition"},
	{Slot: SlotTexCoord, Name: "vertexTexCoord"},
	{Slot: SlotSpritePosition, Name: "spritePosition"},
	{Slot: SlotSpriteSize, Name: "spriteSize"},
	{Slot: SlotSpriteType, Name: "spriteType"},
	{Slot: SlotSpriteColor, Name: "spriteColor"},
	{Slot: SlotSpriteAngle, Name: "spriteAngle"},
}

// Quad: pos2 + uv2 per vertex, two triangles.
const (
	quadStride   = 4 * 4
	QuadVertices = 6
)

var quadVertices = []float32{
	//  X,   Y,   U,   V
	0.0, 0.0, 0.0, 0.0,
	0.0, 1.0, 0.0, 1.0,
	1.0, 0.0, 1.0, 0.0,

	1.0, 0.0, 1.0, 0.0,
	0.0, 1.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
}

// Instance: x, y, size, type, r, g, b, a, angle => 9 floats
const (
	InstanceFloats = 9
	instanceStride = InstanceFloats * 4
)
