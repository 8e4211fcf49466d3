package colors

// Index selects one entry of the fixed game palette.
type Index int

const (
	Primary Index = iota
	Background
	Highlight
	Active
	Inactive

	BlackCat
	OrangeCat
	WhiteCat
	TabbyCat
	SilverCat

	Inactive1
	Inactive2
	Inactive3
	Inactive4
	Inactive5
	Inactive6
	Inactive7
	Inactive8
	Inactive9
	Inactive10

	Void

	paletteSize
)

var palette = [paletteSize]uint32{
	Primary:    0xd9dcff,
	Background: 0xadadf0,
	Highlight:  0xc28c94,
	Active:     0xa66670,
	Inactive:   0x575775,

	BlackCat:  0x545454,
	OrangeCat: 0xb36e14,
	WhiteCat:  0xe6e6e6,
	TabbyCat:  0xa38f61,
	SilverCat: 0x999999,

	Inactive1:  0x90a8c3,
	Inactive2:  0x469d89,
	Inactive3:  0xb5c99a,
	Inactive4:  0x00a6fb,
	Inactive5:  0x4cc9f0,
	Inactive6:  0xf4cae0,
	Inactive7:  0xe500a4,
	Inactive8:  0xf20089,
	Inactive9:  0xffffff,
	Inactive10: 0xffccf0,

	Void: 0x000000,
}

// RGB returns the palette entry as an opaque color. Out-of-range indices are white.
func (i Index) RGB() Color {
	if i < 0 || i >= paletteSize {
		return White
	}
	return Hex(palette[i])
}

// Valid reports whether i names a palette entry.
func (i Index) Valid() bool { return i >= 0 && i < paletteSize }

// InactiveN returns the numbered inactive shade used for digits 1..10.
// Anything outside that range maps to Inactive.
func InactiveN(n int) Index {
	if n < 1 || n > 10 {
		return Inactive
	}
	return Inactive1 + Index(n-1)
}
