package grid

// Style is the per-cell text style.
// Carried on the cell but not consulted by the active render path; Draw
// never emits a style command, so Plain and Bold currently render alike.
type Style uint8

const (
	Plain Style = iota
	Bold
)

// VisualElement is the value of one grid cell. Plain data with copy
// semantics; cells never share state.
type VisualElement struct {
	Style      Style
	Background Color
	Foreground Color
	Value      rune
}

// DefaultElement returns the standard blank cell: plain style, black
// background, white foreground, space.
func DefaultElement() VisualElement {
	return VisualElement{
		Style:      Plain,
		Background: Black,
		Foreground: White,
		Value:      ' ',
	}
}
