package spell

import (
	"fmt"
	"strconv"
)

// Boolean cells render as these labels; code 0 is "No", code 1 is "Yes"
const (
	LabelNo  = "No"
	LabelYes = "Yes"
)

// LevelLabel renders a level code
func LevelLabel(level int) string {
	if level < 0 || level > MaxLevel {
		return ""
	}
	return strconv.Itoa(level)
}

// BooleanLabel renders a boolean code
func BooleanLabel(code int) string {
	switch code {
	case 0:
		return LabelNo
	case 1:
		return LabelYes
	default:
		return ""
	}
}

// FormatBoolean renders a boolean cell
func FormatBoolean(v bool) string {
	if v {
		return LabelYes
	}
	return LabelNo
}

// AreaShapeLabel renders the shape of an area, "" when the spell has none
func AreaShapeLabel(a *Area) string {
	if a == nil {
		return ""
	}
	return a.Shape.String()
}

// FormatArea renders an area cell such as "20 ft. Sphere"
func FormatArea(a *Area) string {
	shape := AreaShapeLabel(a)
	if shape == "" {
		return ""
	}
	if a.Size <= 0 {
		return shape
	}
	return fmt.Sprintf("%d ft. %s", a.Size, shape)
}

// CompareArea orders spells without an area first, then by shape, then size
func CompareArea(a, b *Area) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Shape != b.Shape:
		return int(a.Shape) - int(b.Shape)
	default:
		return a.Size - b.Size
	}
}

// SourceTooltip renders the book title and page
func SourceTooltip(s *Spell) string {
	title := s.Source.Title()
	if title == "" || s.Page <= 0 {
		return title
	}
	return fmt.Sprintf("%s, p. %d", title, s.Page)
}
