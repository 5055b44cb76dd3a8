package treeview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spacing holds the ambient layout metrics.
type Spacing struct {
	// ItemSpacing is the gap between widgets. Rows are padded vertically by
	// half of ItemSpacing.Y on each side.
	ItemSpacing Vec2 `yaml:"item_spacing"`
	// Indent is the horizontal offset per tree level.
	Indent float64 `yaml:"indent"`
	// IconWidth is the side of the square reserved for closers and icons.
	IconWidth float64 `yaml:"icon_width"`
	// IconWidthInner is the side of the glyph drawn inside that square.
	IconWidthInner float64 `yaml:"icon_width_inner"`
	// InteractHeight is the minimum height of a row's content.
	InteractHeight float64 `yaml:"interact_height"`
	// MenuMargin is the padding around popup menus.
	MenuMargin float64 `yaml:"menu_margin"`
}

// WidgetVisuals is the look of a widget in one interaction state.
type WidgetVisuals struct {
	WeakBgFill Color   `yaml:"weak_bg_fill"`
	BgStroke   Stroke  `yaml:"bg_stroke"`
	FgStroke   Stroke  `yaml:"fg_stroke"`
	Rounding   float64 `yaml:"rounding"`
	// Expansion grows the widget's painted shape, e.g. on hover.
	Expansion float64 `yaml:"expansion"`
}

// Visuals holds the theme colors.
type Visuals struct {
	Noninteractive WidgetVisuals `yaml:"noninteractive"`
	Inactive       WidgetVisuals `yaml:"inactive"`
	Hovered        WidgetVisuals `yaml:"hovered"`
	Active         WidgetVisuals `yaml:"active"`
	SelectionBg    Color         `yaml:"selection_bg"`
	TextColor      Color         `yaml:"text_color"`
	MenuFill       Color         `yaml:"menu_fill"`
}

// Style bundles spacing and visuals.
type Style struct {
	Spacing Spacing `yaml:"spacing"`
	Visuals Visuals `yaml:"visuals"`
}

func gray(v float64) Color { return Color{v, v, v, 1} }

// DefaultStyle returns the dark theme.
func DefaultStyle() Style {
	return Style{
		Spacing: Spacing{
			ItemSpacing:    Vec2{8, 3},
			Indent:         18,
			IconWidth:      14,
			IconWidthInner: 8,
			InteractHeight: 18,
			MenuMargin:     6,
		},
		Visuals: Visuals{
			Noninteractive: WidgetVisuals{
				WeakBgFill: gray(0.106),
				BgStroke:   Stroke{Width: 1, Color: gray(0.235)},
				FgStroke:   Stroke{Width: 1, Color: gray(0.549)},
				Rounding:   2,
			},
			Inactive: WidgetVisuals{
				WeakBgFill: gray(0.235),
				BgStroke:   Stroke{Width: 0},
				FgStroke:   Stroke{Width: 1, Color: gray(0.706)},
				Rounding:   2,
			},
			Hovered: WidgetVisuals{
				WeakBgFill: gray(0.275),
				BgStroke:   Stroke{Width: 1, Color: gray(0.588)},
				FgStroke:   Stroke{Width: 1.5, Color: gray(0.941)},
				Rounding:   3,
				Expansion:  1,
			},
			Active: WidgetVisuals{
				WeakBgFill: gray(0.216),
				BgStroke:   Stroke{Width: 1, Color: ColorWhite},
				FgStroke:   Stroke{Width: 2, Color: ColorWhite},
				Rounding:   2,
				Expansion:  1,
			},
			SelectionBg: Color{0, 0.361, 0.502, 1},
			TextColor:   gray(0.706),
			MenuFill:    gray(0.106),
		},
	}
}

// Validate reports metrics that would break layout.
func (s Style) Validate() error {
	sp := s.Spacing
	switch {
	case sp.Indent < 0:
		return fmt.Errorf("%w: indent must be >= 0", ErrInvalidSettings)
	case sp.IconWidth <= 0 || sp.IconWidthInner <= 0:
		return fmt.Errorf("%w: icon widths must be > 0", ErrInvalidSettings)
	case sp.ItemSpacing.X < 0 || sp.ItemSpacing.Y < 0:
		return fmt.Errorf("%w: item_spacing must be >= 0", ErrInvalidSettings)
	case sp.InteractHeight < 0:
		return fmt.Errorf("%w: interact_height must be >= 0", ErrInvalidSettings)
	}
	return nil
}

// ParseStyle decodes a YAML theme on top of DefaultStyle, so a file only
// needs the fields it changes.
func ParseStyle(data []byte) (Style, error) {
	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parsing style: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// LoadStyle reads and decodes a YAML theme file.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style: %w", err)
	}
	return ParseStyle(data)
}
