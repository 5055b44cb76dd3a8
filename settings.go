package treeview

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned (wrapped) when a settings or style file
// holds values the tree view cannot use.
var ErrInvalidSettings = errors.New("invalid settings")

// VLineStyle selects how connector lines between a directory and its
// children are drawn.
type VLineStyle uint8

const (
	VLineNone  VLineStyle = iota // no connector lines
	VLineVLine                   // one vertical line below the closer
	VLineHook                    // vertical line plus a tick to every child
)

var vlineNames = [...]string{"none", "vline", "hook"}

func (s VLineStyle) String() string {
	if int(s) < len(vlineNames) {
		return vlineNames[s]
	}
	return fmt.Sprintf("VLineStyle(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s VLineStyle) MarshalText() ([]byte, error) {
	if int(s) >= len(vlineNames) {
		return nil, fmt.Errorf("%w: vline style %d", ErrInvalidSettings, uint8(s))
	}
	return []byte(vlineNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *VLineStyle) UnmarshalText(text []byte) error {
	for i, name := range vlineNames {
		if name == string(text) {
			*s = VLineStyle(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown vline style %q", ErrInvalidSettings, text)
}

// RowLayout controls which of the closer and icon slots are reserved even
// when a row has nothing to draw in them, so sibling labels line up.
type RowLayout uint8

const (
	// RowCompact reserves a closer slot for directories only and never
	// draws icons.
	RowCompact RowLayout = iota
	// RowCompactAlignedLabels reserves the closer slot on directories and
	// the icon slot on leaves, so leaf labels line up with directory labels.
	RowCompactAlignedLabels
	// RowAlignedIcons reserves the closer slot on every row.
	RowAlignedIcons
	// RowAlignedIconsAndLabels reserves both slots on every row.
	RowAlignedIconsAndLabels
)

var rowLayoutNames = [...]string{"compact", "compact_aligned_labels", "aligned_icons", "aligned_icons_and_labels"}

func (l RowLayout) String() string {
	if int(l) < len(rowLayoutNames) {
		return rowLayoutNames[l]
	}
	return fmt.Sprintf("RowLayout(%d)", uint8(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l RowLayout) MarshalText() ([]byte, error) {
	if int(l) >= len(rowLayoutNames) {
		return nil, fmt.Errorf("%w: row layout %d", ErrInvalidSettings, uint8(l))
	}
	return []byte(rowLayoutNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *RowLayout) UnmarshalText(text []byte) error {
	for i, name := range rowLayoutNames {
		if name == string(text) {
			*l = RowLayout(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown row layout %q", ErrInvalidSettings, text)
}

// slots returns (reserveCloser, drawCloser, reserveIcon, drawIcon) for a row.
func (l RowLayout) slots(isDir, hasIcon bool) (bool, bool, bool, bool) {
	switch l {
	case RowCompactAlignedLabels:
		return isDir, isDir, !isDir, !isDir && hasIcon
	case RowAlignedIcons:
		return true, isDir, hasIcon, hasIcon
	case RowAlignedIconsAndLabels:
		return true, isDir, true, hasIcon
	default:
		return isDir, isDir, false, false
	}
}

// Settings configures a tree view. The zero value is usable: ambient indent,
// no connector lines, compact rows.
type Settings struct {
	// OverrideIndent replaces Style.Spacing.Indent when set.
	OverrideIndent *float64   `yaml:"override_indent,omitempty"`
	VLineStyle     VLineStyle `yaml:"vline_style"`
	RowLayout      RowLayout  `yaml:"row_layout"`
}

// Indent returns the indent unit: the override if set, else ambient.
func (s Settings) Indent(ambient float64) float64 {
	if s.OverrideIndent != nil {
		return *s.OverrideIndent
	}
	return ambient
}

// Validate reports values the tree view cannot render.
func (s Settings) Validate() error {
	if s.OverrideIndent != nil && (*s.OverrideIndent < 0 || math.IsNaN(*s.OverrideIndent)) {
		return fmt.Errorf("%w: override_indent must be >= 0, got %v", ErrInvalidSettings, *s.OverrideIndent)
	}
	if int(s.VLineStyle) >= len(vlineNames) {
		return fmt.Errorf("%w: vline style %d", ErrInvalidSettings, uint8(s.VLineStyle))
	}
	if int(s.RowLayout) >= len(rowLayoutNames) {
		return fmt.Errorf("%w: row layout %d", ErrInvalidSettings, uint8(s.RowLayout))
	}
	return nil
}

// ParseSettings decodes YAML settings and validates them.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing tree view settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads and decodes a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return ParseSettings(data)
}

// MarshalSettings encodes s as YAML.
func MarshalSettings(s Settings) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return yaml.Marshal(s)
}
