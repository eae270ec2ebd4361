package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Tree node styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateLight).
			Bold(true)

	NodeStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	GroupStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	MatchStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Underline(true)
)

// Check box characters
const (
	CheckedBox   = "[x]"
	UncheckedBox = "[ ]"
)

// Panel styles
var (
	ControlPanelStyle = lipgloss.NewStyle().
				Padding(1, 2)

	TreePanelStyle = lipgloss.NewStyle().
			Padding(1, 2)

	InspectorPanelStyle = lipgloss.NewStyle().
				Padding(1, 2)
)
