package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/triage/internal/chart"
)

// Dashboard color palette - electric synthwave, shared with chart bars.
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
	ColorGraph     = lipgloss.Color("#00FFFF") // Neon cyan
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorAccentDim).
			Bold(true).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	KeyHintStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	DisabledHintStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Strikethrough(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(chart.ColorCritical).
			Bold(true)

	StaleStyle = lipgloss.NewStyle().
			Foreground(chart.ColorWarning)

	toastBaseStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)
)

// Toast colors by notification kind.
var (
	ToastInfoColor    = ColorGraph
	ToastSuccessColor = chart.ColorHealthy
	ToastErrorColor   = chart.ColorCritical
)
