package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#4db6ac")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	GrayDark = lipgloss.Color("#2f3030")
	White    = lipgloss.Color("#cccccc")
	Whiter   = lipgloss.Color("#aaaaaa")
	Red      = lipgloss.Color("#B8383B")

	ContainerBorder      = lipgloss.NormalBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Accent)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	PaneTitle       = lipgloss.NewStyle().Bold(true).Foreground(White)
	PaneTitleActive = lipgloss.NewStyle().Bold(true).Foreground(Accent)

	SliderTrack  = lipgloss.NewStyle().Foreground(Gray)
	SliderFilled = lipgloss.NewStyle().Foreground(Accent)
	SliderThumb  = lipgloss.NewStyle().Foreground(White).Bold(true)
	SliderLabel  = lipgloss.NewStyle().Foreground(Whiter)

	ColorbarLabel = lipgloss.NewStyle().Foreground(Whiter)

	StatusSlice   = lipgloss.NewStyle().Foreground(Accent).Background(Black).PaddingRight(2)
	StatusCursor  = lipgloss.NewStyle().Foreground(White).Background(Black).PaddingRight(2)
	StatusSize    = lipgloss.NewStyle().Foreground(Whiter).Background(Black).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Gray).Background(Black).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(White).Background(Black)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Background(Black)
	StatusHelp    = lipgloss.NewStyle().Foreground(Whiter).Background(Black).PaddingRight(2)

	HelpTitle   = lipgloss.NewStyle().Bold(true).Foreground(Accent).PaddingBottom(1)
	HelpKey     = lipgloss.NewStyle().Foreground(Accent).Width(16)
	HelpDesc    = lipgloss.NewStyle().Foreground(White)
	HelpSection = lipgloss.NewStyle().Bold(true).Foreground(Whiter).PaddingTop(1)
)
