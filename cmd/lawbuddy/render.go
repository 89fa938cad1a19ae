package main

import (
	"strings"

	"github.com/a-h/lawbuddy/app"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Foreground  = lipgloss.Color("#f8f8f2")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Green       = lipgloss.Color("#50fa7b")
	Orange      = lipgloss.Color("#ffb86c")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
	Yellow      = lipgloss.Color("#f1fa8c")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(Comment).Italic(true)
	headingStyle  = lipgloss.NewStyle().Foreground(Purple).Bold(true).MarginTop(1)
	answerStyle   = lipgloss.NewStyle().Foreground(Foreground).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(Purple).PaddingLeft(1)
	metricStyle   = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	sourceStyle   = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	contextStyle  = lipgloss.NewStyle().Foreground(Comment)
	jsonStyle     = lipgloss.NewStyle().Foreground(Cyan)
	disclaimStyle = lipgloss.NewStyle().Foreground(Comment).Italic(true)
)

var levelToStyle = map[app.Level]lipgloss.Style{
	app.LevelInfo:    lipgloss.NewStyle().Foreground(Cyan),
	app.LevelSuccess: lipgloss.NewStyle().Foreground(Green),
	app.LevelError:   lipgloss.NewStyle().Foreground(Red).Bold(true),
}

var levelToIcon = map[app.Level]string{
	app.LevelInfo:    "ℹ️",
	app.LevelSuccess: "✅",
	app.LevelError:   "❌",
}

func formatNotice(n app.Notice, width int) string {
	style, ok := levelToStyle[n.Level]
	if !ok {
		return n.Text
	}
	icon, ok := levelToIcon[n.Level]
	if !ok {
		icon = "🤷"
	}
	return style.Render(wordwrap.String(icon+" "+n.Text, width))
}

// renderPanel renders the outcome of an action, wrapped to width.
func renderPanel(p app.Panel, width int) string {
	if width <= 0 {
		width = 80
	}
	var sb strings.Builder
	for _, n := range p.Notices {
		sb.WriteString(formatNotice(n, width))
		sb.WriteString("\n")
	}
	if p.Answer != nil {
		renderAnswer(&sb, *p.Answer, width)
	}
	if p.SystemInfo != "" {
		sb.WriteString(headingStyle.Render("📈 System Info"))
		sb.WriteString("\n")
		sb.WriteString(jsonStyle.Render(p.SystemInfo))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderAnswer(sb *strings.Builder, a app.AnswerView, width int) {
	sb.WriteString(headingStyle.Render("📝 Legal Analysis"))
	sb.WriteString("\n")
	sb.WriteString(answerStyle.Render(wordwrap.String(a.Answer, width-2)))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Confidence Score: "))
	sb.WriteString(metricStyle.Render(a.Confidence))
	sb.WriteString("\n")

	sb.WriteString(headingStyle.Render("📚 Legal Sources"))
	sb.WriteString("\n")
	if a.Placeholder != "" {
		sb.WriteString(formatNotice(app.Notice{Level: app.LevelInfo, Text: a.Placeholder}, width))
		sb.WriteString("\n")
	}
	for _, s := range a.Sources {
		sb.WriteString(sourceStyle.Render("▸ " + s.Title))
		sb.WriteString("\n")
		sb.WriteString(wordwrap.String(labelStyle.Render("Preview: ")+s.Preview, width))
		sb.WriteString("\n")
		if s.Page != "" {
			sb.WriteString(labelStyle.Render("Page: ") + s.Page)
			sb.WriteString("\n")
		}
		sb.WriteString(labelStyle.Render("Relevance Score: ") + s.Score)
		sb.WriteString("\n")
	}

	if a.Context != "" {
		sb.WriteString(headingStyle.Render("📖 Full Context"))
		sb.WriteString("\n")
		sb.WriteString(contextStyle.Render(wordwrap.String(a.Context, width)))
		sb.WriteString("\n")
	}
}

func renderDisclaimer(width int) string {
	return disclaimStyle.Render(wordwrap.String("⚠️ "+app.Disclaimer, width))
}
