package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flexstack/pkg/pipeline"
	"github.com/matzehuels/flexstack/pkg/render"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// widthStep and heightStep are the container size increments per keypress.
const (
	widthStep  = 10.0
	heightStep = 2.0
)

// previewCommand creates the preview command for interactive resizing.
func (c *CLI) previewCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [stack.toml]",
		Short: "Interactively resize the container in the terminal",
		Long: `Interactively resize the container in the terminal.

The preview command resolves the stackfile and draws it as ASCII art.
Arrow keys grow and shrink the proposed container size; the layout is
re-resolved on every change, so you can watch spacers, fractions, and
growable items redistribute space live.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stackfile = args[0]
			return c.runPreview(opts)
		},
	}

	addResolveFlags(cmd, &opts)

	return cmd
}

// runPreview parses the document and starts the interactive program.
func (c *CLI) runPreview(opts pipeline.Options) error {
	opts.Logger = c.Logger

	doc, err := pipeline.Parse(opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.Stackfile, err)
	}

	model, err := newPreviewModel(doc)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model).Run()
	return err
}

// =============================================================================
// PreviewModel - Interactive container resizing
// =============================================================================

// PreviewModel is the bubbletea model for the preview command.
type PreviewModel struct {
	Doc    stackfile.Document
	Canvas string
	Layout stackfile.Layout
	Err    error
}

// newPreviewModel resolves the document once to seed the view.
func newPreviewModel(doc stackfile.Document) (PreviewModel, error) {
	m := PreviewModel{Doc: doc}
	if m.Doc.Width == 0 {
		m.Doc.Width = 60
	}
	if m.Doc.Height == 0 {
		m.Doc.Height = 8
	}
	if err := m.resolve(); err != nil {
		return PreviewModel{}, err
	}
	return m, nil
}

// resolve recomputes the layout and ASCII canvas for the current size.
func (m *PreviewModel) resolve() error {
	res, err := pipeline.Resolve(m.Doc)
	if err != nil {
		return err
	}
	m.Layout = res.Layout
	m.Canvas = render.ASCII(res.Layout, render.WithASCIISpacers())
	return nil
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right":
		m.Doc.Width += widthStep
	case "left":
		if m.Doc.Width > widthStep {
			m.Doc.Width -= widthStep
		}
	case "up":
		m.Doc.Height += heightStep
	case "down":
		if m.Doc.Height > heightStep {
			m.Doc.Height -= heightStep
		}
	default:
		return m, nil
	}

	m.Err = m.resolve()
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Stack Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ width  ↑/↓ height  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleWarning.Render("resolve error: " + m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.Canvas)
	b.WriteString("\n")

	status := fmt.Sprintf("proposal %.0f×%.0f · resolved %.0f×%.0f · %d items",
		m.Doc.Width, m.Doc.Height,
		m.Layout.Width, m.Layout.Height,
		len(m.Layout.Items))
	if m.Layout.Overflow {
		status += " · " + lipgloss.NewStyle().Foreground(colorYellow).Render("overflow")
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")

	return b.String()
}
