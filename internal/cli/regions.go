package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// regionsCommand creates the regions command.
func (c *CLI) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List named regions for --region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(regionsTable())
			printNextStep("Render one", "mandelzoom render --region seahorse")
			return nil
		},
	}
}

// regionsTable renders the landmarks as a table sorted by name.
func regionsTable() string {
	var rows [][]string
	for _, name := range plane.LandmarkNames() {
		lm := plane.Landmarks[name]
		cx, cy := lm.Window.Center()
		rows = append(rows, []string{
			name,
			lm.Description,
			fmt.Sprintf("%s%+.6gi", strconv.FormatFloat(cx, 'g', 6, 64), cy),
			strconv.FormatFloat(lm.Window.Width(), 'g', 3, 64),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Region", "Description", "Center", "Width").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		})
	return t.Render()
}
