package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hnimtadd/gridsel"
	"github.com/hnimtadd/gridsel/selection/export"
	"github.com/hnimtadd/gridsel/selection/ref"
	"github.com/hnimtadd/gridsel/selection/render"
)

const scriptHelp = `Scripts hold one intent per line:

  row 3          select row 3 (or a band: row 2:4)
  column B       select column B (or a band: column B:D)
  rect A1:C3     select a rectangle anchored at A1
  select A1,3:4  select a list of references
  all            select the whole grid
  toggle B2      flip one cell
  extend D5      resize the last area to reach D5
  remove 2:2     deselect rows 2:2 from row areas (takes a list too)
  clear          drop the selection
  drag A1        start a drag; follow with "to C3" and "end" or "cancel"

Lines starting with # are comments.`

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:          "gridsel",
		Short:        "Replay grid selection gestures",
		Long:         "gridsel replays a selection gesture script against a grid.\n\n" + scriptHelp,
		SilenceUsage: true,
	}
	addConfigFlags(root, v)
	addRender(root, v)
	addExport(root, v)
	return root
}

// replay builds a grid from the config and runs the script named by args,
// or standard input when there is none or it is "-".
func replay(cmd *cobra.Command, v *viper.Viper, args []string) (*gridsel.Grid, config, error) {
	c, err := loadConfig(cmd, v)
	if err != nil {
		return nil, config{}, err
	}
	g := gridsel.New(gridsel.Options{
		Rows:   c.Rows,
		Cols:   c.Cols,
		Logger: c.logger(cmd.ErrOrStderr()),
	})

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, config{}, err
		}
		defer f.Close()
		in = f
	}
	if err := g.Run(in); err != nil {
		return nil, config{}, err
	}
	return g, c, nil
}

type renderOptions struct {
	Plain bool
	Find  string
}

func addRender(topLevel *cobra.Command, v *viper.Viper) {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [script]",
		Short: "Print the selection as a grid of # and .",
		Example: `
gridsel render gestures.txt
echo "rect A1:C3" | gridsel render --rows 5 --cols 5
gridsel render gestures.txt --find 'type == "row"'
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, c, err := replay(cmd, v, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.Find != "" {
				found, err := g.Find(o.Find)
				if err != nil {
					return err
				}
				for _, a := range found {
					fmt.Fprintln(out, ref.Format(a))
				}
				return nil
			}
			fmt.Fprintln(out, render.PlainString(g.Selection(), render.Options{
				Rows:   c.Rows,
				Cols:   c.Cols,
				Header: !o.Plain,
			}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&o.Plain, "plain", false,
		"Omit the row and column headers.")
	cmd.Flags().StringVar(&o.Find, "find", "",
		"List the areas matching an expression over type, x, y, width, height and size instead.")
	topLevel.AddCommand(cmd)
}

type exportOptions struct {
	Output string
	Sheet  string
	Color  string
}

func addExport(topLevel *cobra.Command, v *viper.Viper) {
	o := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export [script]",
		Short: "Write the selection to an xlsx workbook",
		Example: `
gridsel export gestures.txt -o selection.xlsx --sheet Data
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasSuffix(o.Output, ".xlsx") {
				return fmt.Errorf("output %q must end in .xlsx", o.Output)
			}
			g, c, err := replay(cmd, v, args)
			if err != nil {
				return err
			}
			f, err := os.Create(o.Output)
			if err != nil {
				return err
			}
			if err := export.WriteWorkbook(f, g.Areas(), export.Options{
				Sheet: o.Sheet,
				Rows:  c.Rows,
				Cols:  c.Cols,
				Color: o.Color,
			}); err != nil {
				f.Close()
				return fmt.Errorf("export failed: %w", err)
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", "selection.xlsx",
		"Workbook to write.")
	cmd.Flags().StringVar(&o.Sheet, "sheet", export.DefaultSheet,
		"Sheet name.")
	cmd.Flags().StringVar(&o.Color, "color", export.DefaultColor,
		"Fill color of selected cells as RRGGBB.")
	topLevel.AddCommand(cmd)
}
