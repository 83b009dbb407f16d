package gridsel

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/coordinate"
	"github.com/hnimtadd/gridsel/selection/ref"
	"github.com/hnimtadd/gridsel/selection/utils"
)

// Kind names a user intent the grid reacts to.
type Kind uint8

const (
	KindSelect Kind = iota
	KindSelectAll
	KindToggle
	KindExtend
	KindRemove
	KindClear
	KindBeginDrag
	KindDragTo
	KindEndDrag
	KindCancelDrag
)

// Script verbs, in Kind order. "row", "column" and "rect" all select.
var verbs = [...]string{
	KindSelect:     "select",
	KindSelectAll:  "all",
	KindToggle:     "toggle",
	KindExtend:     "extend",
	KindRemove:     "remove",
	KindClear:      "clear",
	KindBeginDrag:  "drag",
	KindDragTo:     "to",
	KindEndDrag:    "end",
	KindCancelDrag: "cancel",
}

func (k Kind) String() string {
	if int(k) < len(verbs) {
		return verbs[k]
	}
	return "unknown"
}

// Intent is one selection gesture. Areas is used by KindSelect and
// KindRemove, which accept several areas, and by KindBeginDrag, which takes
// exactly one. Cell is used by KindToggle, KindExtend and KindDragTo.
type Intent struct {
	Kind  Kind
	Areas []area.Area
	Cell  coordinate.Cell
}

func (in Intent) String() string {
	switch in.Kind {
	case KindSelect, KindRemove, KindBeginDrag:
		refs := make([]string, len(in.Areas))
		for i, a := range in.Areas {
			refs[i] = ref.Format(a)
		}
		return in.Kind.String() + " " + strings.Join(refs, ",")
	case KindToggle, KindExtend, KindDragTo:
		return in.Kind.String() + " " + ref.CellName(in.Cell.X, in.Cell.Y)
	default:
		return in.Kind.String()
	}
}

// Apply dispatches in to the matching Grid method. Areas of a list are
// applied in order and the first failure stops the rest.
func (g *Grid) Apply(in Intent) error {
	switch in.Kind {
	case KindSelect:
		return each(in.Areas, g.Select)
	case KindSelectAll:
		return g.SelectAll()
	case KindToggle:
		return g.ToggleCell(in.Cell.X, in.Cell.Y)
	case KindExtend:
		return g.ExtendTo(in.Cell.X, in.Cell.Y)
	case KindRemove:
		return each(in.Areas, g.Remove)
	case KindClear:
		g.Clear()
	case KindBeginDrag:
		utils.Assert(len(in.Areas) == 1, "drag needs exactly one area")
		return g.BeginDrag(in.Areas[0])
	case KindDragTo:
		return g.DragTo(in.Cell.X, in.Cell.Y)
	case KindEndDrag:
		return g.EndDrag()
	case KindCancelDrag:
		g.CancelDrag()
	default:
		utils.Unreachable("intent kind", in.Kind)
	}
	return nil
}

func each(areas []area.Area, apply func(area.Area) error) error {
	for _, a := range areas {
		if err := apply(a); err != nil {
			return err
		}
	}
	return nil
}

// anyType lets an intent accept a reference of every area type.
const anyType area.Type = -1

func parseErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// ParseIntent reads one script line such as "row 3", "column B:D",
// "rect A1:C3", "select A1:B2,D4", "toggle B2" or "drag A1". References
// use spreadsheet notation, so rows and columns are 1-based and lettered.
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Intent{}, parseErr("empty intent")
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	noArgs := func(k Kind) (Intent, error) {
		if len(args) != 0 {
			return Intent{}, parseErr("%s takes no argument", verb)
		}
		return Intent{Kind: k}, nil
	}
	oneArg := func() (string, error) {
		if len(args) != 1 {
			return "", parseErr("%s takes one reference, got %d", verb, len(args))
		}
		return args[0], nil
	}
	withArea := func(k Kind, want area.Type, text func(string) string) (Intent, error) {
		arg, err := oneArg()
		if err != nil {
			return Intent{}, err
		}
		a, err := ref.Parse(text(arg))
		if err != nil {
			return Intent{}, err
		}
		if want != anyType && a.Type != want {
			return Intent{}, parseErr("%s expects a %s reference, got %q", verb, want, arg)
		}
		return Intent{Kind: k, Areas: []area.Area{a}}, nil
	}
	// "select A1:B2, D4; 7:8" takes a list of references.
	withList := func(k Kind) (Intent, error) {
		if len(args) == 0 {
			return Intent{}, parseErr("%s takes a list of references", verb)
		}
		areas, err := ref.ParseList(strings.Join(args, ""))
		if err != nil {
			return Intent{}, err
		}
		if len(areas) == 0 {
			return Intent{}, parseErr("%s got an empty reference list", verb)
		}
		return Intent{Kind: k, Areas: areas}, nil
	}
	withCell := func(k Kind) (Intent, error) {
		arg, err := oneArg()
		if err != nil {
			return Intent{}, err
		}
		c, err := ref.ParseCell(arg)
		if err != nil {
			return Intent{}, err
		}
		return Intent{Kind: k, Cell: c}, nil
	}
	// "row 3" is short for "row 3:3".
	band := func(s string) string {
		if strings.Contains(s, ":") {
			return s
		}
		return s + ":" + s
	}
	same := func(s string) string { return s }

	switch verb {
	case "row":
		return withArea(KindSelect, area.TypeRow, band)
	case "column", "col":
		return withArea(KindSelect, area.TypeColumn, band)
	case "rect":
		return withArea(KindSelect, area.TypeRectangle, same)
	case "select":
		return withList(KindSelect)
	case "all":
		return noArgs(KindSelectAll)
	case "toggle":
		return withCell(KindToggle)
	case "extend":
		return withCell(KindExtend)
	case "remove":
		return withList(KindRemove)
	case "clear":
		return noArgs(KindClear)
	case "drag":
		return withArea(KindBeginDrag, anyType, same)
	case "to":
		return withCell(KindDragTo)
	case "end":
		return noArgs(KindEndDrag)
	case "cancel":
		return noArgs(KindCancelDrag)
	}
	return Intent{}, parseErr("unknown intent %q", fields[0])
}
