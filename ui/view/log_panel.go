package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// LogPanel displays the detection and selection diagnostic trail.
type LogPanel interface {
	Append(lines []string)
	Clear()
}

type logPanel struct {
	text *TextWidget
}

// NewLogPanel creates the log text widget spanning all columns of the given
// row.
func NewLogPanel(row int) LogPanel {
	w := Text(Height(8), Width(80))
	Grid(w, Row(row), Column(0), Columnspan(5), Sticky("nswe"), Padx("0.4m"), Pady("0.4m"))
	return &logPanel{text: w}
}

func (v *logPanel) Append(lines []string) {
	if v.text == nil || len(lines) == 0 {
		return
	}
	// Widget may be destroyed during shutdown; guard like other Tk callbacks.
	defer func() { _ = recover() }()
	v.text.Insert(END, strings.Join(lines, "\n")+"\n")
	v.text.See(END)
}

func (v *logPanel) Clear() {
	if v.text == nil {
		return
	}
	defer func() { _ = recover() }()
	v.text.Delete("1.0", END)
}
