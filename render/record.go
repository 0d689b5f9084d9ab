package render

import "fmt"

// OpKind identifies a recorded draw operation.
type OpKind int

const (
	OpText OpKind = iota
	OpImage
	OpRect
	OpLine
)

// Op is one recorded draw operation.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	X2    float64
	Y2    float64
	Text  string
	Name  string
	Style TextStyle
}

// Recorder is a Surface that records operations instead of drawing,
// for use in tests.
type Recorder struct {
	// Ops holds one slice of operations per page, in draw order.
	Ops [][]Op

	// FailImages makes every DrawImage call return an error, exercising
	// the placeholder degradation path.
	FailImages bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddPage() {
	r.Ops = append(r.Ops, nil)
}

func (r *Recorder) PageCount() int {
	return len(r.Ops)
}

func (r *Recorder) record(op Op) {
	if len(r.Ops) == 0 {
		r.Ops = append(r.Ops, nil)
	}
	last := len(r.Ops) - 1
	r.Ops[last] = append(r.Ops[last], op)
}

func (r *Recorder) DrawText(x, y float64, text string, style TextStyle) {
	r.record(Op{Kind: OpText, X: x, Y: y, Text: text, Style: style})
}

func (r *Recorder) DrawImage(x, y, w, h float64, payload []byte, name string) error {
	if r.FailImages || len(payload) == 0 {
		return fmt.Errorf("image %q: cannot embed", name)
	}
	r.record(Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Name: name})
	return nil
}

func (r *Recorder) DrawRect(x, y, w, h float64, color Color, lineWidth float64) {
	r.record(Op{Kind: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, color Color, lineWidth float64) {
	r.record(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

// Output returns a deterministic placeholder artifact.
func (r *Recorder) Output() ([]byte, error) {
	if len(r.Ops) == 0 {
		return nil, ErrNoPages
	}
	return []byte(fmt.Sprintf("recorded %d pages", len(r.Ops))), nil
}

// Page returns the operations recorded for a 1-indexed page.
func (r *Recorder) Page(n int) []Op {
	if n < 1 || n > len(r.Ops) {
		return nil
	}
	return r.Ops[n-1]
}

// TextOps returns only the text operations for a 1-indexed page.
func (r *Recorder) TextOps(n int) []Op {
	var ops []Op
	for _, op := range r.Page(n) {
		if op.Kind == OpText {
			ops = append(ops, op)
		}
	}
	return ops
}

// FindText returns text operations whose text equals s, across all pages.
func (r *Recorder) FindText(s string) []Op {
	var ops []Op
	for _, page := range r.Ops {
		for _, op := range page {
			if op.Kind == OpText && op.Text == s {
				ops = append(ops, op)
			}
		}
	}
	return ops
}
