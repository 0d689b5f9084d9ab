// Package paginate turns an estimated element sequence into page spans
// and renders them onto a surface. The walk is a small state machine: a
// page accumulates elements until a break decision fires, the finished
// page is handed to the watermark compositor, and the next page opens.
// Planning and rendering are separate passes so the total page count is
// known before any watermark gate that depends on it is evaluated; both
// passes are deterministic, so they always agree.
package paginate

import (
	"github.com/tsawler/typeset/estimate"
	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/render"
	"github.com/tsawler/typeset/watermark"
)

// progressInterval is how many elements are placed between progress
// callbacks during the walk.
const progressInterval = 10

// Config configures an Engine. A zero Page falls back to the default
// page geometry. Compositor and Progress are optional.
type Config struct {
	Page       model.PageConfig
	Compositor *watermark.Compositor

	// Progress is invoked during the walk with the number of elements
	// placed so far and the total.
	Progress func(done, total int)
}

// Engine paginates one document at a time. It holds no state between
// calls; all per-document state lives on the stack of Paginate and
// Render.
type Engine struct {
	cfg Config
}

// New creates an Engine.
func New(cfg Config) *Engine {
	if cfg.Page.Width == 0 || cfg.Page.Height == 0 {
		cfg.Page = model.DefaultPageConfig()
	}
	return &Engine{cfg: cfg}
}

// PageSpan is a half-open element index range [Start, End) placed on one
// page.
type PageSpan struct {
	Start, End int
}

// Plan is the result of the pagination walk.
type Plan struct {
	Spans    []PageSpan
	Scores   []int
	Strategy Strategy
}

// PageCount returns the number of pages in the plan.
func (p Plan) PageCount() int { return len(p.Spans) }

// BreakIndices lists the element indices at which a new page starts,
// excluding page 1.
func (p Plan) BreakIndices() []int {
	var idx []int
	for _, span := range p.Spans[1:] {
		idx = append(idx, span.Start)
	}
	return idx
}

// Paginate runs density analysis, break scoring and the forward walk,
// producing the page plan. Element heights are assigned here against the
// strategy's effective page geometry, so callers need not run the
// estimator themselves.
func (e *Engine) Paginate(elements []model.Element) Plan {
	strategy := StrategyFor(AnalyzeDensity(elements), e.cfg.Page)
	estimate.New(strategy.Page).EstimateAll(elements)
	scores := ScoreBreaks(elements)

	usable := strategy.UsableHeight()
	var spans []PageSpan
	start := 0
	cursor := 0.0
	pending := -1 // deferred break index from the overflow window, -1 when unset

	closePage := func(end int) {
		spans = append(spans, PageSpan{Start: start, End: end})
		start = end
		cursor = 0
		pending = -1
	}

	for i, el := range elements {
		if e.cfg.Progress != nil && i > 0 && i%progressInterval == 0 {
			e.cfg.Progress(i, len(elements))
		}

		h := el.EstimatedHeight()
		onPage := i - start

		if onPage > 0 {
			switch {
			case spacerBreak(el):
				closePage(i)

			case pending == i:
				closePage(i)

			case pending >= 0:
				// Walking toward a deferred break; tolerate overflow.

			case scores[i] > breakScoreImmediate:
				closePage(i)

			case cursor+h > usable:
				if oversized(el) {
					closePage(i)
					break
				}
				j, ok := nearbyBreak(scores, i, start, len(elements))
				switch {
				case !ok:
					closePage(i)
				case j <= i:
					// The better break is behind the cursor: close there
					// and carry the already-walked elements onto the new
					// page.
					closePage(j)
					for k := j; k < i; k++ {
						cursor += elements[k].EstimatedHeight() + strategy.ElementSpacing
					}
				default:
					pending = j
				}

			case onPage >= strategy.MaxElementsPerPage:
				closePage(i)
			}
		}

		cursor += h + strategy.ElementSpacing
	}

	if start < len(elements) || len(spans) == 0 {
		spans = append(spans, PageSpan{Start: start, End: len(elements)})
	}

	if e.cfg.Progress != nil {
		e.cfg.Progress(len(elements), len(elements))
	}

	return Plan{Spans: spans, Scores: scores, Strategy: strategy}
}

// spacerBreak reports whether an element is an author-forced page break.
func spacerBreak(el model.Element) bool {
	sp, ok := el.(*model.Spacer)
	return ok && sp.ForcePageBreak
}

// nearbyBreak looks for a well-scored break point within the window
// around an overflowing index. Earlier candidates are preferred since
// they avoid overflowing the current page; candidates at or before the
// page start are never usable.
func nearbyBreak(scores []int, i, pageStart, n int) (int, bool) {
	candidates := [nearbyWindow * 2]int{i - 1, i - 2, i + 1, i + 2}
	for _, j := range candidates[:] {
		if j <= pageStart || j >= n {
			continue
		}
		if scores[j] > breakScoreNearby {
			return j, true
		}
	}
	return 0, false
}

// Run paginates and renders in one call, returning the plan that was
// rendered.
func (e *Engine) Run(s render.Surface, elements []model.Element) Plan {
	plan := e.Paginate(elements)
	e.Render(s, elements, plan)
	return plan
}
