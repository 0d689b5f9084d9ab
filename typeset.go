// Package typeset provides a fluent API for turning structured markup
// into a paginated, watermarked PDF.
//
// Basic usage:
//
//	pdf, err := typeset.FromMarkup(buf).Render()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	settings := model.DefaultWatermarkSettings()
//	settings.Template = model.TemplateDraft
//
//	pdf, err := typeset.FromFile("report.docx").
//	    Watermark(settings).
//	    Progress(func(stage string, percent int) {
//	        log.Printf("%s: %d%%", stage, percent)
//	    }).
//	    Render()
//
// Render never returns an empty result for recoverable faults: when the
// input cannot be processed, the output is a one-page processing notice
// that still carries the configured watermark. Only a failure to produce
// even that notice reports an error.
//
// For advanced use cases, the lower-level markup, paginate and watermark
// packages are also available.
package typeset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/typeset/markup"
	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/paginate"
	"github.com/tsawler/typeset/render"
	"github.com/tsawler/typeset/watermark"
)

// ProgressFunc receives stage labels and a percentage in [0,100] at fixed
// pipeline checkpoints. It is observational only; returning has no effect
// on processing.
type ProgressFunc func(stage string, percent int)

// Job is a configured rendering run. Construct one with FromMarkup or
// FromFile, chain options, then call Render.
type Job struct {
	input []byte
	err   error
	opts  Options
}

// FromMarkup creates a Job from a markup buffer produced by an external
// extractor.
//
// Example:
//
//	pdf, err := typeset.FromMarkup(buf).Render()
func FromMarkup(buf []byte) *Job {
	return &Job{input: buf, opts: defaultOptions()}
}

// FromFile creates a Job from a file on disk. Word archives (.docx) are
// unwrapped: the document markup, relationship table and embedded media
// are all loaded from the archive. Any other file is treated as a raw
// markup buffer.
//
// Example:
//
//	pdf, err := typeset.FromFile("report.docx").Render()
func FromFile(path string) *Job {
	j := &Job{opts: defaultOptions()}

	if fileExt(path) == ".docx" {
		arch, err := openArchive(path)
		if err != nil {
			j.err = fmt.Errorf("open %s: %w", path, err)
			return j
		}
		j.input = arch.document
		j.opts.relationships = arch.relationships
		j.opts.media = arch.media
		return j
	}

	data, err := os.ReadFile(path)
	if err != nil {
		j.err = fmt.Errorf("open %s: %w", path, err)
		return j
	}
	j.input = data
	return j
}

// Render runs the pipeline and returns the finished PDF bytes. Faults at
// any stage substitute the fallback document; see the package comment.
func (j *Job) Render() ([]byte, error) {
	out, renderErr := j.renderDocument()
	if renderErr == nil {
		return out, nil
	}
	return j.renderFallback(renderErr)
}

// renderDocument is the happy-path pipeline: build, paginate with inline
// compositing, finalize. Panics from any stage surface as errors so the
// caller can substitute the fallback document.
func (j *Job) renderDocument() (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline fault: %v", r)
		}
	}()

	if j.err != nil {
		return nil, j.err
	}

	j.report(StageExtract, 20)

	builder := markup.NewBuilder(markup.Config{
		Relationships: j.opts.relationships,
		Media:         j.opts.media,
		MinTextLength: j.opts.minTextLength,
	})
	elements, err := builder.Build(j.input)
	if err != nil {
		return nil, err
	}

	j.report(StageParse, 40)

	surface := render.NewPDF(j.opts.page)
	j.engine().Run(surface, elements)

	out, err = surface.Output()
	if err != nil {
		return nil, err
	}
	j.report(StageFinalize, 100)
	return out, nil
}

// renderFallback produces the one-page processing notice. It runs the
// same pagination and compositing as a real document, so the notice still
// carries the configured watermark.
func (j *Job) renderFallback(cause error) ([]byte, error) {
	elements := noticeElements()

	surface := render.NewPDF(j.opts.page)
	j.engine().Run(surface, elements)

	out, err := surface.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %v (original fault: %v)", ErrFallbackRender, err, cause)
	}
	j.report(StageFinalize, 100)
	return out, nil
}

// engine builds the pagination engine with the configured watermark
// compositor and a progress bridge mapping walk progress into the
// pagination band of the overall percentage.
func (j *Job) engine() *paginate.Engine {
	cfg := paginate.Config{
		Page:       j.opts.page,
		Compositor: watermark.New(j.opts.watermark, j.opts.page),
	}
	if j.opts.progress != nil {
		cfg.Progress = func(done, total int) {
			if total == 0 {
				return
			}
			j.report(StagePaginate, 40+done*50/total)
		}
	}
	return paginate.New(cfg)
}

func (j *Job) report(stage string, percent int) {
	if j.opts.progress != nil {
		j.opts.progress(stage, percent)
	}
}

// noticeElements is the content model of the fallback document.
func noticeElements() []model.Element {
	return []model.Element{
		&model.Heading{Text: "Processing Notice", Level: 1, Offset: 0},
		&model.Paragraph{
			Text:   "This document could not be fully processed.",
			Offset: 1,
		},
		&model.Paragraph{
			Text: "The source content was empty, too short, or could not be " +
				"laid out. A complete version of this document may be " +
				"available from the original source.",
			Offset: 2,
		},
	}
}

// fileExt returns the lower-cased extension of the final path element,
// including the dot.
func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	pdf := typeset.Must(typeset.FromMarkup(buf).Render())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
