package typeset

import (
	"github.com/tsawler/typeset/model"
)

// Stage labels reported to the progress callback.
const (
	StageExtract  = "extract"
	StageParse    = "parse"
	StagePaginate = "paginate"
	StageFinalize = "finalize"
)

// Options holds the configuration accumulated by the fluent Job methods.
type Options struct {
	page          model.PageConfig
	watermark     model.WatermarkSettings
	progress      ProgressFunc
	minTextLength int

	relationships map[string]string
	media         map[string][]byte
}

// defaultOptions returns US Letter geometry and the default watermark.
func defaultOptions() Options {
	return Options{
		page:      model.DefaultPageConfig(),
		watermark: model.DefaultWatermarkSettings(),
	}
}

// Page sets the page geometry and base typography.
func (j *Job) Page(cfg model.PageConfig) *Job {
	j.opts.page = cfg
	return j
}

// Watermark sets the watermark settings applied to every rendered page
// that passes the applicability gate.
func (j *Job) Watermark(settings model.WatermarkSettings) *Job {
	j.opts.watermark = settings
	return j
}

// Progress registers a callback invoked at fixed pipeline checkpoints.
func (j *Job) Progress(fn ProgressFunc) *Job {
	j.opts.progress = fn
	return j
}

// MinTextLength overrides the extraction threshold below which the input
// is treated as corrupt. Zero keeps the default.
func (j *Job) MinTextLength(n int) *Job {
	j.opts.minTextLength = n
	return j
}

// Media supplies image payloads keyed by media target name, for markup
// whose images reference external parts.
func (j *Job) Media(media map[string][]byte) *Job {
	j.opts.media = media
	return j
}

// Relationships supplies the relationship table mapping rId references to
// media target names.
func (j *Job) Relationships(rels map[string]string) *Job {
	j.opts.relationships = rels
	return j
}
