package typeset

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/paginate"
	"github.com/tsawler/typeset/render"
	"github.com/tsawler/typeset/watermark"
)

func wordML(paragraphs ...string) []byte {
	var sb strings.Builder
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		sb.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	sb.WriteString(`</w:body></w:document>`)
	return []byte(sb.String())
}

func TestRenderProducesPDF(t *testing.T) {
	input := wordML(
		"The first paragraph of a small but complete document.",
		"A second paragraph so the content model has some volume.",
	)

	out, err := FromMarkup(input).Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestCorruptInputFallsBack(t *testing.T) {
	out, err := FromMarkup([]byte("tiny")).Render()
	if err != nil {
		t.Fatalf("Render() error: %v, want fallback document", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("fallback output is not a PDF")
	}
}

func TestMissingFileFallsBack(t *testing.T) {
	out, err := FromFile("no-such-file.xml").Render()
	if err != nil {
		t.Fatalf("Render() error: %v, want fallback document", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("fallback output is not a PDF")
	}
}

func TestFallbackIsOnePageAndWatermarked(t *testing.T) {
	comp := watermark.New(model.DefaultWatermarkSettings(), model.DefaultPageConfig())
	engine := paginate.New(paginate.Config{Compositor: comp})

	rec := render.NewRecorder()
	plan := engine.Run(rec, noticeElements())

	if plan.PageCount() != 1 {
		t.Fatalf("fallback document has %d pages, want 1", plan.PageCount())
	}
	if ops := rec.FindText("CONFIDENTIAL"); len(ops) == 0 {
		t.Error("fallback page carries no watermark text")
	}
	if ops := rec.FindText("Processing Notice"); len(ops) == 0 {
		t.Error("fallback page carries no notice heading")
	}
}

func TestProgressCheckpoints(t *testing.T) {
	var paragraphs []string
	for i := 0; i < 30; i++ {
		paragraphs = append(paragraphs, "A body paragraph with enough text to register.")
	}

	type call struct {
		stage   string
		percent int
	}
	var calls []call
	_, err := FromMarkup(wordML(paragraphs...)).
		Progress(func(stage string, percent int) {
			calls = append(calls, call{stage, percent})
		}).
		Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if len(calls) < 3 {
		t.Fatalf("got %d progress calls, want at least extract, parse, finalize", len(calls))
	}
	if calls[0].stage != StageExtract || calls[0].percent != 20 {
		t.Errorf("first call = %+v, want {extract 20}", calls[0])
	}
	last := calls[len(calls)-1]
	if last.stage != StageFinalize || last.percent != 100 {
		t.Errorf("last call = %+v, want {finalize 100}", last)
	}
	for i, c := range calls {
		if c.percent < 0 || c.percent > 100 {
			t.Errorf("call %d percent = %d outside [0,100]", i, c.percent)
		}
		if i > 0 && c.percent < calls[i-1].percent {
			t.Errorf("progress regressed at call %d: %+v after %+v", i, c, calls[i-1])
		}
	}
}

func TestWatermarkOptionThreadsThrough(t *testing.T) {
	settings := model.DefaultWatermarkSettings()
	settings.Template = model.TemplateDraft

	j := FromMarkup(wordML("Some content for the watermark option test.")).
		Watermark(settings).
		MinTextLength(5)

	if j.opts.watermark.Template != model.TemplateDraft {
		t.Error("watermark settings not stored")
	}
	if j.opts.minTextLength != 5 {
		t.Error("min text length not stored")
	}

	if _, err := j.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
}

func TestFromFileDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.docx")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	doc, _ := zw.Create("word/document.xml")
	doc.Write(wordML("A paragraph stored inside a word archive."))
	rels, _ := zw.Create("word/_rels/document.xml.rels")
	rels.Write([]byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Target="media/image1.png"/></Relationships>`))
	media, _ := zw.Create("word/media/image1.png")
	media.Write([]byte("payload"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	j := FromFile(path)
	if j.err != nil {
		t.Fatalf("FromFile error: %v", j.err)
	}
	if len(j.input) == 0 {
		t.Error("document part not loaded")
	}
	if j.opts.relationships["rId1"] != "media/image1.png" {
		t.Errorf("relationships = %v", j.opts.relationships)
	}
	if string(j.opts.media["media/image1.png"]) != "payload" {
		t.Errorf("media part not loaded")
	}

	out, err := j.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("archive render is not a PDF")
	}
}

func TestFileExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{"report.docx", ".docx"},
		{"REPORT.DOCX", ".docx"},
		{"reports.v1/summary", ""},
		{"reports.v1/summary.xml", ".xml"},
		{"plain", ""},
	}
	for _, tt := range tests {
		if got := fileExt(tt.in); got != tt.want {
			t.Errorf("fileExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic")
		}
	}()
	Must(0, os.ErrNotExist)
}
