package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/markmind/markmind/internal/export"
	"github.com/markmind/markmind/internal/importer"
	"github.com/markmind/markmind/internal/layout"
	"github.com/markmind/markmind/internal/transcode"
)

// Worker processes a single import job: foreign document in, dialect
// markdown plus positioned layout and SVG out.
type Worker struct {
	jobs        *JobStore
	log         *slog.Logger
	layoutCfg   layout.Config
	originX     float64
	originY     float64
	pdfFallback bool
}

func NewWorker(jobs *JobStore, log *slog.Logger, layoutCfg layout.Config, originX, originY float64, pdfFallback bool) *Worker {
	return &Worker{
		jobs:        jobs,
		log:         log,
		layoutCfg:   layoutCfg,
		originX:     originX,
		originY:     originY,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full import pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Import
	job.SetStatus(StatusImporting, "importing")
	imp, err := importer.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "importing")
		return
	}
	if pdf, ok := imp.(*importer.PDFImporter); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	tree, err := imp.Import(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("import failed", "error", err)
		job.AddError(fmt.Sprintf("import: %s", err))
		job.SetStatus(StatusFailed, "importing")
		return
	}
	if job.Title != "" {
		tree.Text = job.Title
	}

	// The dialect text is the canonical content; hash it for dedup.
	markdown := transcode.Serialize(tree)
	hash := ContentHashHex([]byte(markdown))
	job.SetContentHash(hash)

	if dup := w.jobs.FindCompletedByHash(hash); dup != nil && dup.ID != job.ID {
		log.Info("duplicate document, skipping", "existing_job_id", dup.ID)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "importing")
		return
	}

	// Phase 2: Layout
	job.SetStatus(StatusLayouting, "layouting")
	positioned := layout.LayoutAt(tree, w.originX, w.originY, w.layoutCfg)
	layoutJSON, err := export.JSON(positioned)
	if err != nil {
		log.Error("layout encoding failed", "error", err)
		job.AddError(fmt.Sprintf("layout: %s", err))
		job.SetStatus(StatusFailed, "layouting")
		return
	}

	// Phase 3: Render
	job.SetStatus(StatusRendering, "rendering")
	svg := export.SVG(positioned, w.layoutCfg)

	job.SetResult(markdown, layoutJSON, svg, tree.Count())
	job.SetStatus(StatusCompleted, "done")
	log.Info("import complete", "nodes", tree.Count(), "svg_bytes", len(svg))
}
