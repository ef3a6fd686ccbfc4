package cli

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/azcov/pkg/domain/interfaces"
	"github.com/m-mizutani/azcov/pkg/domain/model"
)

// Report prints finished coverage runs oldest first, followed by the runs
// still in progress.
type Report struct {
	w        io.Writer
	pipeline model.Pipeline

	passColor *color.Color
	failColor *color.Color
	fateColor *color.Color
}

func NewReport(w io.Writer, pipeline model.Pipeline, noColor bool) interfaces.Reporter {
	r := &Report{
		w:         w,
		pipeline:  pipeline,
		passColor: color.New(color.FgGreen),
		failColor: color.New(color.FgRed),
		fateColor: color.New(color.FgYellow),
	}

	if noColor {
		r.passColor.DisableColor()
		r.failColor.DisableColor()
		r.fateColor.DisableColor()
	}

	return r
}

func (r *Report) Render(runs []*model.CoverageRun) {
	var finished, inProgress []*model.CoverageRun
	for _, run := range runs {
		if run.Finished() {
			finished = append(finished, run)
		} else {
			inProgress = append(inProgress, run)
		}
	}

	slices.SortStableFunc(finished, func(a, b *model.CoverageRun) int {
		return a.FinishedDate.Compare(*b.FinishedDate)
	})

	for _, run := range finished {
		finishedAt := run.FinishedDate.UTC().Format(time.RFC3339)
		if run.Succeeded() {
			fmt.Fprintf(r.w, "🙂 [%s] %s (%s)\n", r.passColor.Sprint("PASS"), r.pipeline.ResultsURL(run.ID), finishedAt)
		} else {
			fmt.Fprintf(r.w, "😢 [%s] %s (%s)\n", r.failColor.Sprint("FAIL"), r.pipeline.ResultsURL(run.ID), finishedAt)
		}
	}

	if len(inProgress) > 0 {
		fmt.Fprintln(r.w, "The following runs are ongoing:")
		for _, run := range inProgress {
			fmt.Fprintf(r.w, "🤔 [%s] %s\n", r.fateColor.Sprint("FATE"), r.pipeline.ResultsURL(run.ID))
		}
	}
}
