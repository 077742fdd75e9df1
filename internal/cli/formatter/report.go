package formatter

import (
	"fmt"
	"strings"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/repository"
)

// categoryStyle colors a finding category by severity family.
func categoryStyle(cat domain.ErrorCategory) string {
	switch cat {
	case domain.CategoryStructural:
		return render(StyleRed, string(cat))
	case domain.CategoryReference:
		return render(StyleYellow, string(cat))
	case domain.CategoryCapacity:
		return render(StyleBlue, string(cat))
	default:
		return string(cat)
	}
}

// FormatReport renders a full validation report grouped by dataset,
// findings in engine order. An empty report renders a single success
// line.
func FormatReport(report domain.Report) string {
	if report.OK() {
		return render(StyleGreen, "✓ all datasets consistent") + "\n"
	}

	var b strings.Builder
	for _, kind := range domain.AllDatasets {
		errs := report[kind]
		if len(errs) == 0 {
			continue
		}
		b.WriteString(Header(string(kind)))
		b.WriteString("\n")
		for _, e := range errs {
			where := e.Row.String()
			if e.Row.Index < 0 {
				where = "dataset"
			}
			fmt.Fprintf(&b, "  %-28s %s: %s\n",
				"["+categoryStyle(e.Category)+"]", Dim(where), e.Message)
		}
		b.WriteString("\n")
	}

	counts := map[domain.ErrorCategory]int{}
	for _, kind := range domain.AllDatasets {
		for cat, n := range report.CountByCategory(kind) {
			counts[cat] += n
		}
	}
	fmt.Fprintf(&b, "%d findings (structural %d, reference %d, capacity %d)\n",
		report.Total(),
		counts[domain.CategoryStructural],
		counts[domain.CategoryReference],
		counts[domain.CategoryCapacity])
	return b.String()
}

// FormatRunList renders persisted validation runs, newest first.
func FormatRunList(runs []repository.RunSummary) string {
	if len(runs) == 0 {
		return Dim("no validation runs recorded") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("validation runs"))
	b.WriteString("\n")
	for _, r := range runs {
		status := render(StyleGreen, "ok")
		if r.ErrorCount > 0 {
			status = render(StyleRed, fmt.Sprintf("%d findings", r.ErrorCount))
		}
		fmt.Fprintf(&b, "  %s  %s  %-10s  %dc/%dw/%dt  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			Dim(shortID(r.ID)),
			string(r.Trigger),
			r.ClientRows, r.WorkerRows, r.TaskRows,
			status)
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
