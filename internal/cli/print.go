package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

var (
	bold    = color.New(color.Bold).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	errText = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newTable(headers ...interface{}) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = bold(h)
	}
	tbl.AddRow(row...)
	return tbl
}

func check(done bool) string {
	if done {
		return green("✔")
	}
	return yellow("•")
}

func printPageFooter(w io.Writer, page, pages, total int) {
	_, _ = fmt.Fprintln(w, faint(fmt.Sprintf("page %d/%d, %d total", page, pages, total)))
}

func printEmpty(w io.Writer) {
	_, _ = fmt.Fprintln(w, faint("No results found."))
}

func printAssignments(w io.Writer, page service.Page[models.Assignment]) {
	if page.Empty {
		printEmpty(w)
		return
	}
	tbl := newTable("ID", "", "TITLE", "COURSE", "DUE", "STATUS", "UPDATED")
	for _, a := range page.Items {
		tbl.AddRow(a.ID, check(a.Completed), a.Title, a.Course, a.Due, a.Status, a.Updated)
	}
	_, _ = fmt.Fprintln(w, tbl)
	printPageFooter(w, page.Page, page.TotalPages, page.TotalCount)
}

func printGrades(w io.Writer, page service.Page[models.Grade], summary models.GradeSummary) {
	if page.Empty {
		printEmpty(w)
		return
	}
	tbl := newTable("ID", "", "COURSE", "GRADE", "PROGRESS", "UPDATED")
	for _, g := range page.Items {
		tbl.AddRow(g.ID, check(g.Completed), g.Course, g.Grade, strconv.Itoa(g.Progress)+"%", g.Updated)
	}
	_, _ = fmt.Fprintln(w, tbl)
	printPageFooter(w, page.Page, page.TotalPages, page.TotalCount)
	_, _ = fmt.Fprintf(w, "%s %d%% across %d courses\n", bold("Average"), summary.Average, summary.Courses)
}

func printMessages(w io.Writer, page service.Page[models.Message], unread int) {
	if page.Empty {
		printEmpty(w)
		return
	}
	tbl := newTable("ID", "", "SENDER", "SUBJECT", "DATE")
	for _, m := range page.Items {
		tbl.AddRow(m.ID, check(m.Read), m.Sender, m.Subject, m.Date)
	}
	_, _ = fmt.Fprintln(w, tbl)
	printPageFooter(w, page.Page, page.TotalPages, page.TotalCount)
	_, _ = fmt.Fprintf(w, "%s %d\n", bold("Unread"), unread)
}

func printFeedback(w io.Writer, page service.Page[models.Feedback]) {
	if page.Empty {
		printEmpty(w)
		return
	}
	tbl := newTable("ID", "NAME", "RATING", "DATE", "FEEDBACK")
	for _, f := range page.Items {
		tbl.AddRow(f.ID, f.Name, f.Rating, f.Date, f.Feedback)
	}
	_, _ = fmt.Fprintln(w, tbl)
	printPageFooter(w, page.Page, page.TotalPages, page.TotalCount)
}

func printCourses(w io.Writer, courses []models.Course) {
	if len(courses) == 0 {
		_, _ = fmt.Fprintln(w, faint("No courses found matching your criteria."))
		return
	}
	tbl := newTable("ID", "TITLE", "CATEGORY", "WEEKS", "PRICE", "INSTRUCTOR")
	for _, c := range courses {
		tbl.AddRow(c.ID, c.Title, c.Category, c.Duration, fmt.Sprintf("$%d", c.Price), c.Instructor)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printResult(w io.Writer, result models.DestructiveResult) {
	_, _ = fmt.Fprintf(w, "%s %d affected\n", green("✔"), result.Affected)
}

// DescribeError flattens an error and its field messages for the terminal.
func DescribeError(err error) string {
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		return errText(err.Error())
	}
	msg := appErr.Message
	for field, text := range appErr.Fields {
		msg += fmt.Sprintf("\n  %s: %s", field, text)
	}
	return errText(msg)
}
