package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rosnMagar/RateMyClass/internal/client"
	"github.com/rosnMagar/RateMyClass/internal/pkg/stars"
	"github.com/rosnMagar/RateMyClass/internal/session"
	"github.com/rosnMagar/RateMyClass/internal/view"
)

// app bundles the API client, the session gate and the output stream
type app struct {
	client *client.Client
	gate   *session.Gate
	out    io.Writer
}

func (a *app) listSchools(ctx context.Context) error {
	schools, err := a.client.GetSchools(ctx)
	if err != nil {
		return err
	}

	if len(schools) == 0 {
		fmt.Fprintln(a.out, "No schools yet")
		return nil
	}

	for _, s := range schools {
		fmt.Fprintf(a.out, "%4d  %s\n", s.SchoolID, s.SchoolName)
	}
	return nil
}

func (a *app) listCourses(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")

	courses, err := a.client.SearchCourses(ctx, term)
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No courses found")
		return nil
	}

	for _, course := range courses {
		summary, err := view.NewCourseSummary(course)
		if err != nil {
			// Skip records too broken to render rather than abort the list
			continue
		}
		a.renderCard(course.CourseID, summary)
	}
	return nil
}

func (a *app) showCourse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ratemyclass course <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := a.client.GetCourseDetail(ctx, id)
	if err != nil {
		return err
	}

	detail, err := view.NewCourseDetail(resp.CourseWithRatings, resp.Ratings)
	if err != nil {
		return err
	}

	a.renderCard(resp.CourseID, detail.Header)
	fmt.Fprintln(a.out)

	if detail.NoRatings {
		fmt.Fprintln(a.out, "No ratings yet")
		return nil
	}

	for _, review := range detail.Reviews {
		fmt.Fprintf(a.out, "%s %s  %s\n", renderStars(review.Stars), review.RatingLabel, review.DateLabel)
		fmt.Fprintf(a.out, "  %s\n\n", review.Text)
	}
	return nil
}

func (a *app) renderCard(id int64, summary view.CourseSummary) {
	fmt.Fprintf(a.out, "%4d  %s — %s\n", id, summary.Number, summary.Title)
	fmt.Fprintf(a.out, "      %s | %s\n", summary.School, strings.Join(summary.Tags, " · "))

	line := fmt.Sprintf("      %s %s", renderStars(summary.Stars), summary.AverageRatingLabel)
	if summary.RatingCountLabel != "" {
		line += " (" + summary.RatingCountLabel + ")"
	}
	fmt.Fprintln(a.out, line)
}

// renderStars draws a five-position star row, e.g. "★★★½☆"
func renderStars(b stars.Breakdown) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("★", b.Full))
	if b.Half {
		sb.WriteString("½")
	}
	sb.WriteString(strings.Repeat("☆", b.Empty))
	return sb.String()
}
