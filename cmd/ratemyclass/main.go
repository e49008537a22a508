// Command ratemyclass is a terminal front end for the RateMyClass API.
// It browses schools and courses, renders rating summaries, submits
// ratings, and lets an admin log in to add courses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rosnMagar/RateMyClass/internal/client"
	"github.com/rosnMagar/RateMyClass/internal/forms"
	"github.com/rosnMagar/RateMyClass/internal/session"
)

const defaultBaseURL = "http://localhost:8000"

func main() {
	baseURL := flag.String("base-url", envOr("RATEMYCLASS_URL", defaultBaseURL), "backend base URL")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	gate, err := newGate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	app := &app{
		client: client.New(*baseURL),
		gate:   gate,
		out:    os.Stdout,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newGate() (*session.Gate, error) {
	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	return session.NewGate(session.NewFileStore(path)), nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "schools":
		return a.listSchools(ctx)
	case "courses":
		return a.listCourses(ctx, args)
	case "course":
		return a.showCourse(ctx, args)
	case "rate":
		return a.rate(ctx, args)
	case "add-course":
		return a.addCourse(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) rate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	schoolID := fs.Int64("school", 0, "school ID (see 'schools')")
	courseID := fs.Int64("course", 0, "course ID (see 'courses')")
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	review := fs.String("review", "", "review text")
	textbook := fs.String("textbook", "", "textbook title or ISBN")
	fs.Parse(args)

	draft := forms.RatingDraft{
		SchoolID:         *schoolID,
		CourseID:         *courseID,
		Rating:           *rating,
		Review:           *review,
		TextbookRequired: *textbook != "",
		Textbook:         *textbook,
	}

	submission, err := draft.Validate()
	if err != nil {
		return err
	}

	created, err := a.client.CreateRating(ctx, *submission.Rating)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Rating submitted for course %d (%d/5)\n", created.CourseID, created.Rating)
	return nil
}

func (a *app) addCourse(ctx context.Context, args []string) error {
	if !a.gate.IsAdmin() {
		return fmt.Errorf("admin access required; run 'ratemyclass login' first")
	}

	fs := flag.NewFlagSet("add-course", flag.ExitOnError)
	schoolID := fs.Int64("school", 0, "school ID (see 'schools')")
	schoolName := fs.String("school-name", "", "school name (created when it doesn't exist yet)")
	name := fs.String("name", "", "course name")
	number := fs.String("number", "", "course number, e.g. 'CS 170'")
	major := fs.String("major", "", "major the course belongs to")
	dialogues := fs.String("dialogues", "", "dialogues requirement (STEM, Arts & Humanities, Social Science, None)")
	mode := fs.String("mode", "", "delivery mode (Online, In-Person, Hybrid)")
	rating := fs.Int("rating", 0, "initial rating from 1 to 5")
	review := fs.String("review", "", "initial review text")
	textbook := fs.String("textbook", "", "textbook title or ISBN")
	fs.Parse(args)

	// The draft validator wants a school selection; a name-only school
	// still counts because the backend creates it on the fly.
	sid := *schoolID
	if sid == 0 && *schoolName != "" {
		sid = -1
	}

	draft := forms.RatingDraft{
		SchoolID:             sid,
		SchoolName:           *schoolName,
		CourseName:           *name,
		CourseNumber:         *number,
		Major:                *major,
		DialoguesRequirement: *dialogues,
		DeliveryMode:         *mode,
		Rating:               *rating,
		Review:               *review,
		TextbookRequired:     *textbook != "",
		Textbook:             *textbook,
	}

	submission, err := draft.Validate()
	if err != nil {
		return err
	}
	if submission.NewCourse == nil {
		return fmt.Errorf("add-course requires the new course fields, not -course")
	}

	course, err := a.client.CreateCourse(ctx, *submission.NewCourse, a.gate.Token())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Course created: %s %s (ID %d)\n", course.CourseNumber, course.CourseName, course.CourseID)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	if *username == "" || *password == "" {
		return fmt.Errorf("both -u and -p are required")
	}

	resp, err := a.client.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	if err := a.gate.Login(resp.AccessToken, resp.Role); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", *username, resp.Role)
	return nil
}

func (a *app) logout() error {
	if err := a.gate.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) whoami() error {
	if a.gate.IsAdmin() {
		fmt.Fprintln(a.out, "Logged in with admin access")
	} else if a.gate.Token() != "" {
		fmt.Fprintln(a.out, "Logged in without admin access")
	} else {
		fmt.Fprintln(a.out, "Not logged in")
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ratemyclass [flags] <command>

Commands:
  schools                 list schools
  courses [term]          browse courses, optionally filtered by a search term
  course <id>             show one course with all its reviews
  rate [flags]            submit a rating for an existing course
  add-course [flags]      create a course with an initial rating (admin)
  login -u USER -p PASS   log in and store the session
  logout                  clear the stored session
  whoami                  show the current session state

Flags:
`)
	flag.PrintDefaults()
}
