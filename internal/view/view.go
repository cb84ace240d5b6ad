// Package view renders the job list and job detail pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"jobboard/internal/apperrors"
	"jobboard/internal/domain"
	"jobboard/internal/jobposting"
)

//go:embed templates/*.html
var templateFS embed.FS

type Options struct {
	SiteTitle string
	// Absolute site root for canonical links; empty omits them.
	BaseURL string
}

// Card is the summary shown for one job on the list page.
type Card struct {
	ID       string
	Href     string
	Title    string
	Company  string
	LogoSrc  string
	Location string
	Type     string
	Salary   string
	Posted   string
}

type Detail struct {
	Card
	Description    string
	Requirements   []string
	ApplyURL       string
	StructuredData jobposting.Posting
}

type page struct {
	SiteTitle string
	Canonical string
}

type listPage struct {
	page
	Cards []Card
}

type detailPage struct {
	page
	Detail
}

type Renderer struct {
	opts  Options
	pages map[string]*template.Template
}

func New(opts Options) (*Renderer, error) {
	r := &Renderer{opts: opts, pages: map[string]*template.Template{}}
	for _, name := range []string{"list", "detail", "notfound"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// CardFrom builds the list-page summary for job as seen at now. logoSrc is
// the image source to use for the company logo.
func CardFrom(job domain.Job, now time.Time, logoSrc string) Card {
	return Card{
		ID:       job.ID,
		Href:     JobPath(job.ID),
		Title:    job.Title,
		Company:  job.Company,
		LogoSrc:  logoSrc,
		Location: job.Location,
		Type:     TypeText(job.Type),
		Salary:   SalaryText(job.Salary),
		Posted:   PostedText(job.PostedDate, now),
	}
}

func DetailFrom(job domain.Job, now time.Time, logoSrc string) Detail {
	return Detail{
		Card:           CardFrom(job, now, logoSrc),
		Description:    job.Description,
		Requirements:   job.Requirements,
		ApplyURL:       job.ApplicationURL,
		StructuredData: jobposting.FromJob(job),
	}
}

func JobPath(id string) string {
	return "/jobs/" + url.PathEscape(id)
}

// SalaryText formats a range as "80,000 - 120,000 USD".
func SalaryText(s domain.Salary) string {
	return fmt.Sprintf("%s - %s %s", humanize.Comma(s.Min), humanize.Comma(s.Max), s.Currency)
}

// TypeText turns FULL_TIME into "FULL TIME". Only the first underscore is replaced.
func TypeText(t domain.EmploymentType) string {
	return strings.Replace(string(t), "_", " ", 1)
}

// PostedText is the time since posting, e.g. "3 days ago".
func PostedText(posted, now time.Time) string {
	return humanize.RelTime(posted, now, "ago", "from now")
}

func (r *Renderer) RenderList(w io.Writer, cards []Card) error {
	return r.execute(w, "list", listPage{page: r.page("/"), Cards: cards})
}

func (r *Renderer) RenderDetail(w io.Writer, d Detail) error {
	return r.execute(w, "detail", detailPage{page: r.page(d.Href), Detail: d})
}

func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.execute(w, "notfound", page{SiteTitle: r.opts.SiteTitle})
}

func (r *Renderer) page(path string) page {
	p := page{SiteTitle: r.opts.SiteTitle}
	if r.opts.BaseURL != "" {
		p.Canonical = strings.TrimRight(r.opts.BaseURL, "/") + path
	}
	return p
}

// execute renders into a buffer first so a failing template never leaves a
// half-written page on w.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return apperrors.Internal("render "+name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
