package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/thunderbottom/cfmanifest/pkg/manifest"
)

// Column widths are fixed; longer values overflow the column
// instead of being wrapped or truncated.
const (
	releaseNameWidth    = 25
	releaseVersionWidth = 15
	releaseURLWidth     = 50
	stemcellWidth       = 15
)

const (
	releasesTitle  = "CF Deployment Releases"
	stemcellsTitle = "Stemcells"
	noReleases     = "No releases found."
	noStemcells    = "No stemcells found."
	missingURL     = "-"
)

// Renderer prints manifest tables to a writer
type Renderer struct {
	w io.Writer

	title   *color.Color
	label   *color.Color
	primary *color.Color
	second  *color.Color
	third   *color.Color
	warn    *color.Color
}

// New returns a Renderer writing to w. When colorize is false the
// output has the same layout without escape sequences.
func New(w io.Writer, colorize bool) *Renderer {
	r := &Renderer{
		w:       w,
		title:   color.New(color.Bold, color.Underline, color.FgCyan),
		label:   color.New(color.Bold),
		primary: color.New(color.FgGreen),
		second:  color.New(color.FgYellow),
		third:   color.New(color.FgBlue),
		warn:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.title, r.label, r.primary, r.second, r.third, r.warn} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render prints the releases section followed by the stemcells section
func (r *Renderer) Render(m *manifest.Manifest) error {
	p := &printer{w: r.w}

	p.line(r.title.Sprint(releasesTitle))
	if releases, ok := m.Releases.Get(); ok {
		p.line(r.releaseRow(r.label, r.label, r.label, "Release", "Version", "URL"))
		for _, rel := range releases {
			url := missingURL
			if rel.HasURL() {
				url = *rel.URL
			}
			p.line(r.releaseRow(r.primary, r.second, r.third, rel.Name, rel.Version, url))
		}
	} else {
		p.line(r.warn.Sprint(noReleases))
	}

	p.line("")
	p.line(r.title.Sprint(stemcellsTitle))
	if stemcells, ok := m.Stemcells.Get(); ok {
		p.line(r.stemcellRow(r.label, r.label, r.label, "Alias", "OS", "Version"))
		for _, s := range stemcells {
			p.line(r.stemcellRow(r.primary, r.second, r.third, s.Alias, s.OS, s.Version))
		}
	} else {
		p.line(r.warn.Sprint(noStemcells))
	}

	return p.err
}

func (r *Renderer) releaseRow(a, b, c *color.Color, name, version, url string) string {
	return a.Sprint(pad(name, releaseNameWidth)) + " " +
		b.Sprint(pad(version, releaseVersionWidth)) + " " +
		c.Sprint(pad(url, releaseURLWidth))
}

func (r *Renderer) stemcellRow(a, b, c *color.Color, alias, os, version string) string {
	return a.Sprint(pad(alias, stemcellWidth)) + " " +
		b.Sprint(pad(os, stemcellWidth)) + " " +
		c.Sprint(pad(version, stemcellWidth))
}

// pad left-justifies s before colouring so escape codes do not
// count towards the column width
func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// printer remembers the first write error and skips later writes
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
