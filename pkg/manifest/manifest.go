package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	multierror "github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the manifest read when no path is given
const DefaultFile = "cf-deployment.yml"

// Manifest is a parsed deployment manifest. Either list may be
// absent from the document, which is distinct from an empty list.
type Manifest struct {
	Releases  Optional[Release]
	Stemcells Optional[Stemcell]
}

// Release is a BOSH release entry
type Release struct {
	Name    string
	Version string
	// URL is nil when the key is missing; an explicit empty string is kept
	URL     *string
	// SHA1 is kept for completeness, nothing displays it
	SHA1    string
}

// HasURL reports whether the release declared a download URL
func (r Release) HasURL() bool {
	return r.URL != nil
}

// Stemcell is a stemcell entry
type Stemcell struct {
	Alias   string
	OS      string
	Version string
}

// document mirrors the YAML layout. Fields are pointers so that
// missing required keys can be told apart from empty strings.
type document struct {
	Releases  Optional[rawRelease]  `yaml:"releases"`
	Stemcells Optional[rawStemcell] `yaml:"stemcells"`
}

type rawRelease struct {
	Name    *string `yaml:"name"`
	Version *string `yaml:"version"`
	URL     *string `yaml:"url"`
	SHA1    *string `yaml:"sha1"`

	line int
}

func (r *rawRelease) UnmarshalYAML(value *yaml.Node) error {
	type plain rawRelease
	if err := value.Decode((*plain)(r)); err != nil {
		return err
	}
	r.line = value.Line
	return nil
}

type rawStemcell struct {
	Alias   *string `yaml:"alias"`
	OS      *string `yaml:"os"`
	Version *string `yaml:"version"`

	line int
}

func (s *rawStemcell) UnmarshalYAML(value *yaml.Node) error {
	type plain rawStemcell
	if err := value.Decode((*plain)(s)); err != nil {
		return err
	}
	s.line = value.Line
	return nil
}

// Decode loads and parses the manifest at path
func Decode(path string) (*Manifest, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Load reads the whole manifest file at path into memory
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &ReadError{Path: path, Err: ErrInvalidEncoding}
	}
	return data, nil
}

// Parse decodes a single manifest YAML document. Unknown keys are
// ignored; every record missing a required key is reported in a
// single error.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	switch err := dec.Decode(&doc); {
	case err == io.EOF:
		// empty input
	case err != nil:
		return nil, &ParseError{Err: err}
	default:
		var extra yaml.Node
		if err := dec.Decode(&extra); err != io.EOF {
			if err == nil {
				err = ErrMultipleDocuments
			}
			return nil, &ParseError{Err: err}
		}
	}

	var merr *multierror.Error
	m := &Manifest{}

	if raw, ok := doc.Releases.Get(); ok {
		releases := make([]Release, 0, len(raw))
		for i, r := range raw {
			for _, f := range []struct {
				name string
				val  *string
			}{{"name", r.Name}, {"version", r.Version}} {
				if f.val == nil {
					merr = multierror.Append(merr, &FieldError{List: "releases", Index: i, Field: f.name, Line: r.line})
				}
			}
			releases = append(releases, Release{
				Name:    deref(r.Name),
				Version: deref(r.Version),
				URL:     r.URL,
				SHA1:    deref(r.SHA1),
			})
		}
		m.Releases = Present(releases)
	}

	if raw, ok := doc.Stemcells.Get(); ok {
		stemcells := make([]Stemcell, 0, len(raw))
		for i, s := range raw {
			for _, f := range []struct {
				name string
				val  *string
			}{{"alias", s.Alias}, {"os", s.OS}, {"version", s.Version}} {
				if f.val == nil {
					merr = multierror.Append(merr, &FieldError{List: "stemcells", Index: i, Field: f.name, Line: s.line})
				}
			}
			stemcells = append(stemcells, Stemcell{
				Alias:   deref(s.Alias),
				OS:      deref(s.OS),
				Version: deref(s.Version),
			})
		}
		m.Stemcells = Present(stemcells)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, &ParseError{Err: err}
	}
	return m, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
