package catalog

import (
	"context"
	"errors"
	"fmt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrNotFound is returned when an artist name did not resolve to an identifier.
// Every error returned by Catalog.ResolveIdentifier matches it with errors.Is, so
// callers which do not care why the lookup failed may only check for it.
var ErrNotFound = errors.New("artist not found")

// ErrNoWorksData is returned when the catalog response did not contain works data
// for an artist. It is different from an artist without known works, for which an
// empty list is returned. Every error returned by Catalog.ResolveWorks matches it.
var ErrNoWorksData = errors.New("no works data for artist")

// ErrTransport signals a connectivity problem while talking to the catalog.
var ErrTransport = errors.New("catalog request failed")

// ErrTimeout is returned when a catalog request did not finish before its
// deadline. It wraps ErrTransport.
var ErrTimeout = fmt.Errorf("%w: deadline exceeded", ErrTransport)

// ErrMalformed is returned when the catalog responded with something which could
// not be understood. Missing fields, broken JSON and unexpected HTTP statuses
// are all considered malformed responses.
var ErrMalformed = errors.New("malformed catalog response")

// ErrUnknownSection is returned for a Section which has no page on the catalog
// web site.
var ErrUnknownSection = errors.New("unknown artist section")

//counterfeiter:generate . Catalog

// Catalog defines a type which is capable of looking up artists and their works.
type Catalog interface {
	// ResolveIdentifier returns the catalog identifier for the artist with
	// `name`. Only the best match is considered.
	ResolveIdentifier(ctx context.Context, name string) (string, error)

	// ResolveWorks returns the titles of all works associated with the artist
	// identified by `id`. The returned slice is empty but not nil when the artist
	// is known to have no works.
	ResolveWorks(ctx context.Context, id string) ([]string, error)

	// BuildDeepLink returns the URL of `section` of the catalog page for the
	// artist with `name`.
	BuildDeepLink(ctx context.Context, name string, section Section) (string, error)
}

// Section is a part of the artist page on the catalog web site.
type Section int

// All the artist page sections which could be linked to.
const (
	SectionProfile Section = iota
	SectionWorks
	SectionGenre
	SectionEvents
)

// AllSections lists every known Section in the order they are presented.
var AllSections = []Section{
	SectionProfile,
	SectionWorks,
	SectionGenre,
	SectionEvents,
}

var sectionNames = map[Section]string{
	SectionProfile: "profile",
	SectionWorks:   "works",
	SectionGenre:   "genre",
	SectionEvents:  "events",
}

var sectionPaths = map[Section]string{
	SectionProfile: "",
	SectionWorks:   "/works",
	SectionGenre:   "/tags",
	SectionEvents:  "/events",
}

// String implements fmt.Stringer.
func (s Section) String() string {
	name, ok := sectionNames[s]
	if !ok {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return name
}
