// Package content serves the knowledge base: news, articles, case studies,
// and FAQ entries about business registration. Items come from Postgres when
// configured, with a seeded in-memory fallback so the site always has
// something to show.
package content

import (
	"time"

	"github.com/google/uuid"

	dErrors "bizform/pkg/domain-errors"
)

// Kind partitions the knowledge base.
type Kind string

const (
	KindNews      Kind = "news"
	KindArticle   Kind = "article"
	KindCaseStudy Kind = "case_study"
	KindFAQ       Kind = "faq"
)

// Kinds lists every content kind in display order.
func Kinds() []Kind {
	return []Kind{KindNews, KindArticle, KindCaseStudy, KindFAQ}
}

// ParseKind validates a kind from the URL path.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindNews, KindArticle, KindCaseStudy, KindFAQ:
		return Kind(s), nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown content kind %q", s)
}

// String returns the kind as a plain string.
func (k Kind) String() string { return string(k) }

// Item is one knowledge-base entry.
type Item struct {
	ID          uuid.UUID
	Kind        Kind
	Slug        string
	Title       string
	Summary     string
	Body        string
	Tags        []string
	PublishedAt time.Time
}

// overviewPerKind caps how many items each kind contributes to the overview.
const overviewPerKind = 3

// Overview is the landing-page digest: the most recent items of every kind.
type Overview struct {
	Sections map[Kind][]Item
}
