package logview

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/augray/ray/internal/logutil"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// ParseListing reads an HTML directory listing from r. Anchor links are
// resolved against base, which may be nil. isIndex keeps scheme and host on
// every link. Names are the item text as displayed, with markup whitespace
// collapsed.
func ParseListing(r io.Reader, base *url.URL, isIndex bool) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	entries := []Entry{}
	doc.Find("li").Each(func(i int, li *goquery.Selection) {
		name := displayText(li)
		anchor := li.ChildrenFiltered("a").First()
		if anchor.Length() == 0 {
			log.Printf("[logview] skipping list item %d without anchor: %q", i, logutil.SanitizeForLog(name))
			return
		}

		href, u := resolveHref(base, anchor.AttrOr("href", ""))
		if !isIndex && !hasScheme(name) && u != nil && u.Scheme != "" {
			href = strings.Replace(href, u.Scheme+"://"+u.Host, "", 1)
		}
		entries = append(entries, Entry{Name: name, Href: href})
	})
	return entries, nil
}

// displayText returns the text of s with whitespace runs collapsed to a single
// space and trimmed, as a browser renders it.
func displayText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// resolveHref resolves href against base. The parsed URL is nil when href
// cannot be parsed, in which case href is returned unchanged.
func resolveHref(base *url.URL, href string) (string, *url.URL) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href, nil
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	return ref.String(), ref
}
