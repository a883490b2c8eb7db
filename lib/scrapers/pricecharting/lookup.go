// Package pricecharting scrapes resale price estimates for console games
// from www.pricecharting.com.
package pricecharting

import (
	"fmt"
	"net/url"
	"strings"

	"pricetracker/lib/inventory"
	"pricetracker/lib/textutil"
)

const DefaultHost = "https://www.pricecharting.com"

// LookupKey is the normalized, URL-ready identifier derived from one
// inventory row. Built once per row, never mutated.
type LookupKey struct {
	PlatformSlug string
	// "pal-", "jp-" or empty, depending on the release region
	RegionPrefix string
	TitleSlug    string
	Condition    inventory.Condition
}

// NewLookupKey normalizes a row into its lookup key. Pure and total: a
// malformed condition code is carried through untouched and surfaces as an
// unknown-condition result at extraction time, not here.
func NewLookupKey(row inventory.Row) LookupKey {
	prefix := ""
	switch strings.ToLower(strings.TrimSpace(row.Region)) {
	case "pal":
		prefix = "pal-"
	case "ntsc-j":
		prefix = "jp-"
	}

	return LookupKey{
		PlatformSlug: textutil.Slugify(row.Platform),
		RegionPrefix: prefix,
		TitleSlug:    url.PathEscape(textutil.Slugify(row.Title)),
		Condition:    inventory.ParseCondition(string(row.Condition)),
	}
}

// URL renders the fetch target for this key. It never fails; a malformed
// key simply produces a page the site will not know.
func (k LookupKey) URL(host string) string {
	return fmt.Sprintf("%s/game/%s%s/%s", host, k.RegionPrefix, k.PlatformSlug, k.TitleSlug)
}
