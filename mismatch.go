package divbench

import (
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// MismatchLedger aggregates failed cross-checks by check site. A site is
// one domain/strategy pairing; per site the ledger keeps the total hit
// count and the set of distinct offending divisor patterns, so exhaustive
// sweeps stay cheap even when a check fires for millions of divisors.
type MismatchLedger struct {
	sites map[string]*mismatchSite
}

type mismatchSite struct {
	count uint64
	// Exactly one of the two bitmaps is set, matching the domain width.
	narrow *roaring.Bitmap
	wide   *roaring64.Bitmap
}

// NewMismatchLedger creates an empty ledger.
func NewMismatchLedger() *MismatchLedger {
	return &MismatchLedger{
		sites: make(map[string]*mismatchSite),
	}
}

// Record notes one failed cross-check at the domain/strategy site.
func (l *MismatchLedger) Record(d Domain, s Strategy, divisorBits uint64) {
	key := d.String() + "/" + s.String()
	site, ok := l.sites[key]
	if !ok {
		site = &mismatchSite{}
		if d.Wide() {
			site.wide = roaring64.New()
		} else {
			site.narrow = roaring.New()
		}
		l.sites[key] = site
	}

	site.count++
	if site.wide != nil {
		site.wide.Add(divisorBits)
	} else {
		site.narrow.Add(uint32(divisorBits))
	}
}

// Contains reports whether a mismatch was recorded for the divisor at the
// given site.
func (l *MismatchLedger) Contains(d Domain, s Strategy, divisorBits uint64) bool {
	site, ok := l.sites[d.String()+"/"+s.String()]
	if !ok {
		return false
	}
	if site.wide != nil {
		return site.wide.Contains(divisorBits)
	}
	return site.narrow.Contains(uint32(divisorBits))
}

// Total returns the number of recorded mismatches across all sites.
func (l *MismatchLedger) Total() uint64 {
	var n uint64
	for _, site := range l.sites {
		n += site.count
	}
	return n
}

// MismatchSite summarizes one check site of the ledger.
type MismatchSite struct {
	// Site is the domain/strategy identifier of the check.
	Site string

	// Count is the number of failed checks recorded at the site.
	Count uint64

	// Divisors is the number of distinct offending divisors.
	Divisors uint64
}

// Sites returns per-site summaries ordered by site name.
func (l *MismatchLedger) Sites() []MismatchSite {
	out := make([]MismatchSite, 0, len(l.sites))
	for key, site := range l.sites {
		s := MismatchSite{Site: key, Count: site.count}
		if site.wide != nil {
			s.Divisors = site.wide.GetCardinality()
		} else {
			s.Divisors = site.narrow.GetCardinality()
		}
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b MismatchSite) int {
		return strings.Compare(a.Site, b.Site)
	})
	return out
}
