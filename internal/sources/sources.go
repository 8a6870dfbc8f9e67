/*
Package sources holds the static registry of advisory sources. The registry
is immutable: it is built once and passed explicitly into the collector.
*/
package sources

import (
	"strings"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

// Kind selects the fetch strategy for a source.
type Kind string

const (
	KindFeed     Kind = "rss"
	KindXML      Kind = "xml"
	KindTelegram Kind = "telegram_public"
	KindHTML     Kind = "html"
)

// Descriptor describes one source. FeedURL, when set, is fetched instead of
// the canonical URL.
type Descriptor struct {
	Name     string
	URL      string
	FeedURL  string
	Kind     Kind
	Language string
	Region   string
	Note     string
}

// FetchURL returns the URL a strategy should actually fetch.
func (d Descriptor) FetchURL() string {
	if d.FeedURL != "" {
		return d.FeedURL
	}
	return d.URL
}

// browserSites routes known JavaScript-heavy sites to the headless browser
// strategy regardless of their declared kind.
var browserSites = []string{"Broadcom", "Stellar Cyber", "Fortinet"}

// NeedsBrowser reports whether the named source requires a scripted-page
// fetch.
func NeedsBrowser(name string) bool {
	for _, site := range browserSites {
		if strings.Contains(name, site) {
			return true
		}
	}
	return false
}

// Global returns the globally-scoped sources.
func Global() []Descriptor {
	return []Descriptor{
		{
			Name:     "Microsoft Security Response Center",
			URL:      "https://msrc.microsoft.com/update-guide/",
			FeedURL:  "https://api.msrc.microsoft.com/update-guide/rss",
			Kind:     KindFeed,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "Red Hat Security Advisories",
			URL:      "https://access.redhat.com/security/security-updates/",
			FeedURL:  "https://access.redhat.com/security/data/metrics/rhsa.rss",
			Kind:     KindFeed,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "Red Hat Security Data",
			URL:      "https://access.redhat.com/security/data",
			Kind:     KindHTML,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "Broadcom Security Advisories",
			URL:      "https://support.broadcom.com/group/ecx/security-advisories",
			Kind:     KindHTML,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "VMware Security Advisories",
			URL:      "https://www.vmware.com/security/advisories.xml",
			Kind:     KindXML,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "Fortinet FortiGuard PSIRT",
			URL:      "https://www.fortiguard.com/psirt",
			Kind:     KindHTML,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "Stellar Cyber Support",
			URL:      "https://stellarcyber.ai/support/",
			Kind:     KindHTML,
			Language: "en",
			Region:   types.RegionGlobal,
		},
		{
			Name:     "Stellar Cyber Trust Center",
			URL:      "https://stellarcyber.ai/trust-center/",
			Kind:     KindHTML,
			Language: "en",
			Region:   types.RegionGlobal,
		},
	}
}

// Latam returns the regionally-scoped sources.
func Latam() []Descriptor {
	return []Descriptor{
		{
			Name:     "CIAC Venezuela (Telegram)",
			URL:      "https://t.me/ciberciac",
			Kind:     KindTelegram,
			Language: "es",
			Region:   types.RegionLatam,
		},
		{
			Name:     "InfoDefensa CIAC",
			URL:      "https://www.infodefensa.com/tag/ciac",
			Kind:     KindHTML,
			Language: "es",
			Region:   types.RegionLatam,
		},
		{
			Name:     "VenCERT / SUSCERTE Boletines",
			URL:      "https://vencert.suscerte.gob.ve/boletines/",
			Kind:     KindHTML,
			Language: "es",
			Region:   types.RegionLatam,
		},
		{
			Name:     "Telefónica Tech Boletín Ciberseguridad",
			URL:      "https://telefonicatech.com/blog/boletin-ciberseguridad",
			Kind:     KindHTML,
			Language: "es",
			Region:   types.RegionLatam,
			Note:     "Always get the most recent weekly bulletin available",
		},
	}
}

// All returns every registered source, global first.
func All() []Descriptor {
	return append(Global(), Latam()...)
}
