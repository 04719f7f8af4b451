package columns

import (
	"net/url"
	"strings"

	"github.com/komsit37/ticker/pkg/ticker/i18n"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Resolver converts company data into a display value for one field.
type Resolver func(loc i18n.Locale, c types.Company) types.Value

// Registry maps company-info field keys to resolvers.
var Registry = map[string]Resolver{}

// CompanyFields is the display order of the company info grid.
var CompanyFields = []string{"sector", "industry", "website", "ceo"}

func init() {
	// sector and industry come from free-form upstream data; unknown names
	// pass through untranslated.
	Registry["sector"] = func(loc i18n.Locale, c types.Company) types.Value {
		if c.Sector == "" {
			return types.NA
		}
		return types.Str(loc.Sector(c.Sector))
	}
	Registry["industry"] = func(loc i18n.Locale, c types.Company) types.Value {
		if c.Industry == "" {
			return types.NA
		}
		return types.Str(loc.Industry(c.Industry))
	}
	// website: full URL as delivered
	Registry["website"] = func(_ i18n.Locale, c types.Company) types.Value {
		return types.Str(strings.TrimSpace(c.Website))
	}
	// website_host: bare host, for narrow layouts
	Registry["website_host"] = func(_ i18n.Locale, c types.Company) types.Value {
		return types.Str(hostOnly(c.Website))
	}
	Registry["ceo"] = func(_ i18n.Locale, c types.Company) types.Value {
		return types.Str(strings.TrimSpace(c.CEO))
	}
}

// RenderValue calls the resolver for the given field. Unknown fields are
// unavailable.
func RenderValue(loc i18n.Locale, field string, c types.Company) types.Value {
	if r, ok := Registry[field]; ok {
		return r(loc, c)
	}
	return types.NA
}

func hostOnly(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" {
		if strings.Contains(u, "/") {
			return u
		}
		return strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
