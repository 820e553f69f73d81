package app

import (
	"strings"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/domain"
)

/********** alias registries (single source of truth) **********/

var placeAliases = map[string][]string{
	"name":        {"name", "title"},
	"description": {"description", "desc", "summary"},
	"image":       {"imageUrl", "image_url", "imageURL", "image", "image.url"},
}

var documentKeys = map[domain.Category][]string{
	domain.CategoryCountries: {"countries"},
	domain.CategoryBeaches:   {"beaches"},
	domain.CategoryTemples:   {"temples"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty trimmed string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// objects returns the map elements of the first array found under keys.
// Missing keys and non-array values yield nil.
func objects(m map[string]any, keys ...string) []map[string]any {
	for _, k := range keys {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, it := range raw {
			if obj, ok := it.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		return out
	}
	return nil
}

/********** document mapper **********/

// mapCatalog converts the raw document into a Catalog. Missing top-level
// arrays map to empty slices; absent optional fields stay nil.
func mapCatalog(doc map[string]any) domain.Catalog {
	c := domain.Catalog{
		Countries: []domain.Country{},
		Beaches:   []domain.Beach{},
		Temples:   []domain.Temple{},
	}
	for _, raw := range objects(doc, documentKeys[domain.CategoryCountries]...) {
		c.Countries = append(c.Countries, mapCountry(raw))
	}
	for _, raw := range objects(doc, documentKeys[domain.CategoryBeaches]...) {
		c.Beaches = append(c.Beaches, mapPlace(raw))
	}
	for _, raw := range objects(doc, documentKeys[domain.CategoryTemples]...) {
		c.Temples = append(c.Temples, mapPlace(raw))
	}

	for _, cat := range domain.Categories {
		for _, k := range documentKeys[cat] {
			if v, ok := doc[k]; ok {
				if _, isArr := v.([]any); !isArr {
					log.Warn().Str("key", k).Msg("catalog key is not an array; treated as empty")
				}
			}
		}
	}
	return c
}

func mapCountry(m map[string]any) domain.Country {
	out := domain.Country{Name: deref(firstNonEmptyAlias(m, placeAliases, "name"))}
	for _, raw := range objects(m, "cities") {
		p := mapPlace(raw)
		out.Cities = append(out.Cities, domain.City{
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}
	return out
}

func mapPlace(m map[string]any) domain.Place {
	return domain.Place{
		Name:        deref(firstNonEmptyAlias(m, placeAliases, "name")),
		Description: deref(firstNonEmptyAlias(m, placeAliases, "description")),
		ImageURL:    firstNonEmptyAlias(m, placeAliases, "image"),
	}
}
