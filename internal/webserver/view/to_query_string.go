package view

import (
	"html/template"
	"net/url"
	"sort"
	"strings"
)

// ToQueryString composes a query string from the given parameters, with keys
// sorted alphabetically so the output is stable.
func ToQueryString(params map[string]string) template.URL {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(params))
	for _, key := range keys {
		if params[key] == "" {
			continue
		}
		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}
	return template.URL(strings.Join(pairs, "&"))
}
