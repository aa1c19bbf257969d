package console

import (
	"regexp"
	"strings"
)

// SetQueryParam sets key to value in uri's query, keeping any fragment.
func SetQueryParam(uri, key, value string) string {

	re := paramRegexp(key)
	if loc := re.FindStringSubmatchIndex(uri); loc != nil {
		return uri[:loc[0]] + uri[loc[2]:loc[3]] + key + "=" + value + uri[loc[4]:loc[5]] + uri[loc[1]:]
	}

	hash := ""
	if idx := strings.Index(uri, "#"); idx >= 0 {
		uri, hash = uri[:idx], uri[idx:]
	}

	separator := "?"
	if strings.Contains(uri, "?") {
		separator = "&"
	}

	return uri + separator + key + "=" + value + hash
}

// RemoveQueryParam drops key from uri's query along with one separator.
func RemoveQueryParam(uri, key string) string {

	re := paramRegexp(key)
	loc := re.FindStringSubmatchIndex(uri)
	if loc == nil {
		return uri
	}

	keep := uri[loc[4]:loc[5]]
	if keep == "&" {
		keep = uri[loc[2]:loc[3]]
	}

	return uri[:loc[0]] + keep + uri[loc[1]:]
}

func paramRegexp(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)([?&])` + regexp.QuoteMeta(key) + `=.*?(&|#|$)`)
}
