package pkg

import (
	"regexp"
	"strings"
)

// pathParamsRe finds the dynamic pieces of a route path: a ":name"
// parameter (any run of non-'/' characters after the colon) or a "*" glob.
// The (?s) flag keeps '.' matching newlines so paths carrying unusual
// bytes still match.
var pathParamsRe = regexp.MustCompile(`(?s)(?::([^/]+))|(?:\*)`)

// generateCommonRegexStr translates a route path into the shared body of
// both the exact-match and prefix-match regexes, plus the ordered list of
// parameter names. Literal pieces are regex-escaped; ":name" becomes
// "([^/]+)" and "*" becomes "(.*)" with the parameter name "*".
func generateCommonRegexStr(path string) (string, []string) {
	var regexStr strings.Builder
	var paramNames []string

	pos := 0
	for _, loc := range pathParamsRe.FindAllStringSubmatchIndex(path, -1) {
		regexStr.WriteString(regexp.QuoteMeta(path[pos:loc[0]]))

		if path[loc[0]:loc[1]] == "*" {
			regexStr.WriteString(`(.*)`)
			paramNames = append(paramNames, "*")
		} else {
			regexStr.WriteString(`([^/]+)`)
			paramNames = append(paramNames, path[loc[2]:loc[3]])
		}

		pos = loc[1]
	}

	regexStr.WriteString(regexp.QuoteMeta(path[pos:]))

	return regexStr.String(), paramNames
}

// generateExactMatchRegex compiles a route path into an anchored "^...$"
// regex along with the ordered parameter names.
func generateExactMatchRegex(path string) (*regexp.Regexp, []string, error) {
	common, params := generateCommonRegexStr(path)
	reStr := `(?s)^` + common + `$`

	if err := ValidatePattern(reStr); err != nil {
		return nil, nil, NewBadRoutePatternError(path, err)
	}

	re, err := regexp.Compile(reStr)
	if err != nil {
		return nil, nil, NewBadRoutePatternError(path, err)
	}

	return re, params, nil
}

// generatePrefixMatchRegex compiles a route path into an anchored "^..."
// regex that matches any target the path is a prefix of.
func generatePrefixMatchRegex(path string) (*regexp.Regexp, []string, error) {
	common, params := generateCommonRegexStr(path)
	reStr := `(?s)^` + common

	if err := ValidatePattern(reStr); err != nil {
		return nil, nil, NewBadRoutePatternError(path, err)
	}

	re, err := regexp.Compile(reStr)
	if err != nil {
		return nil, nil, NewBadRoutePatternError(path, err)
	}

	return re, params, nil
}
