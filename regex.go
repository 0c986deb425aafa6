package main

import (
	"regexp"
	"strings"
)

/* Compile the user supplied new-line separated list of regex
 * statements restricting files from showing in directory
 * listings. Returns nil when the list is empty, so the default
 * server lists every child.
 */
func compileRestrictedFilesRegex(restrictedFiles string) ([]*regexp.Regexp, error) {
	if restrictedFiles == "" {
		return nil, nil
	}

	compiled := make([]*regexp.Regexp, 0)
	for _, expr := range strings.Split(restrictedFiles, "\n") {
		if expr == "" {
			continue
		}

		regex, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, regex)
	}

	return compiled, nil
}

func isRestrictedFile(restricted []*regexp.Regexp, name string) bool {
	for _, regex := range restricted {
		if regex.MatchString(name) {
			return true
		}
	}
	return false
}
