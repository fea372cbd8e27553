package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// markerPattern matches [M:SS], [MM:SS], [H:MM:SS] and [HH:MM:SS].
var markerPattern = regexp.MustCompile(`\[(\d{1,2}:\d{2}(?::\d{2})?)\]`)

// ToSeconds converts "M:SS" or "H:MM:SS" into a second offset.
// Anything else resolves to 0. Fields are not range checked, so "1:75" is 135.
func ToSeconds(ts string) int {
	parts := strings.Split(ts, ":")

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0
		}
		nums[i] = n
	}

	switch len(nums) {
	case 2:
		return nums[0]*60 + nums[1]
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2]
	default:
		return 0
	}
}

// Link rewrites every bracketed timestamp in markdown into an anchor that
// opens baseURL at the matching offset. The visible text keeps the brackets.
// It works on raw text and must run before markdown conversion.
func Link(markdown, baseURL string) string {
	href := strings.ReplaceAll(baseURL, `"`, "%22")

	return markerPattern.ReplaceAllStringFunc(markdown, func(marker string) string {
		ts := marker[1 : len(marker)-1]
		return fmt.Sprintf(`<a href="%s&start=%d" target="_blank">%s</a>`, href, ToSeconds(ts), marker)
	})
}

// Find returns the timestamps found in markdown, without brackets, in order.
func Find(markdown string) []string {
	matches := markerPattern.FindAllStringSubmatch(markdown, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
