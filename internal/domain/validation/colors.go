// Package validation holds value checks shared by the config layer.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHexColor returns a validation message when value is not #RRGGBB.
func ValidateHexColor(key, value string) []string {
	if IsHexColor(value) {
		return nil
	}
	return []string{key + " must be a hex color like #RRGGBB"}
}
