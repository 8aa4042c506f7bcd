package utils

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// RoundHalfUp rounds to one decimal place, halves away from zero
func RoundHalfUp(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}

// DefaultAvatarURL derives a stable placeholder avatar from the username
func DefaultAvatarURL(username string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(username))
}

// DefaultPosterURL derives a stable placeholder poster from the movie title
func DefaultPosterURL(title string) string {
	return fmt.Sprintf("https://placehold.co/400x600?text=%s", url.QueryEscape(title))
}
