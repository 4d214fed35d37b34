package cratesio

import (
	"strings"
)

// FindStringNC find specified value in a list of string ignoring case of the strings
// return index of found item or -1 if value is not in the collection
func FindStringNC(collection []string, value string) int {
	value = strings.ToLower(value)
	for i := 0; i < len(collection); i++ {
		if strings.ToLower(collection[i]) == value {
			return i
		}
	}
	return -1
}
