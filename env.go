package cratesio

import (
	"os"
	"strings"
)

// OverflowPolicyEnv name of the environment variable that select the default overflow policy
const OverflowPolicyEnv = "CRATESIO_OVERFLOW"

// ReadEnv Read an environment variable or a default value
func ReadEnv(envName, defaultValue string) string {
	value, ok := os.LookupEnv(envName)
	if !ok {
		value = defaultValue
	}
	return value
}

// DefaultOverflowPolicy read the policy from `CRATESIO_OVERFLOW`, falling back to `Wrap`
// when the variable is missing or blank. An unknown value is an error rather than a silent fallback
func DefaultOverflowPolicy() (OverflowPolicy, error) {
	name := strings.TrimSpace(ReadEnv(OverflowPolicyEnv, ""))
	if name == "" {
		return Wrap, nil
	}
	return ParseOverflowPolicy(name)
}
