package main

import "os"

// env returns the value of the named environment variable, or the fallback
// when the variable is not set. A variable set to an empty string counts as
// provided. Flag defaults use this so that QUORUMCLI_* variables can
// configure a whole pipeline at once.
func env(name, fallback string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return v
}
