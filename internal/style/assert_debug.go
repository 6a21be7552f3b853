//go:build restyledebug

package style

// failOnMisuse turns collector misuse into a panic in debug builds.
const failOnMisuse = true
