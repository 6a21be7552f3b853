//go:build !restyledebug

package style

const failOnMisuse = false
