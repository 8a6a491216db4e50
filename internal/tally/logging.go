package tally

import (
	"github.com/charmbracelet/log"
)

var pkgLogger *log.Logger

func logger() *log.Logger {
	if pkgLogger == nil {
		pkgLogger = log.Default().With("package", "tally")
	}

	return pkgLogger
}
