package git

import (
	"github.com/charmbracelet/log"
)

var pkgLogger *log.Logger

func logger() *log.Logger {
	if pkgLogger == nil {
		pkgLogger = log.Default().With("package", "git")
	}

	return pkgLogger
}
