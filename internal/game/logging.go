package game

import (
	"io"

	"github.com/charmbracelet/log"
)

var discardLogger = log.New(io.Discard)

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return discardLogger
	}
	return l
}
