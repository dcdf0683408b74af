package noargio

import (
	"os"
	"strconv"
)

func fallbackTermSizeFromEnv() (int, int) {
	var w, h int
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		w = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		h = v
	}
	return w, h
}
