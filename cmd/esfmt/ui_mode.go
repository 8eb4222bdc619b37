package main

import (
	"fmt"
	"os"
	"strings"
)

// progressMode is the value of --ui.
type progressMode uint8

const (
	progressAuto progressMode = iota
	progressAlways
	progressNever
)

var progressModeNames = map[string]progressMode{
	"":     progressAuto,
	"auto": progressAuto,
	"on":   progressAlways,
	"off":  progressNever,
}

func (m progressMode) String() string {
	switch m {
	case progressAlways:
		return "on"
	case progressNever:
		return "off"
	}
	return "auto"
}

func parseProgressMode(value string) (progressMode, error) {
	m, ok := progressModeNames[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return progressAuto, fmt.Errorf("--ui: unknown mode %q, use auto, on or off", value)
	}
	return m, nil
}

// enabled: auto рисует прогресс только в терминал и только когда файлов больше одного.
func (m progressMode) enabled(files int, out *os.File) bool {
	if m != progressAuto {
		return m == progressAlways
	}
	return files > 1 && isTerminal(out)
}
