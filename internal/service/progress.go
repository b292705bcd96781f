// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// stageCount is the number of stages a successful run passes through.
const stageCount = 3

// Progress reports the advance of a run through its stages.
type Progress interface {
	Describe(description string)
	Add(num int) error
	Clear() error
	Finish() error
}

// TerminalProgress returns a progress bar writing to file if file is a terminal.
// Otherwise nil is returned and no progress is shown.
func TerminalProgress(file *os.File) Progress {
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return nil
	}
	return progressbar.NewOptions(stageCount,
		progressbar.OptionSetDescription(AwaitingInput.String()),
		progressbar.OptionSetWriter(file),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
