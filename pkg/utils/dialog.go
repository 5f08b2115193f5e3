package utils

import "github.com/sqweek/dialog"

// AskForFile opens a native file dialog and returns the chosen path.
func AskForFile(title, startingDir string) (string, error) {
	builder := dialog.File().SetStartDir(startingDir).Title(title)
	return builder.Load()
}
