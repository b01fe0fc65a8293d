package expplot

import (
	"github.com/pkg/browser"
)

// Viewer shows a saved chart to the user.
type Viewer interface {
	Show(path string) error
}

// BrowserViewer opens charts with the desktop's default application.
type BrowserViewer struct{}

func (BrowserViewer) Show(path string) error {
	return browser.OpenFile(path)
}

// NopViewer does not show anything.
type NopViewer struct{}

func (NopViewer) Show(string) error { return nil }
