// Package viewer shows a rendered figure in a desktop window with a PNG export.
package viewer

import (
	"fmt"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("viewer")

// Show opens a window with img and blocks until it is closed.
func Show(title string, img image.Image, exportName string) {
	a := app.NewWithID("com.plotplayground.viewer")
	w := NewWindow(a, title, img, exportName)
	logger.Infof("showing %q (%dx%d)", title, img.Bounds().Dx(), img.Bounds().Dy())
	w.ShowAndRun()
}

// NewWindow builds the figure window on an existing app without showing it.
func NewWindow(a fyne.App, title string, img image.Image, exportName string) fyne.Window {
	w := a.NewWindow(title)
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))

	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillContain
	chart.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
	status := widget.NewLabel(fmt.Sprintf("%d x %d px   Ctrl+S: export PNG", b.Dx(), b.Dy()))
	w.SetContent(container.NewBorder(nil, status, nil, nil, chart))

	export := func() { exportChartPNG(w, chart, exportName) }
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG…", export),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { w.Close() }),
	)
	w.SetMainMenu(fyne.NewMainMenu(fileMenu))

	if canv := w.Canvas(); canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { export() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { export() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { w.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { w.Close() })
	}
	return w
}

// export PNG
func exportChartPNG(w fyne.Window, img *canvas.Image, defaultName string) {
	if w == nil || img == nil || img.Image == nil {
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img.Image); err != nil {
			logger.Errorf("export %s: %v", wc.URI(), err)
			dialog.ShowError(err, w)
			return
		}
		logger.Infof("exported %s", wc.URI())
	}, w)
	fs.SetFileName(defaultName)
	fs.Show()
}
