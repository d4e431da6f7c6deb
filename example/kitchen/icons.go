package main

import (
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var Send *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ContentSend)
	return icon
}()

var Brightness *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ImageBrightness6)
	return icon
}()
