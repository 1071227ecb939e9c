package core

// Color is a foreground color for a screen cell, mapped to an ANSI 256-color
// code by the terminal front end.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrass
	ColorGridLine
	ColorHouse
	ColorShop
	ColorFactory
	ColorPark
	ColorPreviewOK
	ColorPreviewBad
	ColorCursor
	ColorText
	ColorMuted
)
