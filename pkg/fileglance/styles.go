package fileglance

import "github.com/gdamore/tcell/v2"

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TableHeaderColor tcell.Color

	PathOKColor      tcell.Color
	PathMissingColor tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,

	PathOKColor:      tcell.ColorGreen,
	PathMissingColor: tcell.ColorRed,
}
