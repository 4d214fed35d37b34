package art

import (
	"fmt"
	"io"

	"github.com/ittokunvim/cratesio"
)

const (
	NoColorCode RGBCode     = 0xFFFFFFFF
	TTY         TTYContext  = true
	MonoColor   TTYContext  = false
	HTML        HTMLContext = true
)

//region RGBCode: RGB representation of a color
type RGBCode uint32

func (this RGBCode) IsColor() bool  { return this != NoColorCode }
func (this RGBCode) Red() uint8     { return uint8((this >> 16) & 0xFF) }
func (this RGBCode) Green() uint8   { return uint8((this >> 8) & 0xFF) }
func (this RGBCode) Blue() uint8    { return uint8((this >> 0) & 0xFF) }
func (this RGBCode) String() string { return fmt.Sprintf("#%06X", uint32(this&0xFFFFFF)) }

// endregion

// Color anything that has a name and an RGB code, both PrimaryColor and SecondaryColor are colors
type Color interface {
	fmt.Stringer
	Code() RGBCode
}

type ColorContext interface {
	Name() string
	Write(w io.Writer, code RGBCode, content string) error
}

func writeToWriter(w io.Writer, buf []byte) error {
	_, err := w.Write(buf)
	return err
}

//region TTYContext: A ``ColorContext`` that support ``TTY`` coloring and ``MonoColor``
type TTYContext bool

var (
	ttyStartColor = []byte("\033[")
	ttyEndColor   = []byte{'m'}
	ttyResetColor = []byte("\033[0m")
)

func (this TTYContext) writeColor(w io.Writer, code RGBCode) (bool, error) {
	if !bool(this) || !code.IsColor() {
		return false, nil
	}

	err := writeToWriter(w, ttyStartColor)
	if err != nil {
		return false, err
	}

	clrText := fmt.Sprintf("38;2;%d;%d;%d", code.Red(), code.Green(), code.Blue())
	err = writeToWriter(w, []byte(clrText))
	if err != nil {
		return false, err
	}

	return true, writeToWriter(w, ttyEndColor)
}

func (this TTYContext) Name() string {
	if this {
		return "TTY"
	} else {
		return "MonoColor"
	}
}
func (this TTYContext) Write(w io.Writer, code RGBCode, content string) error {
	requireReset, err := this.writeColor(w, code)
	if err != nil {
		return err
	}

	err = writeToWriter(w, []byte(content))
	if err != nil {
		return err
	}

	if requireReset {
		return writeToWriter(w, ttyResetColor)
	}
	return nil
}

//endregion

//region HTMLContext: a ``ColorContext`` that support HTML coloring
type HTMLContext bool

var (
	htmlColorStartFormat = `<span style="color:%s">`
	htmlEndColor         = []byte("</span>")
)

func (this HTMLContext) Name() string { return "HTML" }
func (this HTMLContext) Write(w io.Writer, code RGBCode, content string) error {
	if !code.IsColor() {
		return writeToWriter(w, []byte(content))
	}

	start := fmt.Sprintf(htmlColorStartFormat, code.String())
	err := writeToWriter(w, []byte(start))
	if err != nil {
		return err
	}

	err = writeToWriter(w, []byte(content))
	if err != nil {
		return err
	}

	return writeToWriter(w, htmlEndColor)
}

//endregion

// Get default context that must used to write content to a writer.
// This will return ``TTY`` if w is a TTY and ``MonoColor`` otherwise
func GetDefaultContext(w io.Writer) ColorContext {
	if cratesio.IsTerminalWriter(w) {
		return TTY
	} else {
		return MonoColor
	}
}

// RenderTo write name of the color to ``w``, painted with the color itself when ``context`` support it.
// A nil ``context`` means the default context of ``w``
func RenderTo(w io.Writer, context ColorContext, color Color) error {
	if context == nil {
		context = GetDefaultContext(w)
	}
	return context.Write(w, color.Code(), color.String())
}

func Render(w io.Writer, color Color) error { return RenderTo(w, nil, color) }
