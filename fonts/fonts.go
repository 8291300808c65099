package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go fonts under every name the game
// draws with.
func LoadDefaults() error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 14},
		{Bold, gobold.TTF, 20},
		{Title, gobold.TTF, 40},
		{Small, goregular.TTF, 10},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether a face has been registered under name.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
