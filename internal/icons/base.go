package icons

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"appicon/internal/pngcodec"
	"appicon/internal/raster"
)

// MissingInputError reports that neither form of the base icon exists.
type MissingInputError struct {
	PNGPath    string
	Base64Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing base icon: provide %s or a base64 source at %s", e.PNGPath, e.Base64Path)
}

// Source tells which file the base icon was read from.
type Source struct {
	Path   string
	Base64 bool
}

// LoadBase decodes the base icon from pngPath, falling back to the base64
// text at b64Path when the PNG does not exist.
func LoadBase(pngPath, b64Path string) (*raster.Image, Source, error) {
	data, src, err := readBase(pngPath, b64Path)
	if err != nil {
		return nil, Source{}, err
	}
	img, err := pngcodec.Decode(data)
	if err != nil {
		return nil, Source{}, fmt.Errorf("decode base icon %s: %w", src.Path, err)
	}
	return img, src, nil
}

func readBase(pngPath, b64Path string) ([]byte, Source, error) {
	if pngPath != "" {
		data, err := os.ReadFile(pngPath)
		if err == nil {
			return data, Source{Path: pngPath}, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, Source{}, fmt.Errorf("read base icon: %w", err)
		}
	}
	if b64Path != "" {
		text, err := os.ReadFile(b64Path)
		if err == nil {
			data, decodeErr := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(text)), ""))
			if decodeErr != nil {
				return nil, Source{}, fmt.Errorf("decode base64 icon %s: %w", b64Path, decodeErr)
			}
			return data, Source{Path: b64Path, Base64: true}, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, Source{}, fmt.Errorf("read base64 icon: %w", err)
		}
	}
	return nil, Source{}, &MissingInputError{PNGPath: pngPath, Base64Path: b64Path}
}
