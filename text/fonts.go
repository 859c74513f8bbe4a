// Package text holds the graphics layer side of the font resolution:
// a cache of the fonts loaded from @font-face sources, and the bridge
// to the pango font system.
package text

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/benoitkugler/fontvalues/fontface"
	"github.com/benoitkugler/fontvalues/logger"
	"github.com/benoitkugler/fontvalues/utils"
	"github.com/benoitkugler/textlayout/fonts"
	fc "github.com/benoitkugler/textprocessing/fontconfig"
)

// FontOrigin is a reference to a binary font file, either
// on disk or stored in memory.
type FontOrigin struct {
	File string // The filename or identifier of the font file.

	// The index of the face in a collection. It is always 0 for
	// single font files.
	Index uint16

	// For variable fonts, stores 1 + the instance index.
	// (0 to ignore variations).
	Instance uint16
}

// FontCache loads and stores the fonts declared by @font-face rules,
// feeding on the effective sources sent by the style engine.
//
// It is drained by a single consumer; concurrent use requires external
// synchronization.
type FontCache struct {
	userFonts    map[FontOrigin]fonts.Face
	fontsContent map[string][]byte // to be embedded in the target

	localFonts map[string]string // family name to font file
}

func NewFontCache() *FontCache {
	return &FontCache{
		userFonts:    make(map[FontOrigin]fonts.Face),
		fontsContent: make(map[string][]byte),
		localFonts:   make(map[string]string),
	}
}

// AddLocalFont registers an installed font file, so that local()
// sources for [family] resolve to it.
func (f *FontCache) AddLocalFont(family, file string) {
	f.localFonts[family] = file
}

// AddFontFace drains [sources] in priority order and loads the first
// usable one, using the given [urlFetcher], which must be valid.
//
// It returns the file name of the loaded file, or the empty string
// when no source could be loaded.
func (f *FontCache) AddFontFace(family string, sources fontface.EffectiveSources, urlFetcher utils.UrlFetcher) string {
	for {
		source, ok := sources.Pop()
		if !ok {
			break
		}

		filename, err := f.loadOneFont(source, urlFetcher)
		if err != nil {
			logger.WarningLogger.Println(err)
			continue
		}

		return filename
	}

	logger.WarningLogger.Printf("Font-face %s cannot be loaded", family)
	return ""
}

func (f *FontCache) loadOneFont(source fontface.Source, urlFetcher utils.UrlFetcher) (string, error) {
	url := source.String
	if source.Name == fontface.SourceLocal {
		file, ok := f.localFonts[source.String]
		if !ok {
			return "", fmt.Errorf("failed to get matching local font for %s", source.String)
		}
		url = file
	}
	if url == "" {
		return "", errors.New("ignored source with unresolved url")
	}

	result, err := urlFetcher(url)
	if err != nil {
		return "", fmt.Errorf("failed to load font at: %s", err)
	}
	content, err := io.ReadAll(result.Content)
	if err != nil {
		return "", fmt.Errorf("failed to load font at %s", url)
	}

	faces, format := fc.ReadFontFile(bytes.NewReader(content))
	if format == "" {
		return "", fmt.Errorf("failed to load font at %s : unsupported format", url)
	}

	if len(faces) != 1 {
		return "", fmt.Errorf("font collections are not supported (%s)", url)
	}

	key := FontOrigin{
		File: url,
	}
	f.userFonts[key] = faces[0]
	f.fontsContent[key.File] = content

	return url, nil
}

// FontContent returns the content of the given font, which may be
// needed in the final output.
func (f *FontCache) FontContent(font FontOrigin) []byte {
	return f.fontsContent[font.File]
}
