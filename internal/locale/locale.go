// Package locale translates the fixed texts of the core packages. English is
// the source language and lives in the core; other languages are embedded
// message bundles keyed by stable message IDs.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/AkatukiSora/gto-poker-ref/internal/board"
	"github.com/AkatukiSora/gto-poker-ref/internal/opponent"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/tournament"
)

//go:embed locales
var localesFS embed.FS

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Supported lists the languages a Translator can be built for.
var Supported = []language.Tag{language.English, language.Italian}

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		slog.Error("failed to list locale bundles", "error", err)
		return b
	}
	for _, e := range entries {
		if _, err := b.LoadMessageFileFS(localesFS, "locales/"+e.Name()); err != nil {
			slog.Error("failed to load locale bundle", "file", e.Name(), "error", err)
		}
	}
	return b
}

// Translator renders core texts in one language.
type Translator struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New builds a Translator for a BCP 47 language tag such as "en" or "it-IT".
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, lang, err)
	}
	base, _ := tag.Base()
	for _, s := range Supported {
		sb, _ := s.Base()
		if sb == base {
			return &Translator{tag: s, localizer: i18n.NewLocalizer(bundle, s.String())}, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnsupportedLocale, lang)
}

// Language returns the tag the Translator renders.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Text returns the message for id, or fallback when the language has none.
func (t *Translator) Text(id, fallback string) string {
	if t == nil || t.tag == language.English {
		return fallback
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

// BoardDescription translates the rationale of a board analysis.
func (t *Translator) BoardDescription(a board.Analysis) string {
	if !a.Complete {
		return t.Text("BoardDescriptionPlaceholder", a.Description)
	}
	return t.Text("BoardDescription"+a.Texture.String(), a.Description)
}

// Tip translates one line of board advice.
func (t *Translator) Tip(tip board.Tip) string {
	return t.Text(tip.Key, tip.Text)
}

// Note translates a range remark.
func (t *Translator) Note(n ranges.Note) string {
	return t.Text(n.Key, n.Text)
}

// Pressure translates a tournament pressure remark.
func (t *Translator) Pressure(p tournament.Pressure) string {
	return t.Text(p.Key, p.Text)
}

// Profile returns a translated copy of an opponent profile.
func (t *Translator) Profile(p opponent.Profile) opponent.Profile {
	key := "Opponent" + p.Archetype.Key()
	out := opponent.Profile{
		Archetype:   p.Archetype,
		Description: t.Text(key+"Description", p.Description),
		ExploitTips: make([]string, len(p.ExploitTips)),
	}
	for i, tip := range p.ExploitTips {
		out.ExploitTips[i] = t.Text(key+"Tip"+strconv.Itoa(i+1), tip)
	}
	return out
}
