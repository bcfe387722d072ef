package internal

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for the strings the paged container renders itself.
const (
	MsgPageCounter = "PageCounter"
	MsgSwipeHint   = "SwipeHint"
)

var (
	i18nOnce  sync.Once
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func initI18n() {
	i18nOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.AddMessages(language.English,
			&i18n.Message{ID: MsgPageCounter, Other: "Page {{.Current}} of {{.Total}}"},
			&i18n.Message{ID: MsgSwipeHint, Other: "Swipe or use ← → to browse"},
		)
		bundle.AddMessages(language.Italian,
			&i18n.Message{ID: MsgPageCounter, Other: "Pagina {{.Current}} di {{.Total}}"},
			&i18n.Message{ID: MsgSwipeHint, Other: "Scorri o usa ← → per sfogliare"},
		)
		localizer = i18n.NewLocalizer(bundle, language.English.String())
	})
}

// SetLanguage switches the UI strings to the closest match for the given
// BCP 47 tags, falling back to English.
func SetLanguage(tags ...string) {
	initI18n()
	localizer = i18n.NewLocalizer(bundle, append(tags, language.English.String())...)
}

// Localize resolves a message ID with optional template data. Returns the
// message ID itself if localization fails; a raw ID on screen beats a
// blank label.
func Localize(messageID string, data map[string]interface{}) string {
	initI18n()
	s, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return s
}

// PageCounterLabel formats the localized "Page N of M" counter with
// 1-based page numbers.
func PageCounterLabel(current, total int) string {
	return Localize(MsgPageCounter, map[string]interface{}{
		"Current": current + 1,
		"Total":   total,
	})
}
