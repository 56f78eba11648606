// Package i18n localizes user-facing combat messages.
package i18n

import (
	"strings"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Russian is the second supported language.
var Russian = language.Russian

var supportedTags = []language.Tag{
	language.English,
	Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag picks the best supported language for an Accept-Language value.
func ResolveTag(acceptLanguage string) language.Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ErrorMessage renders the user-facing text for an error code. Metadata
// values fill the message arguments; unknown codes render as the code.
func ErrorMessage(tag language.Tag, code apperrors.Code, metadata map[string]string) string {
	entry, ok := errorMessages[code]
	if !ok {
		return string(code)
	}
	args := make([]any, 0, len(entry.args))
	for _, name := range entry.args {
		args = append(args, metadata[name])
	}
	return Printer(tag).Sprintf(errorKey(code), args...)
}

// RejectionMessage renders the user-facing text for a rejected action.
func RejectionMessage(tag language.Tag, reason string) string {
	if _, ok := rejectionMessages[reason]; !ok {
		reason = ReasonNotAllowed
	}
	return Printer(tag).Sprintf(rejectionKey(reason))
}

func errorKey(code apperrors.Code) string {
	return "error." + string(code)
}

func rejectionKey(reason string) string {
	return "rejection." + reason
}
