package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
)

//go:embed *.json
var fs embed.FS

// translations stores flattened keys: "en" -> "nav.home" -> "Home"
var (
	translations = make(map[string]map[string]string)
	mutex        sync.RWMutex
	defaultLang  = "en"
)

// SupportedLanguages lists the languages the site ships, in display order.
var SupportedLanguages = []string{"en", "ar"}

// IsSupported reports whether lang is one of the shipped locales.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// IsRTL reports whether lang renders right-to-left.
func IsRTL(lang string) bool {
	return lang == "ar"
}

// Dir returns the html dir attribute value for lang.
func Dir(lang string) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

// Load initializes the translations from the embedded JSON files.
func Load() error {
	mutex.Lock()
	defer mutex.Unlock()

	entries, err := fs.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			lang := strings.TrimSuffix(entry.Name(), ".json")
			content, err := fs.ReadFile(entry.Name())
			if err != nil {
				return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
			}

			var result map[string]interface{}
			if err := json.Unmarshal(content, &result); err != nil {
				return fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
			}

			flat := make(map[string]string)
			flatten("", result, flat)
			translations[lang] = flat
			log.Printf("Loaded locale: %s (%d keys)", lang, len(flat))
		}
	}

	return nil
}

// flatten recursively flattens a nested map into dot-notation keys.
func flatten(prefix string, nested map[string]interface{}, result map[string]string) {
	for k, v := range nested {
		newKey := k
		if prefix != "" {
			newKey = prefix + "." + k
		}

		switch child := v.(type) {
		case map[string]interface{}:
			flatten(newKey, child, result)
		case string:
			result[newKey] = child
		default:
			result[newKey] = fmt.Sprintf("%v", child)
		}
	}
}

// T retrieves a translation for the given key using the language from the
// context. Missing keys fall back to the default language, then to the key
// itself. Supports simple {name} replacement when args are provided.
func T(ctx context.Context, key string, args ...map[string]interface{}) string {
	return Translate(GetLocale(ctx), key, args...)
}

// Translate retrieves a translation for a specific language code.
func Translate(lang, key string, args ...map[string]interface{}) string {
	mutex.RLock()
	defer mutex.RUnlock()

	if trans, ok := translations[lang]; ok {
		if val, ok := trans[key]; ok {
			return format(val, args...)
		}
	}

	if lang != defaultLang {
		if trans, ok := translations[defaultLang]; ok {
			if val, ok := trans[key]; ok {
				return format(val, args...)
			}
		}
	}

	return key
}

// format replaces {var} placeholders with values from args if present.
func format(text string, args ...map[string]interface{}) string {
	if len(args) == 0 {
		return text
	}

	vars := args[0]
	for k, v := range vars {
		placeholder := "{" + k + "}"
		text = strings.ReplaceAll(text, placeholder, fmt.Sprintf("%v", v))
	}
	return text
}

// Keys for context storage
type contextKey string

const LocaleContextKey contextKey = "locale"

// GetLocale extracts the locale from the context, defaulting to "en".
// The locale middleware stores the value under LocaleContextKey.
func GetLocale(ctx context.Context) string {
	if val := ctx.Value(LocaleContextKey); val != nil {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultLang
}
