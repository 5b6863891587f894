package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides the values substituted into the message (for example,
// "subject", "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// Message keys refine an issue code where the wording differs. A key of the
// form "code.variant" falls back to "code" when a dictionary lacks it.
var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":             "{subject}: expected {expected}, got {got}",
		"required":                 "{subject}: required prop missing",
		"required.field":           "{subject}: required field missing",
		"unknown_key":              "{subject}: unknown prop '{key}'",
		"unknown_key.field":        "{subject}: unknown field '{key}'",
		"invalid_enum":             "{subject}: expected one of [{allowed}], got \"{got}\"",
		"invalid_enum.live_region": "{subject}: expected 'polite' or 'assertive', got '{got}'",
		"unknown_role":             "{subject}: unknown role '{got}', expected one of [{allowed}]",
		"children_not_allowed":     "{subject}: does not accept children, but got {count}",
		"unknown_component":        "Unknown {category} component: {component}",
		"unknown_component.any":    "Unknown component: {component}",
		"duplicate_key":            "duplicate key",
		"parse_error":              "parse error",
		"overflow":                 "number out of range",
		"hint.allowed":             "use one of: {allowed}",
	},
	"ja": {
		"invalid_type":             "{subject}: {expected} が必要ですが {got} が指定されました",
		"required":                 "{subject}: 必須プロパティが不足しています",
		"required.field":           "{subject}: 必須フィールドが不足しています",
		"unknown_key":              "{subject}: 未知のプロパティ '{key}' です",
		"unknown_key.field":        "{subject}: 未知のフィールド '{key}' です",
		"invalid_enum":             "{subject}: [{allowed}] のいずれかが必要ですが \"{got}\" が指定されました",
		"invalid_enum.live_region": "{subject}: 'polite' または 'assertive' が必要ですが '{got}' が指定されました",
		"unknown_role":             "{subject}: 未知のロール '{got}' です。[{allowed}] のいずれかを指定してください",
		"children_not_allowed":     "{subject}: 子要素を持てませんが {count} 個指定されました",
		"unknown_component":        "未知の{category}コンポーネントです: {component}",
		"unknown_component.any":    "未知のコンポーネントです: {component}",
		"duplicate_key":            "キーが重複しています",
		"parse_error":              "解析エラー",
		"overflow":                 "数値が範囲外です",
		"hint.allowed":             "使用可能な値: {allowed}",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict := dictionaries[t.lang]
	tmpl, ok := dict[code]
	if !ok {
		if base, _, found := strings.Cut(code, "."); found {
			tmpl, ok = dict[base]
		}
	}
	if !ok {
		return code
	}
	return Format(tmpl, data)
}

// Format substitutes {name} placeholders from data. Unknown placeholders are
// left as written.
func Format(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
