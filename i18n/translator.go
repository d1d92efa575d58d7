package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "discriminator").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "invalid_type":
			return "型が不正です"
		case "missing_required_field":
			return "必須プロパティが不足しています"
		case "field_type_mismatch":
			return "プロパティの型が一致しません"
		case "unknown_discriminator":
			return "未知の識別子です"
		case "malformed_identifier":
			return "識別子の形式が不正です"
		case "malformed_flexible_value":
			return "値の形式が不正です"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "parse error"
		case "invalid_type":
			return "invalid type"
		case "missing_required_field":
			return "required property missing"
		case "field_type_mismatch":
			return "property type mismatch"
		case "unknown_discriminator":
			return "unknown discriminator"
		case "malformed_identifier":
			return "malformed identifier"
		case "malformed_flexible_value":
			return "malformed value"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
