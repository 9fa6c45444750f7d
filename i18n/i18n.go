// Package i18n is the ru/kz UI string table. Lookup mirrors the data-model
// rule: fall back to Russian when the requested variant is missing, and to
// the key itself when neither exists.
package i18n

import "atyraumap/types"

var tables = map[types.Lang]map[string]string{
	types.LangRU: {
		"title":           "Цифровая карта прокуратуры города Атырау",
		"subtitle":        "Мониторинг безопасности городской среды",
		"categories":      "Категории",
		"cat_blind":       "Слепые зоны (нет камер)",
		"cat_abandoned":   "Заброшенные здания",
		"cat_unlit":       "Неосвещённые улицы",
		"cat_crime":       "Криминальные происшествия",
		"statistics":      "Статистика",
		"stat_total":      "Всего точек:",
		"stat_pending":    "Предложений на модерации:",
		"badge_blind":     "Слепая зона",
		"badge_abandoned": "Заброшенное здание",
		"badge_unlit":     "Неосвещённая улица",
		"badge_crime":     "Происшествие",
		"footer_hint":     "Нажмите на точку для подробной информации",
		"login_error":     "Неверный пароль",
	},
	types.LangKZ: {
		"title":           "Атырау қаласы прокуратурасының цифрлік картасы",
		"subtitle":        "Қала ортасының қауіпсіздігін бақылау",
		"categories":      "Санаттар",
		"cat_blind":       "Соқыр аймақтар (камера жоқ)",
		"cat_abandoned":   "Тастанды ғимараттар",
		"cat_unlit":       "Жарықтандырылмаған көшелер",
		"cat_crime":       "Қылмыстық оқиғалар",
		"statistics":      "Статистика",
		"stat_total":      "Барлық нүктелер:",
		"stat_pending":    "Модерациядағы ұсыныстар:",
		"badge_blind":     "Соқыр аймақ",
		"badge_abandoned": "Тастанды ғимарат",
		"badge_unlit":     "Жарықтандырылмаған көше",
		"badge_crime":     "Оқиға",
		"footer_hint":     "Толық ақпарат алу үшін нүктені басыңыз",
		"login_error":     "Қате құпиясөз",
	},
}

func T(lang types.Lang, key string) string {
	if v, ok := tables[lang][key]; ok {
		return v
	}
	if v, ok := tables[types.LangRU][key]; ok {
		return v
	}
	return key
}

// Table returns the whole string table for a language, for clients that
// resolve keys themselves.
func Table(lang types.Lang) map[string]string {
	out := make(map[string]string, len(tables[types.LangRU]))
	for k, v := range tables[types.LangRU] {
		out[k] = v
	}
	if lang != types.LangRU {
		for k, v := range tables[lang] {
			if v != "" {
				out[k] = v
			}
		}
	}
	return out
}
