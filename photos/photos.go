// Package photos is the registry of attachment files the admin picks from
// when adding a point or approving a suggestion.
package photos

import "atyraumap/types"

type Photo struct {
	File     string         `json:"file"`
	LabelRU  string         `json:"label_ru"`
	LabelKZ  string         `json:"label_kz"`
	Category types.Category `json:"category"`
}

var Available = []Photo{
	{File: "photo/Заброшка - Гагарин 84.jpg", LabelRU: "Заброшка — Гагарин 84", LabelKZ: "Тастанды — Гагарин 84", Category: types.Abandoned},
	{File: "photo/Заброшка - Досым Есенов улица.jpg", LabelRU: "Заброшка — ул. Досым Есенов", LabelKZ: "Тастанды — Досым Есенов к.", Category: types.Abandoned},
	{File: "photo/Заброшка - Исатаев 46.jpg", LabelRU: "Заброшка — Исатаев 46", LabelKZ: "Тастанды — Исатаев 46", Category: types.Abandoned},
	{File: "photo/Заброшка - Исатаев 59.jpg", LabelRU: "Заброшка — Исатаев 59", LabelKZ: "Тастанды — Исатаев 59", Category: types.Abandoned},
	{File: "photo/Заброшка - Проезд Каспий гараж.jpg", LabelRU: "Заброшка — Проезд Каспий, гараж", LabelKZ: "Тастанды — Каспий өткелі, гараж", Category: types.Abandoned},
	{File: "photo/Свет - Александр улица.jpg", LabelRU: "Свет — ул. Александр", LabelKZ: "Жарық — Александр к.", Category: types.Unlit},
	{File: "photo/Свет - Есет би улица.jpg", LabelRU: "Свет — ул. Есет би", LabelKZ: "Жарық — Есет би к.", Category: types.Unlit},
	{File: "photo/Свет - Керейхан улица.jpg", LabelRU: "Свет — ул. Керейхан", LabelKZ: "Жарық — Керейхан к.", Category: types.Unlit},
	{File: "photo/Свет -Темирханова улица.jpg", LabelRU: "Свет — ул. Темирханова", LabelKZ: "Жарық — Темірханов к.", Category: types.Unlit},
}

// ForCategory lists the registry entries an admin may attach to a point of
// the given category. Categories that forbid photos get an empty list.
func ForCategory(cat types.Category) []Photo {
	cfg, ok := types.Categories[cat]
	if !ok || !cfg.AllowPhotos {
		return nil
	}
	var out []Photo
	for _, p := range Available {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}
