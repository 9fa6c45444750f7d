package storage

import "atyraumap/types"

// DefaultPoints is the bundled first-run dataset for Atyrau. It is written
// exactly once into an empty store, gated by the schema-version marker.
var DefaultPoints = []types.Point{
	{
		ID: 1, Lat: 47.1170, Lng: 51.9200,
		Category:      types.Abandoned,
		TitleRU:       "Заброшенное здание — Гагарин 84",
		TitleKZ:       "Тастанды ғимарат — Гагарин 84",
		AddressRU:     "ул. Гагарина, 84", AddressKZ: "Гагарин к., 84",
		DescriptionRU: "Заброшенное здание на улице Гагарина, 84. Здание не эксплуатируется, представляет угрозу безопасности.",
		DescriptionKZ: "Гагарин көшесі, 84 мекен-жайындағы тастанды ғимарат. Ғимарат пайдаланылмайды, қауіпсіздікке қатер төндіреді.",
		Photos:        []string{"photo/Заброшка - Гагарин 84.jpg"},
	},
	{
		ID: 2, Lat: 47.1050, Lng: 51.9280,
		Category:      types.Abandoned,
		TitleRU:       "Заброшенное здание — ул. Досым Есенов",
		TitleKZ:       "Тастанды ғимарат — Досым Есенов к.",
		AddressRU:     "ул. Досым Есенов", AddressKZ: "Досым Есенов көшесі",
		DescriptionRU: "Заброшенное строение на улице Досым Есенов. Территория не огорожена.",
		DescriptionKZ: "Досым Есенов көшесіндегі тастанды құрылыс. Аумақ қоршалмаған.",
		Photos:        []string{"photo/Заброшка - Досым Есенов улица.jpg"},
	},
	{
		ID: 3, Lat: 47.1100, Lng: 51.9150,
		Category:      types.Abandoned,
		TitleRU:       "Заброшенное здание — Исатаев 46",
		TitleKZ:       "Тастанды ғимарат — Исатаев 46",
		AddressRU:     "ул. Исатаева, 46", AddressKZ: "Исатаев к., 46",
		DescriptionRU: "Заброшенное здание по адресу Исатаев 46. Здание в аварийном состоянии.",
		DescriptionKZ: "Исатаев 46 мекен-жайындағы тастанды ғимарат. Ғимарат апатты жағдайда.",
		Photos:        []string{"photo/Заброшка - Исатаев 46.jpg"},
	},
	{
		ID: 4, Lat: 47.0990, Lng: 51.9320,
		Category:      types.Abandoned,
		TitleRU:       "Заброшенный гараж — проезд Каспий",
		TitleKZ:       "Тастанды гараж — Каспий өткелі",
		AddressRU:     "Проезд Каспий, гараж", AddressKZ: "Каспий өткелі, гараж",
		DescriptionRU: "Заброшенный гараж на проезде Каспий. Территория захламлена.",
		DescriptionKZ: "Каспий өткеліндегі тастанды гараж. Аумақ қоқыстарға толы.",
		Photos:        []string{"photo/Заброшка - Проезд Каспий гараж.jpg"},
	},
	{
		ID: 5, Lat: 47.1130, Lng: 51.9250,
		Category:      types.Unlit,
		TitleRU:       "Неосвещённая улица — Александр",
		TitleKZ:       "Жарықтандырылмаған көше — Александр",
		AddressRU:     "ул. Александр", AddressKZ: "Александр көшесі",
		DescriptionRU: "Улица Александр без уличного освещения. Опасна в тёмное время суток.",
		DescriptionKZ: "Көше жарығынсыз Александр көшесі. Қараңғы уақытта қауіпті.",
		Photos:        []string{"photo/Свет - Александр улица.jpg"},
	},
	{
		ID: 6, Lat: 47.1070, Lng: 51.9190,
		Category:      types.Unlit,
		TitleRU:       "Неосвещённая улица — Есет би",
		TitleKZ:       "Жарықтандырылмаған көше — Есет би",
		AddressRU:     "ул. Есет би", AddressKZ: "Есет би көшесі",
		DescriptionRU: "Улица Есет би — отсутствует уличное освещение на значительном участке.",
		DescriptionKZ: "Есет би көшесі — айтарлықтай бөлігінде көше жарығы жоқ.",
		Photos:        []string{"photo/Свет - Есет би улица.jpg"},
	},
	{
		ID: 7, Lat: 47.1150, Lng: 51.9310,
		Category:      types.Unlit,
		TitleRU:       "Неосвещённая улица — Керейхан",
		TitleKZ:       "Жарықтандырылмаған көше — Керейхан",
		AddressRU:     "ул. Керейхан", AddressKZ: "Керейхан көшесі",
		DescriptionRU: "Улица Керейхан — фонари не работают или отсутствуют.",
		DescriptionKZ: "Керейхан көшесі — фонарьлар жұмыс істемейді немесе жоқ.",
		Photos:        []string{"photo/Свет - Керейхан улица.jpg"},
	},
	{
		ID: 8, Lat: 47.1115, Lng: 51.9100,
		Category:      types.Unlit,
		TitleRU:       "Неосвещённая улица — Темирханова",
		TitleKZ:       "Жарықтандырылмаған көше — Темірханов",
		AddressRU:     "ул. Темирханова", AddressKZ: "Темірханов көшесі",
		DescriptionRU: "Улица Темирханова — уличное освещение отсутствует.",
		DescriptionKZ: "Темірханов көшесі — көше жарығы жоқ.",
		Photos:        []string{"photo/Свет -Темирханова улица.jpg"},
	},
}

// SeedSnapshot converts the bundled points into the snapshot shape backends
// store natively.
func SeedSnapshot() (Snapshot, error) {
	return buildSnapshot(DefaultPoints)
}
