package importer

// Manual street coordinate mapping for Atyrau. The public geocoders index
// Kazakh street names poorly, so the police-export importer resolves against
// known city geography instead.
var streets = map[string]coord{
	// Central / right bank
	"НАБЕРЕЖНАЯ":          {47.1055, 51.9250},
	"АБАЙ":                {47.1080, 51.9180},
	"АБАЙ ҚҰНАНБАЕВ":      {47.1080, 51.9180},
	"АЗАТТЫҚ":             {47.1100, 51.9100},
	"АЗАТТЫК":             {47.1100, 51.9100},
	"МАХАМБЕТ ӨТЕМІСҰЛЫ":  {47.1040, 51.9160},
	"МҰСА БАЙМҰХАНОВ":     {47.1060, 51.9190},
	"ҚҰРМАНҒАЗЫ":          {47.1045, 51.9280},
	"СЫРЫМ ДАТОВ":         {47.1075, 51.9220},
	"ИСАТАЙ":              {47.1085, 51.9150},
	"ДОСТЫҚ":              {47.1070, 51.9300},
	"ЖАСТАР":              {47.1095, 51.9130},
	"КӨКТЕМ":              {47.1110, 51.9080},
	"СТУДЕНТТЕР":          {47.1090, 51.9240},
	"ЮРИЙ ГАГАРИН":        {47.1040, 51.9140},
	"РАБОЧАЯ":             {47.1120, 51.9110},
	"АЛМАТЫ":              {47.1075, 51.9260},
	"САРЫАРҚА":            {47.1060, 51.9320},
	"БОЛАШАҚ":             {47.1050, 51.9340},
	// Nursaya / eastern districts
	"НҰРСАЯ":              {47.0960, 51.9480},
	"ҚАНЫШ СӘТБАЕВ":       {47.1000, 51.9380},
	"БЕЙІМБЕТ МАЙЛИН":     {47.0970, 51.9400},
	"ЖИЕМБЕТ":             {47.0930, 51.9470},
	"МИРАС":               {47.0920, 51.9490},
	// Left bank / south suburbs
	"САДОВАЯ":             {47.0850, 51.9350},
	"ПРИДОРОЖНАЯ":         {47.0870, 51.9450},
	"БЕЙБАРЫС":            {47.0750, 51.9320},
	"С.БЕЙБАРЫС":          {47.0750, 51.9320},
	"БЕРЕКЕ":              {47.0780, 51.9360},
	"АЛМАГҮЛ":             {47.0800, 51.9300},
	"МҰНАЙШЫ":             {47.0760, 51.9260},
	"АТЫРАУ":              {47.0770, 51.9290},
	// Avangard
	"АВАНГАРД-3":          {47.0930, 51.8850},
	"АВАНГАРД-2":          {47.0960, 51.8880},
	"АВАНГАРД":            {47.0945, 51.8865},
	// Vokzal / train station area
	"ПРИВОКЗАЛЬНЫЙ":       {47.1190, 51.9190},
	"СТРОЙКОНТОР":         {47.1160, 51.9160},
	"ПРИУРАЛЬНАЯ":         {47.1140, 51.9130},
	"ТАМПОНАЖНИК":         {47.1150, 51.9140},
	// Misc named areas
	"ӨРКЕН":               {47.0990, 51.9100},
	"ОРКЕН":               {47.0990, 51.9100},
	"ЖУБАН МОЛДАГАЛИЕВ":   {47.1030, 51.9130},
	"ЗАРОСЛЫЙ":            {47.1105, 51.9060},
	"ЖҰЛДЫЗ-3":            {47.0920, 51.9050},
	"АТЫРАУ-ДОССОР":       {47.1130, 51.9350},
	"АТЫРАУ ДОССОР":       {47.1130, 51.9350},
}

// Microdistricts are referenced by bare number in the export.
var microdistricts = map[string]coord{
	"2": {47.1190, 51.9020}, "3": {47.1160, 51.8980}, "4": {47.1145, 51.9060},
	"5": {47.1180, 51.9150}, "7": {47.1060, 51.9350}, "8": {47.1030, 51.9390},
	"10": {47.0985, 51.9280}, "11": {47.0960, 51.9220}, "13": {47.0930, 51.9170},
	"14": {47.0900, 51.9100}, "16": {47.0870, 51.9050}, "18": {47.0840, 51.9000},
	"20": {47.0820, 51.8950}, "21": {47.0800, 51.8900}, "23": {47.0780, 51.8850},
	"24": {47.0950, 51.9320}, "27": {47.0750, 51.9250}, "30": {47.0730, 51.9200},
	"45": {47.0850, 51.9380}, "290": {47.1010, 51.8920},
}
