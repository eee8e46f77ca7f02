// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

// DefaultEtymology returns the built-in etymology-marker table: source
// language abbreviations that appear between the headword and the gloss.
func DefaultEtymology() Table {
	return Table{
		"а.":     "арабӣ",
		"ак.":    "аккадӣ",
		"англ.":  "англисӣ",
		"д.":     "динӣ",
		"ибр.":   "ибрӣ",
		"исп.":   "испанӣ",
		"ит.":    "италиявӣ",
		"кит.":   "китобӣ",
		"лот.":   "лотинӣ",
		"м.":     "муғулӣ",
		"мал.":   "малайзӣ",
		"олм.":   "олмонӣ",
		"пол.":   "поландӣ",
		"порт.":  "португалӣ",
		"р.":     "русӣ",
		"санс.":  "санскрит",
		"сур.":   "суриёнӣ",
		"т.":     "туркӣ",
		"т.-м.":  "туркию муғулӣ",
		"тибет.": "тибетӣ",
		"фин.":   "финландӣ",
		"фр.":    "фаронсавӣ",
		"хит.":   "хитоӣ",
		"ч.":     "чехӣ",
		"швед.":  "шведӣ",
		"ю.":     "юнонӣ",
		"я.":     "яҳудӣ",
		"яп.":    "японӣ",
		"ҳ.":     "ҳиндӣ",
		"ҳол.":   "ҳолландӣ",
	}
}

// DefaultRegister returns the built-in register-marker table: domain and
// usage abbreviations that appear after the gloss.
func DefaultRegister() Table {
	return Table{
		"адш.":    "адабиётшиносӣ",
		"анат.":   "анатомия",
		"асот.":   "асотирӣ, асотиршиносӣ",
		"афс.":    "афсонавӣ",
		"байт.":   "байторӣ",
		"барқ.":   "барқӣ, электрӣ",
		"баҳр.":   "баҳрнавардӣ",
		"биол.":   "биология",
		"боғп.":   "боғпарварӣ",
		"бот.":    "ботаника",
		"боф.":    "бофандагӣ",
		"варз.":   "варзиш",
		"геол.":   "геология",
		"грам.":   "грамматика",
		"гуфт.":   "гуфтугӯӣ",
		"дӯз.":    "дӯзандагӣ",
		"збш.":    "забоншиносӣ",
		"зоол.":   "зоология",
		"иқт.":    "иқтисод",
		"итт.":    "иттилоотшиносӣ",
		"кайҳ.":   "кайҳоннавардӣ",
		"кин.":    "киноявӣ",
		"кит.":    "китобӣ",
		"кишов.":  "кишоварзӣ",
		"кҳн.":    "кӯҳнашуда",
		"лаҳҷ.":   "лаҳҷавӣ",
		"мант.":   "мантиқ",
		"маҷ.":    "маҷозан",
		"маъд.":   "маъданшиносӣ",
		"меъ.":    "меъморӣ",
		"мол.":    "молия",
		"мус.":    "мусиқӣ",
		"нав.":    "навсохт",
		"нашр.":   "нашриёт",
		"нуҷ.":    "илми нуҷум",
		"обҳш.":   "обуҳавошиносӣ",
		"омӯз.":   "омӯзгорӣ",
		"р.-оҳ.":  "роҳи оҳан",
		"радио.":  "радиотехника",
		"риёз.":   "риёзиёт, математика",
		"с.":      "сиёсӣ",
		"санъ.":   "санъат",
		"сохт.":   "сохтмон",
		"таҳқ.":   "сухани таҳқиромез",
		"таър.":   "таърихӣ",
		"тех.":    "техника",
		"тиб.":    "тиббӣ",
		"фалс.":   "фалсафа",
		"физ.":    "физика",
		"фолк.":   "фолклор",
		"хим.":    "химия",
		"хӯр.":    "хӯрокворӣ",
		"чорв.":   "чорводорӣ",
		"ҳ.":      "ҳарбӣ",
		"ҳанд.":   "ҳандаса",
		"ҳисобд.": "ҳисобдорӣ",
		"ҳуқ.":    "ҳуқуқшиносӣ",
		"ҷуғр.":   "ҷуғрофия",
	}
}
