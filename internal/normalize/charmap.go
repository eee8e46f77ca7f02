// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// CharacterMap maps a malformed code sequence to its canonical replacement.
// Keys of one map never overlap, so substitution order is irrelevant.
type CharacterMap map[string]string

// TajikCyrillicMap returns the built-in map for script-crossed Cyrillic
// homoglyphs: the upstream extractor emits Serbian/Macedonian/Ukrainian
// letters in place of the six Tajik-specific Cyrillic letters.
func TajikCyrillicMap() CharacterMap {
	return CharacterMap{
		// Uppercase
		"Љ": "Ҷ", // che with descender
		"Њ": "Ҳ", // ha with descender
		"Ѓ": "Ғ", // ghayn
		"Ї": "Ӣ", // i with macron
		"Ў": "Ӯ", // u with macron
		"Ќ": "Қ", // ka with descender

		// Lowercase
		"љ": "ҷ",
		"њ": "ҳ",
		"ѓ": "ғ",
		"ї": "ӣ",
		"ў": "ӯ",
		"ќ": "қ",
	}
}

// ArabicPresentationMap returns the built-in map from Arabic Presentation
// Forms (U+FB50-U+FDFF, U+FE70-U+FEFF) to base Arabic/Persian letters.
// The extractor emits positional glyph codepoints instead of logical
// characters; every isolated, final, initial, and medial form collapses to
// its base letter.
func ArabicPresentationMap() CharacterMap {
	return CharacterMap{
		// Alef
		"ﺍ": "ا", "ﺎ": "ا",
		// Beh
		"ﺏ": "ب", "ﺐ": "ب", "ﺑ": "ب", "ﺒ": "ب",
		// Teh
		"ﺕ": "ت", "ﺖ": "ت", "ﺗ": "ت", "ﺘ": "ت",
		// Theh
		"ﺙ": "ث", "ﺚ": "ث", "ﺛ": "ث", "ﺜ": "ث",
		// Jeem
		"ﺝ": "ج", "ﺞ": "ج", "ﺟ": "ج", "ﺠ": "ج",
		// Hah
		"ﺡ": "ح", "ﺢ": "ح", "ﺣ": "ح", "ﺤ": "ح",
		// Khah
		"ﺥ": "خ", "ﺦ": "خ", "ﺧ": "خ", "ﺨ": "خ",
		// Dal
		"ﺩ": "د", "ﺪ": "د",
		// Thal
		"ﺫ": "ذ", "ﺬ": "ذ",
		// Reh
		"ﺭ": "ر", "ﺮ": "ر",
		// Zain
		"ﺯ": "ز", "ﺰ": "ز",
		// Seen
		"ﺱ": "س", "ﺲ": "س", "ﺳ": "س", "ﺴ": "س",
		// Sheen
		"ﺵ": "ش", "ﺶ": "ش", "ﺷ": "ش", "ﺸ": "ش",
		// Sad
		"ﺹ": "ص", "ﺺ": "ص", "ﺻ": "ص", "ﺼ": "ص",
		// Dad
		"ﺽ": "ض", "ﺾ": "ض", "ﺿ": "ض", "ﻀ": "ض",
		// Tah
		"ﻁ": "ط", "ﻂ": "ط", "ﻃ": "ط", "ﻄ": "ط",
		// Zah
		"ﻅ": "ظ", "ﻆ": "ظ", "ﻇ": "ظ", "ﻈ": "ظ",
		// Ain
		"ﻉ": "ع", "ﻊ": "ع", "ﻋ": "ع", "ﻌ": "ع",
		// Ghain
		"ﻍ": "غ", "ﻎ": "غ", "ﻏ": "غ", "ﻐ": "غ",
		// Feh
		"ﻑ": "ف", "ﻒ": "ف", "ﻓ": "ف", "ﻔ": "ف",
		// Qaf
		"ﻕ": "ق", "ﻖ": "ق", "ﻗ": "ق", "ﻘ": "ق",
		// Kaf (normalized to Persian kaf)
		"ﻙ": "ک", "ﻚ": "ک", "ﻛ": "ک", "ﻜ": "ک",
		// Lam
		"ﻝ": "ل", "ﻞ": "ل", "ﻟ": "ل", "ﻠ": "ل",
		// Meem
		"ﻡ": "م", "ﻢ": "م", "ﻣ": "م", "ﻤ": "م",
		// Noon
		"ﻥ": "ن", "ﻦ": "ن", "ﻧ": "ن", "ﻨ": "ن",
		// Heh
		"ﻩ": "ه", "ﻪ": "ه", "ﻫ": "ه", "ﻬ": "ه",
		// Waw
		"ﻭ": "و", "ﻮ": "و",
		// Yeh and alef maksura (normalized to Persian yeh)
		"ﻱ": "ی", "ﻲ": "ی", "ﻳ": "ی", "ﻴ": "ی",
		"ﻯ": "ی", "ﻰ": "ی",
		// Persian peh
		"ﭖ": "پ", "ﭗ": "پ", "ﭘ": "پ", "ﭙ": "پ",
		// Persian cheh
		"ﭺ": "چ", "ﭻ": "چ", "ﭼ": "چ", "ﭽ": "چ",
		// Persian jeh
		"ﮋ": "ژ",
		// Persian keheh
		"ﮎ": "ک", "ﮏ": "ک", "ﮐ": "ک", "ﮑ": "ک",
		// Persian gaf
		"ﮒ": "گ", "ﮓ": "گ", "ﮔ": "گ", "ﮕ": "گ",
		// Hamza forms
		"ﺀ": "ء",
		"ﺁ": "آ", "ﺂ": "آ",
		"ﺃ": "أ", "ﺄ": "أ",
		"ﺅ": "ؤ", "ﺆ": "ؤ",
		"ﺇ": "إ", "ﺈ": "إ",
		"ﺉ": "ئ", "ﺊ": "ئ", "ﺋ": "ئ", "ﺌ": "ئ",
		// Teh marbuta
		"ﺓ": "ة", "ﺔ": "ة",
	}
}

// charMapFile is the on-disk representation of a character-map override.
type charMapFile struct {
	Cyrillic CharacterMap `yaml:"cyrillic"`
	Arabic   CharacterMap `yaml:"arabic"`
}

// LoadCharacterMaps reads the Cyrillic and Arabic character maps from a
// YAML file. A missing section falls back to the built-in map.
func LoadCharacterMaps(path string) (cyrillic, arabic CharacterMap, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading character map file %s: %w", path, err)
	}

	var f charMapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing character map file %s: %w", path, err)
	}

	cyrillic = f.Cyrillic
	if len(cyrillic) == 0 {
		cyrillic = TajikCyrillicMap()
	}
	arabic = f.Arabic
	if len(arabic) == 0 {
		arabic = ArabicPresentationMap()
	}
	return cyrillic, arabic, nil
}
