// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package html5tokenizer

// Static named character reference table. Keys are the text following '&',
// exactly as it must appear in the source. legacyEntities enter the table
// both with and without the trailing ';' (the semicolon-optional names the
// HTML5 spec still recognizes for backward compatibility); every other name
// requires the ';'.
//
// strictEntities is a representative subset of the full HTML5 named
// character reference table (which has ~2,200 entries) covering the
// entities that appear in the vast majority of real documents. The
// lookup/pruning mechanism (entitiesByFirstChar, consumeNamedReference in
// entity_resolver.go) is independent of table size: growing this table to
// the full list is an additive data change, not a structural one.

// legacyEntities are the semicolon-optional names: the full Latin-1 range
// plus the historical uppercase SGML aliases.
var legacyEntities = map[string]string{
	"AElig": "Æ", "AMP": "&", "Aacute": "Á", "Acirc": "Â", "Agrave": "À",
	"Aring": "Å", "Atilde": "Ã", "Auml": "Ä", "COPY": "©", "Ccedil": "Ç",
	"ETH": "Ð", "Eacute": "É", "Ecirc": "Ê", "Egrave": "È", "Euml": "Ë",
	"GT": ">", "Iacute": "Í", "Icirc": "Î", "Igrave": "Ì", "Iuml": "Ï",
	"LT": "<", "Ntilde": "Ñ", "Oacute": "Ó", "Ocirc": "Ô", "Ograve": "Ò",
	"Oslash": "Ø", "Otilde": "Õ", "Ouml": "Ö", "QUOT": "\"", "REG": "®",
	"THORN": "Þ", "Uacute": "Ú", "Ucirc": "Û", "Ugrave": "Ù", "Uuml": "Ü",
	"Yacute": "Ý",
	"aacute": "á", "acirc": "â", "acute": "´", "aelig": "æ", "agrave": "à",
	"amp": "&", "aring": "å", "atilde": "ã", "auml": "ä", "brvbar": "¦",
	"ccedil": "ç", "cedil": "¸", "cent": "¢", "copy": "©", "curren": "¤",
	"deg": "°", "divide": "÷", "eacute": "é", "ecirc": "ê", "egrave": "è",
	"eth": "ð", "euml": "ë", "frac12": "½", "frac14": "¼", "frac34": "¾",
	"gt": ">", "iacute": "í", "icirc": "î", "iexcl": "¡", "igrave": "ì",
	"iquest": "¿", "iuml": "ï", "laquo": "«", "lt": "<", "macr": "¯",
	"micro": "µ", "middot": "·", "nbsp": " ", "not": "¬",
	"ntilde": "ñ", "oacute": "ó", "ocirc": "ô", "ograve": "ò", "ordf": "ª",
	"ordm": "º", "oslash": "ø", "otilde": "õ", "ouml": "ö", "para": "¶",
	"plusmn": "±", "pound": "£", "quot": "\"", "raquo": "»", "reg": "®",
	"sect": "§", "shy": "­", "sup1": "¹", "sup2": "²", "sup3": "³",
	"szlig": "ß", "thorn": "þ", "times": "×", "uacute": "ú", "ucirc": "û",
	"ugrave": "ù", "uml": "¨", "uuml": "ü", "yacute": "ý", "yen": "¥",
	"yuml": "ÿ",
}

// strictEntities require the trailing ';' in the source.
var strictEntities = map[string]string{
	"apos": "'",

	// Typography.
	"ndash": "–", "mdash": "—",
	"lsquo": "‘", "rsquo": "’", "sbquo": "‚",
	"ldquo": "“", "rdquo": "”", "bdquo": "„",
	"dagger": "†", "Dagger": "‡",
	"bull": "•", "hellip": "…", "permil": "‰",
	"prime": "′", "Prime": "″",
	"lsaquo": "‹", "rsaquo": "›",
	"oline": "‾", "frasl": "⁄",
	"euro": "€", "trade": "™",
	"OElig": "Œ", "oelig": "œ",
	"Scaron": "Š", "scaron": "š", "Yuml": "Ÿ",
	"fnof": "ƒ", "circ": "ˆ", "tilde": "˜",
	"ensp": " ", "emsp": " ", "thinsp": " ",
	"zwnj": "‌", "zwj": "‍", "lrm": "‎", "rlm": "‏",

	// Arrows, math, misc symbols.
	"larr": "←", "uarr": "↑", "rarr": "→", "darr": "↓", "harr": "↔",
	"lArr": "⇐", "uArr": "⇑", "rArr": "⇒", "dArr": "⇓", "hArr": "⇔",
	"crarr": "↵",
	"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
	"nabla": "∇", "isin": "∈", "notin": "∉", "ni": "∋",
	"prod": "∏", "sum": "∑", "minus": "−", "lowast": "∗",
	"radic": "√", "prop": "∝", "infin": "∞", "ang": "∠",
	"and": "∧", "or": "∨", "cap": "∩", "cup": "∪",
	"int": "∫", "there4": "∴", "sim": "∼", "cong": "≅",
	"asymp": "≈", "ne": "≠", "equiv": "≡", "le": "≤", "ge": "≥",
	"sub": "⊂", "sup": "⊃", "nsub": "⊄", "sube": "⊆", "supe": "⊇",
	"oplus": "⊕", "otimes": "⊗", "perp": "⊥", "sdot": "⋅",
	"lceil": "⌈", "rceil": "⌉", "lfloor": "⌊", "rfloor": "⌋",
	"lang": "⟨", "rang": "⟩",
	"loz": "◊", "spades": "♠", "clubs": "♣", "hearts": "♥", "diams": "♦",

	// Greek.
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
	"rho": "ρ", "sigmaf": "ς", "sigma": "σ", "tau": "τ",
	"upsilon": "υ", "phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"thetasym": "ϑ", "upsih": "ϒ", "piv": "ϖ",
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
	"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
	"Iota": "Ι", "Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
	"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
	"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
}

var namedEntityReplacements = buildEntityTable()

func buildEntityTable() map[string]string {
	m := make(map[string]string, len(strictEntities)+2*len(legacyEntities))
	for name, repl := range strictEntities {
		m[name+";"] = repl
	}
	for name, repl := range legacyEntities {
		m[name+";"] = repl
		m[name] = repl
	}
	return m
}

// entitiesByFirstChar buckets every entity name by first character so
// consumeNamedReference never scans names that cannot possibly match.
var entitiesByFirstChar = buildEntityBuckets()

func buildEntityBuckets() map[rune][]string {
	buckets := make(map[rune][]string)
	for name := range namedEntityReplacements {
		first := rune(name[0])
		buckets[first] = append(buckets[first], name)
	}
	return buckets
}
