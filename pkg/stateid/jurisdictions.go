package stateid

// Default is the built-in catalog of US state and District of Columbia identifier formats.
var Default = MustCatalog(jurisdictions())

// Shared formats. Only NONE is unconstrained: the alphanumeric format
// enforces its 3 to 15 characters like any other rule.
func alphanumeric3to15() Format {
	return Format{Synopsis: "3 to 15 Alpha/Numeric", Rules: patterns(`\w{3,15}`)}
}

func nineNumeric() Format {
	return Format{Synopsis: "9 Numeric", Rules: patterns(`\d{9}`)}
}

func oneAlpha12Numeric() Format {
	return Format{Synopsis: "1 Alpha + 12 Numeric", Rules: patterns(`[A-Za-z]\d{12}`)}
}

func jurisdictions() map[string]Format {
	return map[string]Format{
		None: {},
		"AL": {Synopsis: "7 Numeric or 1 Alpha + 6 Numeric", Rules: patterns(`\w\d{6}`)},
		"AK": alphanumeric3to15(),
		"AZ": {Synopsis: "SSN or 1 Alpha (A, B, D, Y) + 8 Numeric", Rules: patterns(`[ABDYabdy\d]\d{8}`)},
		"AR": {Synopsis: "8 Numeric with zero in front or 9 Numeric", Rules: patterns(`0\d{7}`, `\d{9}`)},
		"CA": {Synopsis: "1 Alpha + 7 Numeric", Rules: patterns(`[A-Za-z]\d{7}`)},
		"CO": alphanumeric3to15(),
		"CT": nineNumeric(),
		"DE": {Synopsis: "1 to 7 Numeric", Rules: patterns(`\d{1,7}`)},
		"DC": alphanumeric3to15(),
		"FL": oneAlpha12Numeric(),
		"GA": {Synopsis: "7 to 9 Numeric", Rules: patterns(`\d{7,9}`)},
		"HI": nineNumeric(),
		"ID": {Synopsis: "New - 9 Characters, Old - 9 Numeric", Rules: patterns(`[A-Za-z]{9}|\d{9}`)},
		"IL": {Synopsis: "1 Alpha + 11 Numeric", Rules: patterns(`[A-Za-z]\d{11}`)},
		"IN": {Synopsis: "10 Numeric or 1 Alpha + 9 Numeric", Rules: patterns(`\w\d{9}`)},
		"IA": {Synopsis: "9 Numeric or 3 numbers, 2 letters, and 4 numbers", Rules: patterns(`\d{9}`, `\d{3}[A-Za-z]{2}\d{4}`)},
		"KS": {Synopsis: "9 Numeric or the alpha K + 8 Numeric", Rules: patterns(`[Kk\d]\d{8}`)},
		"KY": {Synopsis: "1 Alpha + 8 Numeric", Rules: patterns(`[A-Za-z]\d{8}`)},
		"LA": {Synopsis: "9 Numeric (2 zeroes + 7 Numeric)", Rules: patterns(`00\d{7}`)},
		"ME": {Synopsis: "7 Numeric", Rules: patterns(`\d{7}`)},
		"MA": {Synopsis: "9 Numeric or the alpha S + 8 Numeric", Rules: patterns(`[Ss\d]\d{8}`)},
		"MD": oneAlpha12Numeric(),
		"MI": oneAlpha12Numeric(),
		"MN": oneAlpha12Numeric(),
		"MS": nineNumeric(),
		"MO": {Synopsis: "9 Numeric or 1 Alpha + 5-9 Numeric", Rules: patterns(`\d{9}`, `[A-Za-z]\d{5,9}`)},
		"MT": {Synopsis: "13 Numeric or 9 alpha-numeric", Rules: patterns(`\d{13}`, `\w{9}`)},
		"NE": {Synopsis: "1 Alpha (A, B, C, E, G, H, V) + 3-8 Numeric", Rules: patterns(`[ABCEGHVabceghv]\d{3,8}`)},
		"NV": {Synopsis: `10 Numeric or 12 Numeric or "X" + 8 Numeric`, Rules: patterns(`\d{10}`, `\d{12}`, `[Xx]\d{8}`)},
		"NH": {Synopsis: "2 Numeric + 3 Alpha + 5 Numeric", Rules: patterns(`\d{2}[A-Za-z]{3}\d{5}`)},
		"NJ": {Synopsis: "1 Alpha + 14 Numeric", Rules: patterns(`[A-Za-z]\d{14}`)},
		"NM": nineNumeric(),
		"NY": {Synopsis: "9 Numeric or 1 Alpha + 18 Numeric", Rules: patterns(`\d{9}`, `[A-Za-z]\d{18}`)},
		"NC": {Synopsis: "1-12 Numeric", Rules: patterns(`\d{1,12}`)},
		"ND": {Synopsis: "9 Numeric or 3 Alpha + 6 Numeric", Rules: patterns(`\d{9}`, `[A-Za-z]{3}\d{6}`)},
		"OH": {Synopsis: "2 Alpha + 6 Numeric", Rules: patterns(`[A-Za-z]{2}\d{6}`)},
		"OK": {Synopsis: "1 Alpha + 9 Numeric or 9 Numeric", Rules: patterns(`[A-Za-z]\d{9}`, `\d{9}`)},
		"OR": {Synopsis: "1 to 9 Numeric", Rules: patterns(`\d{1,9}`)},
		"PA": alphanumeric3to15(),
		"RI": {Synopsis: `7 Numeric or "V" + 6 Numeric`, Rules: patterns(`[Vv\d]\d{6}`)},
		"SC": {Synopsis: "1 to 10 Numeric", Rules: patterns(`\d{1,10}`)},
		"SD": {Synopsis: "6 or 8 Numeric or SSN", Rules: patterns(`\d{6}`, `\d{8,9}`)},
		"TN": {Synopsis: "7 to 9 Numeric", Rules: patterns(`\d{7,9}`)},
		"TX": {Synopsis: "8 Numeric", Rules: patterns(`\d{8}`)},
		"UT": {Synopsis: "4 to 9 Numeric", Rules: patterns(`\d{4,9}`)},
		"VT": {Synopsis: "8 Numeric or 7 Numeric + 1 Alpha", Rules: patterns(`\d{7}\w`)},
		"VA": {Synopsis: "9 Numeric or 1 Alpha + 8 Numeric", Rules: patterns(`\w\d{8}`)},
		"WA": {Synopsis: "12 Alpha/Numeric", Rules: patterns(`\w{12}`)},
		"WV": {Synopsis: "7 Alpha/Numeric", Rules: patterns(`\w{7}`)},
		"WI": {Synopsis: "1 Alpha + 13 Numeric", Rules: patterns(`[A-Za-z]\d{13}`)},
		"WY": nineNumeric(),
	}
}
