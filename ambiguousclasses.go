package wcwidth

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// East-Asian-Ambiguous code points (East_Asian_Width category "A"),
// Unicode 15.0.0. Rendered with one column by default, two columns under
// the EastAsian policy.

import "unicode"

var _Ambiguous = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00a1, 0x00a1, 1},
		{0x00a4, 0x00a4, 1},
		{0x00a7, 0x00a8, 1},
		{0x00aa, 0x00aa, 1},
		{0x00ad, 0x00ae, 1},
		{0x00b0, 0x00b4, 1},
		{0x00b6, 0x00ba, 1},
		{0x00bc, 0x00bf, 1},
		{0x00c6, 0x00c6, 1},
		{0x00d0, 0x00d0, 1},
		{0x00d7, 0x00d8, 1},
		{0x00de, 0x00e1, 1},
		{0x00e6, 0x00e6, 1},
		{0x00e8, 0x00ea, 1},
		{0x00ec, 0x00ed, 1},
		{0x00f0, 0x00f0, 1},
		{0x00f2, 0x00f3, 1},
		{0x00f7, 0x00fa, 1},
		{0x00fc, 0x00fc, 1},
		{0x00fe, 0x00fe, 1},
		{0x0101, 0x0101, 1},
		{0x0111, 0x0111, 1},
		{0x0113, 0x0113, 1},
		{0x011b, 0x011b, 1},
		{0x0126, 0x0127, 1},
		{0x012b, 0x012b, 1},
		{0x0131, 0x0133, 1},
		{0x0138, 0x0138, 1},
		{0x013f, 0x0142, 1},
		{0x0144, 0x0144, 1},
		{0x0148, 0x014b, 1},
		{0x014d, 0x014d, 1},
		{0x0152, 0x0153, 1},
		{0x0166, 0x0167, 1},
		{0x016b, 0x016b, 1},
		{0x01ce, 0x01ce, 1},
		{0x01d0, 0x01d0, 1},
		{0x01d2, 0x01d2, 1},
		{0x01d4, 0x01d4, 1},
		{0x01d6, 0x01d6, 1},
		{0x01d8, 0x01d8, 1},
		{0x01da, 0x01da, 1},
		{0x01dc, 0x01dc, 1},
		{0x0251, 0x0251, 1},
		{0x0261, 0x0261, 1},
		{0x02c4, 0x02c4, 1},
		{0x02c7, 0x02c7, 1},
		{0x02c9, 0x02cb, 1},
		{0x02cd, 0x02cd, 1},
		{0x02d0, 0x02d0, 1},
		{0x02d8, 0x02db, 1},
		{0x02dd, 0x02dd, 1},
		{0x02df, 0x02df, 1},
		{0x0300, 0x036f, 1},
		{0x0391, 0x03a1, 1},
		{0x03a3, 0x03a9, 1},
		{0x03b1, 0x03c1, 1},
		{0x03c3, 0x03c9, 1},
		{0x0401, 0x0401, 1},
		{0x0410, 0x044f, 1},
		{0x0451, 0x0451, 1},
		{0x2010, 0x2010, 1},
		{0x2013, 0x2016, 1},
		{0x2018, 0x2019, 1},
		{0x201c, 0x201d, 1},
		{0x2020, 0x2022, 1},
		{0x2024, 0x2027, 1},
		{0x2030, 0x2030, 1},
		{0x2032, 0x2033, 1},
		{0x2035, 0x2035, 1},
		{0x203b, 0x203b, 1},
		{0x203e, 0x203e, 1},
		{0x2074, 0x2074, 1},
		{0x207f, 0x207f, 1},
		{0x2081, 0x2084, 1},
		{0x20ac, 0x20ac, 1},
		{0x2103, 0x2103, 1},
		{0x2105, 0x2105, 1},
		{0x2109, 0x2109, 1},
		{0x2113, 0x2113, 1},
		{0x2116, 0x2116, 1},
		{0x2121, 0x2122, 1},
		{0x2126, 0x2126, 1},
		{0x212b, 0x212b, 1},
		{0x2153, 0x2154, 1},
		{0x215b, 0x215e, 1},
		{0x2160, 0x216b, 1},
		{0x2170, 0x2179, 1},
		{0x2189, 0x2189, 1},
		{0x2190, 0x2199, 1},
		{0x21b8, 0x21b9, 1},
		{0x21d2, 0x21d2, 1},
		{0x21d4, 0x21d4, 1},
		{0x21e7, 0x21e7, 1},
		{0x2200, 0x2200, 1},
		{0x2202, 0x2203, 1},
		{0x2207, 0x2208, 1},
		{0x220b, 0x220b, 1},
		{0x220f, 0x220f, 1},
		{0x2211, 0x2211, 1},
		{0x2215, 0x2215, 1},
		{0x221a, 0x221a, 1},
		{0x221d, 0x2220, 1},
		{0x2223, 0x2223, 1},
		{0x2225, 0x2225, 1},
		{0x2227, 0x222c, 1},
		{0x222e, 0x222e, 1},
		{0x2234, 0x2237, 1},
		{0x223c, 0x223d, 1},
		{0x2248, 0x2248, 1},
		{0x224c, 0x224c, 1},
		{0x2252, 0x2252, 1},
		{0x2260, 0x2261, 1},
		{0x2264, 0x2267, 1},
		{0x226a, 0x226b, 1},
		{0x226e, 0x226f, 1},
		{0x2282, 0x2283, 1},
		{0x2286, 0x2287, 1},
		{0x2295, 0x2295, 1},
		{0x2299, 0x2299, 1},
		{0x22a5, 0x22a5, 1},
		{0x22bf, 0x22bf, 1},
		{0x2312, 0x2312, 1},
		{0x2460, 0x24e9, 1},
		{0x24eb, 0x254b, 1},
		{0x2550, 0x2573, 1},
		{0x2580, 0x258f, 1},
		{0x2592, 0x2595, 1},
		{0x25a0, 0x25a1, 1},
		{0x25a3, 0x25a9, 1},
		{0x25b2, 0x25b3, 1},
		{0x25b6, 0x25b7, 1},
		{0x25bc, 0x25bd, 1},
		{0x25c0, 0x25c1, 1},
		{0x25c6, 0x25c8, 1},
		{0x25cb, 0x25cb, 1},
		{0x25ce, 0x25d1, 1},
		{0x25e2, 0x25e5, 1},
		{0x25ef, 0x25ef, 1},
		{0x2605, 0x2606, 1},
		{0x2609, 0x2609, 1},
		{0x260e, 0x260f, 1},
		{0x261c, 0x261c, 1},
		{0x261e, 0x261e, 1},
		{0x2640, 0x2640, 1},
		{0x2642, 0x2642, 1},
		{0x2660, 0x2661, 1},
		{0x2663, 0x2665, 1},
		{0x2667, 0x266a, 1},
		{0x266c, 0x266d, 1},
		{0x266f, 0x266f, 1},
		{0x269e, 0x269f, 1},
		{0x26bf, 0x26bf, 1},
		{0x26c6, 0x26cd, 1},
		{0x26cf, 0x26d3, 1},
		{0x26d5, 0x26e1, 1},
		{0x26e3, 0x26e3, 1},
		{0x26e8, 0x26e9, 1},
		{0x26eb, 0x26f1, 1},
		{0x26f4, 0x26f4, 1},
		{0x26f6, 0x26f9, 1},
		{0x26fb, 0x26fc, 1},
		{0x26fe, 0x26ff, 1},
		{0x273d, 0x273d, 1},
		{0x2776, 0x277f, 1},
		{0x2b56, 0x2b59, 1},
		{0x3248, 0x324f, 1},
		{0xe000, 0xf8ff, 1},
		{0xfe00, 0xfe0f, 1},
		{0xfffd, 0xfffd, 1},
	},
	R32: []unicode.Range32{
		{0x1f100, 0x1f10a, 1},
		{0x1f110, 0x1f12d, 1},
		{0x1f130, 0x1f169, 1},
		{0x1f170, 0x1f18d, 1},
		{0x1f18f, 0x1f190, 1},
		{0x1f19b, 0x1f1ac, 1},
		{0xe0100, 0xe01ef, 1},
		{0xf0000, 0xffffd, 1},
		{0x100000, 0x10fffd, 1},
	},
	LatinOffset: 20,
}
