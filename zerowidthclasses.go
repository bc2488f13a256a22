package wcwidth

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Zero-width code points, Unicode 15.0.0. Union of general category Cf
// (minus SOFT HYPHEN), Grapheme_Extend, Variation_Selector,
// Default_Ignorable_Code_Point, Hangul syllable types V and T, and nonzero
// canonical combining classes; minus the glibc carve-outs U+115F, U+3164,
// U+FFA0, U+FFF9..U+FFFB and U+13430..U+1343F, which terminals render with
// nonzero width.

import "unicode"

var _ZeroWidth = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0300, 0x036f, 1},
		{0x0483, 0x0489, 1},
		{0x0591, 0x05bd, 1},
		{0x05bf, 0x05bf, 1},
		{0x05c1, 0x05c2, 1},
		{0x05c4, 0x05c5, 1},
		{0x05c7, 0x05c7, 1},
		{0x0600, 0x0605, 1},
		{0x0610, 0x061a, 1},
		{0x061c, 0x061c, 1},
		{0x064b, 0x065f, 1},
		{0x0670, 0x0670, 1},
		{0x06d6, 0x06dd, 1},
		{0x06df, 0x06e4, 1},
		{0x06e7, 0x06e8, 1},
		{0x06ea, 0x06ed, 1},
		{0x070f, 0x070f, 1},
		{0x0711, 0x0711, 1},
		{0x0730, 0x074a, 1},
		{0x07a6, 0x07b0, 1},
		{0x07eb, 0x07f3, 1},
		{0x07fd, 0x07fd, 1},
		{0x0816, 0x0819, 1},
		{0x081b, 0x0823, 1},
		{0x0825, 0x0827, 1},
		{0x0829, 0x082d, 1},
		{0x0859, 0x085b, 1},
		{0x0890, 0x0891, 1},
		{0x0898, 0x089f, 1},
		{0x08ca, 0x0902, 1},
		{0x093a, 0x093a, 1},
		{0x093c, 0x093c, 1},
		{0x0941, 0x0948, 1},
		{0x094d, 0x094d, 1},
		{0x0951, 0x0957, 1},
		{0x0962, 0x0963, 1},
		{0x0981, 0x0981, 1},
		{0x09bc, 0x09bc, 1},
		{0x09c1, 0x09c4, 1},
		{0x09cd, 0x09cd, 1},
		{0x09e2, 0x09e3, 1},
		{0x09fe, 0x09fe, 1},
		{0x0a01, 0x0a02, 1},
		{0x0a3c, 0x0a3c, 1},
		{0x0a41, 0x0a42, 1},
		{0x0a47, 0x0a48, 1},
		{0x0a4b, 0x0a4d, 1},
		{0x0a51, 0x0a51, 1},
		{0x0a70, 0x0a71, 1},
		{0x0a75, 0x0a75, 1},
		{0x0a81, 0x0a82, 1},
		{0x0abc, 0x0abc, 1},
		{0x0ac1, 0x0ac5, 1},
		{0x0ac7, 0x0ac8, 1},
		{0x0acd, 0x0acd, 1},
		{0x0ae2, 0x0ae3, 1},
		{0x0afa, 0x0aff, 1},
		{0x0b01, 0x0b01, 1},
		{0x0b3c, 0x0b3c, 1},
		{0x0b3f, 0x0b3f, 1},
		{0x0b41, 0x0b44, 1},
		{0x0b4d, 0x0b4d, 1},
		{0x0b55, 0x0b56, 1},
		{0x0b62, 0x0b63, 1},
		{0x0b82, 0x0b82, 1},
		{0x0bc0, 0x0bc0, 1},
		{0x0bcd, 0x0bcd, 1},
		{0x0c00, 0x0c00, 1},
		{0x0c04, 0x0c04, 1},
		{0x0c3c, 0x0c3c, 1},
		{0x0c3e, 0x0c40, 1},
		{0x0c46, 0x0c48, 1},
		{0x0c4a, 0x0c4d, 1},
		{0x0c55, 0x0c56, 1},
		{0x0c62, 0x0c63, 1},
		{0x0c81, 0x0c81, 1},
		{0x0cbc, 0x0cbc, 1},
		{0x0cbf, 0x0cbf, 1},
		{0x0cc6, 0x0cc6, 1},
		{0x0ccc, 0x0ccd, 1},
		{0x0ce2, 0x0ce3, 1},
		{0x0d00, 0x0d01, 1},
		{0x0d3b, 0x0d3c, 1},
		{0x0d41, 0x0d44, 1},
		{0x0d4d, 0x0d4d, 1},
		{0x0d62, 0x0d63, 1},
		{0x0d81, 0x0d81, 1},
		{0x0dca, 0x0dca, 1},
		{0x0dd2, 0x0dd4, 1},
		{0x0dd6, 0x0dd6, 1},
		{0x0e31, 0x0e31, 1},
		{0x0e34, 0x0e3a, 1},
		{0x0e47, 0x0e4e, 1},
		{0x0eb1, 0x0eb1, 1},
		{0x0eb4, 0x0ebc, 1},
		{0x0ec8, 0x0ece, 1},
		{0x0f18, 0x0f19, 1},
		{0x0f35, 0x0f35, 1},
		{0x0f37, 0x0f37, 1},
		{0x0f39, 0x0f39, 1},
		{0x0f71, 0x0f7e, 1},
		{0x0f80, 0x0f84, 1},
		{0x0f86, 0x0f87, 1},
		{0x0f8d, 0x0f97, 1},
		{0x0f99, 0x0fbc, 1},
		{0x0fc6, 0x0fc6, 1},
		{0x102d, 0x1030, 1},
		{0x1032, 0x1037, 1},
		{0x1039, 0x103a, 1},
		{0x103d, 0x103e, 1},
		{0x1058, 0x1059, 1},
		{0x105e, 0x1060, 1},
		{0x1071, 0x1074, 1},
		{0x1082, 0x1082, 1},
		{0x1085, 0x1086, 1},
		{0x108d, 0x108d, 1},
		{0x109d, 0x109d, 1},
		{0x1160, 0x11ff, 1},
		{0x135d, 0x135f, 1},
		{0x1712, 0x1714, 1},
		{0x1732, 0x1733, 1},
		{0x1752, 0x1753, 1},
		{0x1772, 0x1773, 1},
		{0x17b4, 0x17b5, 1},
		{0x17b7, 0x17bd, 1},
		{0x17c6, 0x17c6, 1},
		{0x17c9, 0x17d3, 1},
		{0x17dd, 0x17dd, 1},
		{0x180b, 0x180f, 1},
		{0x1885, 0x1886, 1},
		{0x18a9, 0x18a9, 1},
		{0x1920, 0x1922, 1},
		{0x1927, 0x1928, 1},
		{0x1932, 0x1932, 1},
		{0x1939, 0x193b, 1},
		{0x1a17, 0x1a18, 1},
		{0x1a1b, 0x1a1b, 1},
		{0x1a56, 0x1a56, 1},
		{0x1a58, 0x1a5e, 1},
		{0x1a60, 0x1a60, 1},
		{0x1a62, 0x1a62, 1},
		{0x1a65, 0x1a6c, 1},
		{0x1a73, 0x1a7c, 1},
		{0x1a7f, 0x1a7f, 1},
		{0x1ab0, 0x1ace, 1},
		{0x1b00, 0x1b03, 1},
		{0x1b34, 0x1b34, 1},
		{0x1b36, 0x1b3a, 1},
		{0x1b3c, 0x1b3c, 1},
		{0x1b42, 0x1b42, 1},
		{0x1b6b, 0x1b73, 1},
		{0x1b80, 0x1b81, 1},
		{0x1ba2, 0x1ba5, 1},
		{0x1ba8, 0x1ba9, 1},
		{0x1bab, 0x1bad, 1},
		{0x1be6, 0x1be6, 1},
		{0x1be8, 0x1be9, 1},
		{0x1bed, 0x1bed, 1},
		{0x1bef, 0x1bf1, 1},
		{0x1c2c, 0x1c33, 1},
		{0x1c36, 0x1c37, 1},
		{0x1cd0, 0x1cd2, 1},
		{0x1cd4, 0x1ce0, 1},
		{0x1ce2, 0x1ce8, 1},
		{0x1ced, 0x1ced, 1},
		{0x1cf4, 0x1cf4, 1},
		{0x1cf8, 0x1cf9, 1},
		{0x1dc0, 0x1dff, 1},
		{0x200b, 0x200f, 1},
		{0x202a, 0x202e, 1},
		{0x2060, 0x206f, 1},
		{0x20d0, 0x20f0, 1},
		{0x2cef, 0x2cf1, 1},
		{0x2d7f, 0x2d7f, 1},
		{0x2de0, 0x2dff, 1},
		{0x302a, 0x302d, 1},
		{0x3099, 0x309a, 1},
		{0xa66f, 0xa672, 1},
		{0xa674, 0xa67d, 1},
		{0xa69e, 0xa69f, 1},
		{0xa6f0, 0xa6f1, 1},
		{0xa802, 0xa802, 1},
		{0xa806, 0xa806, 1},
		{0xa80b, 0xa80b, 1},
		{0xa825, 0xa826, 1},
		{0xa82c, 0xa82c, 1},
		{0xa8c4, 0xa8c5, 1},
		{0xa8e0, 0xa8f1, 1},
		{0xa8ff, 0xa8ff, 1},
		{0xa926, 0xa92d, 1},
		{0xa947, 0xa951, 1},
		{0xa980, 0xa982, 1},
		{0xa9b3, 0xa9b3, 1},
		{0xa9b6, 0xa9b9, 1},
		{0xa9bc, 0xa9bd, 1},
		{0xa9e5, 0xa9e5, 1},
		{0xaa29, 0xaa2e, 1},
		{0xaa31, 0xaa32, 1},
		{0xaa35, 0xaa36, 1},
		{0xaa43, 0xaa43, 1},
		{0xaa4c, 0xaa4c, 1},
		{0xaa7c, 0xaa7c, 1},
		{0xaab0, 0xaab0, 1},
		{0xaab2, 0xaab4, 1},
		{0xaab7, 0xaab8, 1},
		{0xaabe, 0xaabf, 1},
		{0xaac1, 0xaac1, 1},
		{0xaaec, 0xaaed, 1},
		{0xaaf6, 0xaaf6, 1},
		{0xabe5, 0xabe5, 1},
		{0xabe8, 0xabe8, 1},
		{0xabed, 0xabed, 1},
		{0xd7b0, 0xd7c6, 1},
		{0xd7cb, 0xd7fb, 1},
		{0xfb1e, 0xfb1e, 1},
		{0xfe00, 0xfe0f, 1},
		{0xfe20, 0xfe2f, 1},
		{0xfeff, 0xfeff, 1},
	},
	R32: []unicode.Range32{
		{0x101fd, 0x101fd, 1},
		{0x102e0, 0x102e0, 1},
		{0x10376, 0x1037a, 1},
		{0x10a01, 0x10a03, 1},
		{0x10a05, 0x10a06, 1},
		{0x10a0c, 0x10a0f, 1},
		{0x10a38, 0x10a3a, 1},
		{0x10a3f, 0x10a3f, 1},
		{0x10ae5, 0x10ae6, 1},
		{0x10d24, 0x10d27, 1},
		{0x10eab, 0x10eac, 1},
		{0x10efd, 0x10eff, 1},
		{0x10f46, 0x10f50, 1},
		{0x10f82, 0x10f85, 1},
		{0x11001, 0x11001, 1},
		{0x11038, 0x11046, 1},
		{0x11070, 0x11070, 1},
		{0x11073, 0x11074, 1},
		{0x1107f, 0x11081, 1},
		{0x110b3, 0x110b6, 1},
		{0x110b9, 0x110ba, 1},
		{0x110bd, 0x110bd, 1},
		{0x110c2, 0x110c2, 1},
		{0x110cd, 0x110cd, 1},
		{0x11100, 0x11102, 1},
		{0x11127, 0x1112b, 1},
		{0x1112d, 0x11134, 1},
		{0x11173, 0x11173, 1},
		{0x11180, 0x11181, 1},
		{0x111b6, 0x111be, 1},
		{0x111c9, 0x111cc, 1},
		{0x111cf, 0x111cf, 1},
		{0x1122f, 0x11231, 1},
		{0x11234, 0x11234, 1},
		{0x11236, 0x11237, 1},
		{0x1123e, 0x1123e, 1},
		{0x11241, 0x11241, 1},
		{0x112df, 0x112df, 1},
		{0x112e3, 0x112ea, 1},
		{0x11300, 0x11301, 1},
		{0x1133b, 0x1133c, 1},
		{0x11340, 0x11340, 1},
		{0x11366, 0x1136c, 1},
		{0x11370, 0x11374, 1},
		{0x11438, 0x1143f, 1},
		{0x11442, 0x11444, 1},
		{0x11446, 0x11446, 1},
		{0x1145e, 0x1145e, 1},
		{0x114b3, 0x114b8, 1},
		{0x114ba, 0x114ba, 1},
		{0x114bf, 0x114c0, 1},
		{0x114c2, 0x114c3, 1},
		{0x115b2, 0x115b5, 1},
		{0x115bc, 0x115bd, 1},
		{0x115bf, 0x115c0, 1},
		{0x115dc, 0x115dd, 1},
		{0x11633, 0x1163a, 1},
		{0x1163d, 0x1163d, 1},
		{0x1163f, 0x11640, 1},
		{0x116ab, 0x116ab, 1},
		{0x116ad, 0x116ad, 1},
		{0x116b0, 0x116b5, 1},
		{0x116b7, 0x116b7, 1},
		{0x1171d, 0x1171f, 1},
		{0x11722, 0x11725, 1},
		{0x11727, 0x1172b, 1},
		{0x1182f, 0x11837, 1},
		{0x11839, 0x1183a, 1},
		{0x1193b, 0x1193c, 1},
		{0x1193e, 0x1193e, 1},
		{0x11943, 0x11943, 1},
		{0x119d4, 0x119d7, 1},
		{0x119da, 0x119db, 1},
		{0x119e0, 0x119e0, 1},
		{0x11a01, 0x11a0a, 1},
		{0x11a33, 0x11a38, 1},
		{0x11a3b, 0x11a3e, 1},
		{0x11a47, 0x11a47, 1},
		{0x11a51, 0x11a56, 1},
		{0x11a59, 0x11a5b, 1},
		{0x11a8a, 0x11a96, 1},
		{0x11a98, 0x11a99, 1},
		{0x11c30, 0x11c36, 1},
		{0x11c38, 0x11c3d, 1},
		{0x11c3f, 0x11c3f, 1},
		{0x11c92, 0x11ca7, 1},
		{0x11caa, 0x11cb0, 1},
		{0x11cb2, 0x11cb3, 1},
		{0x11cb5, 0x11cb6, 1},
		{0x11d31, 0x11d36, 1},
		{0x11d3a, 0x11d3a, 1},
		{0x11d3c, 0x11d3d, 1},
		{0x11d3f, 0x11d45, 1},
		{0x11d47, 0x11d47, 1},
		{0x11d90, 0x11d91, 1},
		{0x11d95, 0x11d95, 1},
		{0x11d97, 0x11d97, 1},
		{0x11ef3, 0x11ef4, 1},
		{0x11f00, 0x11f01, 1},
		{0x11f36, 0x11f3a, 1},
		{0x11f40, 0x11f40, 1},
		{0x11f42, 0x11f42, 1},
		{0x13440, 0x13440, 1},
		{0x13447, 0x13455, 1},
		{0x16af0, 0x16af4, 1},
		{0x16b30, 0x16b36, 1},
		{0x16f4f, 0x16f4f, 1},
		{0x16f8f, 0x16f92, 1},
		{0x16fe4, 0x16fe4, 1},
		{0x1bc9d, 0x1bc9e, 1},
		{0x1bca0, 0x1bca3, 1},
		{0x1cf00, 0x1cf2d, 1},
		{0x1cf30, 0x1cf46, 1},
		{0x1d167, 0x1d169, 1},
		{0x1d173, 0x1d182, 1},
		{0x1d185, 0x1d18b, 1},
		{0x1d1aa, 0x1d1ad, 1},
		{0x1d242, 0x1d244, 1},
		{0x1da00, 0x1da36, 1},
		{0x1da3b, 0x1da6c, 1},
		{0x1da75, 0x1da75, 1},
		{0x1da84, 0x1da84, 1},
		{0x1da9b, 0x1da9f, 1},
		{0x1daa1, 0x1daaf, 1},
		{0x1e000, 0x1e006, 1},
		{0x1e008, 0x1e018, 1},
		{0x1e01b, 0x1e021, 1},
		{0x1e023, 0x1e024, 1},
		{0x1e026, 0x1e02a, 1},
		{0x1e08f, 0x1e08f, 1},
		{0x1e130, 0x1e136, 1},
		{0x1e2ae, 0x1e2ae, 1},
		{0x1e2ec, 0x1e2ef, 1},
		{0x1e4ec, 0x1e4ef, 1},
		{0x1e8d0, 0x1e8d6, 1},
		{0x1e944, 0x1e94a, 1},
		{0xe0000, 0xe0fff, 1},
	},
}
