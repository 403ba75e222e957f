package libsai

// The four fixed cipher key tables (C1). Each is a 256-entry lookup
// table of 32-bit words; the page codec sums four such lookups per
// cipher step (see decryptWords in codec.go). They are immutable
// compile-time constants, not secrets scoped to any one container.

var userKeyTable = KeyTable{
	0x22781a1c, 0x064adaa1, 0xfec451ee, 0xebccd9d2, 0x6e229489, 0xaac6f0d0, 0xef459d7e, 0xc1a4126b,
	0x3ec3207f, 0x03514e39, 0x78591532, 0x051071ed, 0x6e975b1b, 0x3b7b45c1, 0x2baac820, 0x2770df97,
	0xacc61b16, 0x9b397444, 0x03847d1c, 0x08d0daef, 0x622b5609, 0x15a43dfc, 0xd1656ad1, 0xfbd1ed0e,
	0x087988f6, 0x158ddce5, 0x6c34564d, 0x394d2353, 0x39c6b5c0, 0x00a68d9f, 0xf3b5a7b5, 0xaf27a694,
	0x255466ae, 0x99bfbfae, 0xa70359eb, 0x4bf5a174, 0x04b08db9, 0xb5f3407a, 0x6271be04, 0xe3938f5c,
	0xdd708a60, 0x4ba163be, 0x9d049af5, 0xc51d86d8, 0xcd113b5b, 0xa53fe2a6, 0x740acc73, 0x9d13ec91,
	0xf0b626f1, 0xb96b8465, 0xf50f5256, 0xf7f62374, 0x408fedb8, 0x1a2ed7a4, 0xdb9ccee9, 0x0a7836e9,
	0x980707db, 0x67772f05, 0xd06e078e, 0x036637e1, 0x76d4d0ac, 0x74e5ff4c, 0xaa8f438a, 0x1d3a7c55,
	0x04ae54ad, 0x0949e5b0, 0x8a0016af, 0x9263ea65, 0x0ac883b2, 0x4d67134d, 0x4ed27d8a, 0x2d049a5b,
	0x77bb0afc, 0xca74b04e, 0xd3d69070, 0x3aca831c, 0x3f8fff48, 0xccb5701b, 0x34720940, 0xde1c4e4d,
	0xad6d7147, 0x6bf78c45, 0xd5934e3a, 0x36de5210, 0x6f19a79e, 0x26a3070b, 0x8e0ac16a, 0x12daa559,
	0x88456a41, 0x84a64027, 0xd8f248b6, 0xad7cc8c4, 0xb8ee0c36, 0x5476e0c2, 0x85b27a55, 0x95ef5a09,
	0xab66ee9e, 0xa017ad44, 0xe25ff4fb, 0x84d3c9fb, 0x407636ad, 0x52d96a7c, 0x8d4c6357, 0x25f6fb44,
	0xa95ec76b, 0x47c069f2, 0x153f9d2d, 0x35d38260, 0xf66bb54f, 0x9880b0ee, 0x5d3bc3a0, 0x8cb5f1e7,
	0x63a81cc3, 0x6639d7bb, 0xc51da25c, 0x5b954417, 0x91ec6e1c, 0x99d3e16b, 0x5a208114, 0x0a46a6b5,
	0x0c9d565d, 0x6c820bb6, 0x936f74cc, 0xc32f8cd7, 0x641bc42d, 0x8f532622, 0x99756ec9, 0xa126c77f,
	0x40ea68fb, 0xb354ce21, 0x788f9649, 0xc2989e2a, 0xfaeb6604, 0x535e0f31, 0xc5b4abcd, 0x496956cb,
	0x15b0e573, 0x2acebe7c, 0x5d295f7c, 0xae1a67ff, 0xbe5b272d, 0x8d63a432, 0xc55680c0, 0xbc9fc687,
	0xcdaf90a0, 0xc8ca60dd, 0x1ee1d415, 0xa80fa2a4, 0xd73a9da9, 0x1570022e, 0xb38cde34, 0x21030831,
	0x40a40e53, 0xecafd264, 0xca887bb5, 0x7a29900a, 0x4d3677de, 0xfa733138, 0x16db9d52, 0xcb4c12aa,
	0x6a37b2e6, 0x110ca6b3, 0x3e8a0f9e, 0x9047f462, 0xb7bbe3e7, 0xb32ba684, 0x3893ea59, 0xfec5fe15,
	0x61e8ac56, 0xf8289a87, 0x8479e85b, 0x972848a2, 0x59b4b03c, 0x39d9ab45, 0x9a90aebd, 0x67ae6ade,
	0xf44a0b24, 0x10f4e7d3, 0x0dd6fb54, 0x853e534a, 0xa5b1a8c1, 0x8591d235, 0x4532961e, 0xe9dae126,
	0x0a3100f9, 0x6fe8882e, 0xa3439c58, 0xc9d673bc, 0xf39ffdec, 0x886d045d, 0x3430b5ee, 0x7321f1a8,
	0xef8e3362, 0x15ae95f3, 0x2502591b, 0xaa00cf6b, 0xce53253d, 0xf46ed8a7, 0xc03fcc5a, 0x0f268080,
	0x39eb0c7b, 0x54ec4969, 0x65e1f6a9, 0x3dab9d53, 0x8e3a9033, 0x5baf5b8d, 0xab0adfa2, 0xef221c7d,
	0x3910af4b, 0xb3c2ffd7, 0x6b3550ab, 0xe52a575b, 0x57ed77db, 0xdbdb0150, 0xc5dac9a8, 0x011f7c3f,
	0x3d858513, 0x29d3d380, 0x27dcb071, 0x8b8bdb98, 0xefecdf64, 0xf40cc9e4, 0xcb3f90fc, 0x1d2181ec,
	0x8e9efb22, 0x6ea8e83f, 0x06490ce8, 0xdd57ff42, 0x754a6dbd, 0x2747e9a3, 0x940f77da, 0x24755ea0,
	0x7b823770, 0x90e91106, 0xebf88422, 0x94eb8a1c, 0x50a761c8, 0x2f59cf67, 0xc011a39d, 0x782d4c2c,
	0xe4bc3bf8, 0x1ba24939, 0x022d4f1b, 0xd201257c, 0x23751b4b, 0x839b53e5, 0xd51765d6, 0x0c1a9900,
	0xb86c653d, 0xadb03458, 0xcc575965, 0xc806b1d8, 0xd98a6606, 0x3c1778c3, 0xb2e159c4, 0xa2eb3028,
}

var notRemoveMeKeyTable = KeyTable{
	0x584b2f98, 0x8abe19c4, 0x79511de7, 0x0757c2b1, 0x1f323b11, 0x5256d019, 0x82e33253, 0x718d20e7,
	0x67a4efcf, 0xb1f32ec1, 0x5147fe54, 0x7f280b52, 0xb60cfa13, 0x009f5834, 0x98ac12f8, 0x4490efa1,
	0x75f88173, 0xdf0ca098, 0x28ef27f7, 0x4e259e1f, 0x41261d6c, 0xd3f05909, 0xc2f3b941, 0x0ea3b62c,
	0x74a749ff, 0x2e840153, 0x7b68f684, 0xd2b0cf58, 0xa02ef455, 0xaa290be7, 0xe1e067ed, 0x4eab9d03,
	0x9c779346, 0xadf3ed69, 0xdb8a0d86, 0xdd6a93fb, 0x6da33a51, 0x57cafb85, 0x1ff1a4d8, 0x463c9ccd,
	0x610f95ff, 0xe5b7b8c7, 0x47456390, 0x8dd5d76b, 0xd02d3217, 0xbb92cd20, 0xa4e13b5b, 0xf2c9495e,
	0xa7be714f, 0x5b631504, 0x01b2b545, 0xb45de7c8, 0x1c3890da, 0xca592eab, 0x1e0b14cd, 0xeec3da04,
	0x25e10865, 0x9958e873, 0x0e8f8158, 0x2a3b3f4a, 0xf7996dc3, 0x9e0d7ab3, 0x1a3b41de, 0x3217a31e,
	0x08f404a4, 0x8478d214, 0x5979bc29, 0xb169c1b7, 0xa2b3c618, 0x9465cf20, 0x9dbae5e0, 0xe1d62903,
	0xba3d3478, 0x8af57e01, 0x839cdffb, 0x1415ca8a, 0x05df5928, 0x31bfe4f5, 0x69056ec5, 0x5f6839cb,
	0x527fc983, 0xc2b078a4, 0x793750b6, 0xf71afde6, 0xbc6b5f15, 0x26bb0ef1, 0xabc4a523, 0xd37b88f3,
	0xeed281e1, 0x63312c56, 0x91c22e6b, 0x55eba9ec, 0x3a110967, 0x7c817bd9, 0x2cb436a4, 0xe67c9114,
	0xff9b4c5b, 0x541c8d33, 0x72eb722e, 0x89793359, 0x4d5aded0, 0xc69a6790, 0xc76c7624, 0x7cb28cf0,
	0x88bfd6a6, 0x3f0eddf3, 0x72a93acb, 0xebfe7653, 0x83b49de9, 0x113f084d, 0xf6ecda96, 0xda7ba569,
	0x740c9242, 0x2ed08d60, 0xd0eec91e, 0x306cb2f8, 0x604fddc1, 0xe501b77a, 0xae3d4f2d, 0xfcc574e1,
	0x1976c46d, 0xfe9b9690, 0x0573c634, 0xcb1a652e, 0x704338d1, 0xfc7b7cdd, 0xeff2308d, 0x959b4bfc,
	0x6072044e, 0x3f815253, 0xacac2e76, 0x053da227, 0x9e5a49fb, 0x3bcd0b69, 0xceaca119, 0x0b7a279e,
	0xbeb1cb1a, 0x7d8bd693, 0xec6f12df, 0xc8aa4d65, 0xa1d31126, 0xbd01ab7d, 0x85a7a60a, 0x5dbd0999,
	0x6d44ac1e, 0xe0251fdd, 0x380d5872, 0xf3696f93, 0x0df77b1e, 0xb00d80d4, 0x02f71b3f, 0xd381f517,
	0x494f1346, 0xcfd75c75, 0xaf642579, 0x52a9031c, 0x2b9df559, 0x33e56782, 0x7db86908, 0x63b379c4,
	0x9df40fa1, 0x9c041581, 0xc83361bb, 0x248e2499, 0xe3b3e677, 0x70d470e9, 0x27ecde2d, 0x390d2719,
	0x2027742e, 0x1af8bc9f, 0xa0001f6a, 0xde4cdd1c, 0xf800828b, 0xe26342c3, 0xcd579c1e, 0xe45c2df4,
	0x5db13da5, 0x3ab1b447, 0x8b13193b, 0xeeb5a901, 0x29213dab, 0xdc1f06c1, 0xa4202ce2, 0x963bbbbc,
	0xc8c5285a, 0xd405891d, 0xc1e56a4e, 0xf93f1f18, 0x415e5cb6, 0xd3d3e392, 0x5b9f7c02, 0x37f3a7ad,
	0x23c2e3ee, 0x885c9a11, 0x78c8445e, 0x7834339f, 0x36b23b3c, 0x4b65f916, 0x7caf2595, 0x9ba4fafb,
	0x9b888846, 0xda81adc6, 0x081a511a, 0x051f30c6, 0x83f7a9e5, 0xafad6280, 0x7c510cbe, 0xe51aa9fd,
	0xb48f6c0f, 0x78dab188, 0xf39f795d, 0x8a2e37e7, 0xd68cc04e, 0x9e21c68c, 0x78f2ab74, 0x9e1b8afa,
	0x07d31658, 0xc61cbe54, 0x6b14c15f, 0x94d440c0, 0x85459a66, 0xf7216d22, 0x8a2d4c60, 0x578aebb0,
	0x5561370e, 0x0399170e, 0x0e6031f2, 0x0390ce7d, 0x51b30912, 0x22bb7a1a, 0xf2fb8026, 0xdd1f2a79,
	0x3252dc71, 0x5245db7f, 0xcc63b2aa, 0xfce35991, 0x6df77d59, 0xc9df9297, 0x4a208571, 0x0b5f8ef6,
	0xaaa74576, 0x033d2a32, 0x691c18ef, 0xaa30300f, 0x2a0144f7, 0x516b12b8, 0x54bd6fe6, 0xd17bbb86,
	0x676e38e3, 0xae33139a, 0x444682fa, 0x17289636, 0xb824cce1, 0x16a77b9d, 0xc3404997, 0x842b596e,
}

var localStateKeyTable = KeyTable{
	0x5d43544a, 0xce8bfa4f, 0x898a176e, 0xa791e97d, 0xcd7e8062, 0xb32b15bb, 0xe21fb3d5, 0x98c62507,
	0xd0bb8db4, 0x80a6fb72, 0xa6da0656, 0x24061e9e, 0x1d6003f4, 0xbecf221b, 0x0b0184fd, 0x48591f72,
	0x1d5a3f89, 0x0fcd695c, 0xfe31bdcf, 0xf88f186b, 0x6bccc0ea, 0x89eed942, 0x0a10b401, 0x8e83d369,
	0x693faade, 0x10e0b96c, 0xfe6a6bca, 0xd17d3a23, 0xb11546df, 0x201bed38, 0xea24bf26, 0xc5c87906,
	0x97f35232, 0x4b18f1e8, 0xf19eb43a, 0xc4251176, 0xa777ac13, 0x0c494849, 0x8d4f27c9, 0x5f705152,
	0xfe1d441f, 0x854f6550, 0x554f65e2, 0x879c5a7b, 0x96b4be52, 0x2ea1234d, 0x53d84309, 0x2c909475,
	0xfddb443a, 0x3ed59c14, 0x27bc0d5f, 0x64e074d4, 0x2522fcc9, 0x2dc7d314, 0x23022006, 0x8758a367,
	0xf5b5555d, 0xbcc58092, 0x962f19d9, 0xd7946933, 0x0cf6a92a, 0xe3a33da3, 0x06f4eaa8, 0xef954878,
	0x95d70d95, 0xf8d76347, 0x834eaa18, 0x97bda2de, 0x5f28168d, 0xe2ca9651, 0xb01d2471, 0x86f2c938,
	0x25617c92, 0x5494048b, 0x54a4dfa9, 0x25629821, 0xbab6e152, 0xb50ed19c, 0x8891a642, 0x376eb5ae,
	0xdabbad23, 0x4ceccf2c, 0x742d90a8, 0x01268534, 0xe18dd374, 0x278cae25, 0xfb42b721, 0x197effb2,
	0x17934236, 0x8562065c, 0x70957588, 0x1aa749da, 0x80127294, 0x06522334, 0x04a4c7ee, 0x17707182,
	0x31479962, 0x8f1cb2b7, 0x30019c52, 0x72f06f77, 0x9cc8aff8, 0xafca8703, 0x1a798a56, 0x4d58a62f,
	0x6a3036c1, 0xf1ec3615, 0x92fb1dc2, 0xd9278903, 0x28f85d00, 0x4851d92c, 0x1df87256, 0x65e5ca6f,
	0x49a0c35b, 0x68bafc7e, 0xd191db64, 0xb558ed5a, 0xb68cdd43, 0x89b1d1f1, 0xc27aaef6, 0x632081a4,
	0x11933dee, 0xb3f619d9, 0x696d365f, 0x3b70800c, 0x4553a334, 0x17924e6e, 0x95ab8961, 0x747cbf62,
	0x91815bea, 0xe5749414, 0x8933d20f, 0x9d3b3d76, 0xa82587bc, 0x02937175, 0xfb01024b, 0xb249f20f,
	0x0d02d56b, 0xa25c493c, 0x44004ca1, 0xff1d070b, 0xa0755655, 0x5d41924a, 0x8e145c0e, 0xb7264644,
	0x8231cfd3, 0xc2b5b4f6, 0xf1429283, 0xc146c24a, 0x38fe576d, 0xb06242e4, 0xffe9619b, 0xa89766b6,
	0xcc711656, 0x39cf806b, 0xf19215ca, 0xd64a87bf, 0x5119b8c1, 0xa634d3e1, 0xb5555565, 0xe0c6a9b9,
	0x8bc3fb61, 0x615b87f6, 0x250caba4, 0xbf760098, 0x93c2da6a, 0xd9703b8d, 0x1e3f652d, 0xa1cd3060,
	0xffe74380, 0xe57e412b, 0x863dc746, 0xe4761dac, 0xdfb247ed, 0x7eba250a, 0x797478e7, 0x3b7499b3,
	0xa0171fd2, 0x3e42baa4, 0x4bd7cbcf, 0xe7602198, 0x89395611, 0xdc9fda6c, 0xdd9b7925, 0xe54f8f3a,
	0x81b068ae, 0x1818317c, 0xd8c07287, 0x048fc02f, 0x6dc1932a, 0xab3b63f8, 0x2fc40b1a, 0x7a449569,
	0xf5d1e2bd, 0xf942e9be, 0x2ada0b04, 0x1ced65f9, 0xba11a7d0, 0x5397f405, 0x0ff7534e, 0x5642d1a1,
	0x82a804da, 0xc453bda3, 0xcf170e50, 0xf57e3efe, 0x669d126e, 0x5ec6b0c6, 0x9318a189, 0x621181bd,
	0x16e71d6e, 0x5c1e5eab, 0x6ea5dc8e, 0x73bab494, 0x802ce600, 0x8171e6b6, 0x094874c5, 0xfdca328d,
	0xc8e22740, 0x0d4649e5, 0x4b2bf0d8, 0x932da240, 0xcbd38fb2, 0xfe97c6a0, 0xce3b75a1, 0xb16fb926,
	0x8f201a63, 0x01ebb6f5, 0x9190808f, 0xb1a529af, 0x8688bf07, 0xbc6ae1d3, 0xea4ece9b, 0x402b5df5,
	0x5928efdf, 0xdeb69b76, 0xb6d3eeda, 0xaa11a09e, 0x5e47dc7f, 0x1cc5bdfb, 0xc42b8086, 0x335849fb,
	0x7681adc8, 0x242906d4, 0x9a83110d, 0xecfb66dc, 0x84347f4c, 0x7062aee2, 0x92617b9d, 0x1f422794,
	0x2da1c3cc, 0xaed16d20, 0xedd0bfda, 0xbf5bdb2f, 0x43f57f30, 0x6e722e19, 0x5d9263e1, 0x2c2729d6,
}

var systemKeyTable = KeyTable{
	0xffec621f, 0x0658c2c8, 0xde3874c8, 0xc4828f98, 0x3b496120, 0xfac03856, 0x449a50d3, 0xde86c5f3,
	0xc12c7b0f, 0x87fa3909, 0xdbb455e4, 0x70175160, 0xdd5893dd, 0x2b49ddcc, 0x0efae334, 0x0115053a,
	0x97f0a983, 0xdad19483, 0xe07194c3, 0x8fda2b57, 0x9ca56fef, 0x1a4a7f23, 0xe0688b74, 0xd1c80d17,
	0xdd3a2162, 0xbbd390c9, 0xf09051ac, 0xae10333e, 0xa68347a5, 0x0087935e, 0xaf696f28, 0xd309e3ae,
	0x00f6d610, 0x9ca3da4a, 0x1ab7de5f, 0xcef592c1, 0xe91c1e77, 0x308ba8de, 0xf79908d6, 0x06f7d177,
	0x67f0ac7b, 0x3d815dc4, 0xd1030dd8, 0xa7b2e504, 0x9951092d, 0xb6ea57f7, 0x7e8df65d, 0xc880f9be,
	0x215d1ec5, 0xd23a0f67, 0xe902770c, 0x5b973b5d, 0x23646143, 0x46c68a45, 0x664251c2, 0xa33af81f,
	0x7b15a663, 0x34ed906f, 0x5ae650ff, 0x8fc6e8e3, 0x098e904e, 0xab608c2d, 0xe64b5abf, 0x2e837a11,
	0x79ee24d1, 0x13ff170b, 0xd2dfff04, 0x8ad25afb, 0xf0261d9d, 0x41212eb7, 0xfa08654c, 0x22925d9c,
	0x4d1cc88c, 0x55a973ca, 0x01d1ca62, 0x2b2f53ac, 0xea0cd321, 0x7d71a9b5, 0x40a29f56, 0x7a4288b2,
	0x41cf7e18, 0x6f890ade, 0x948f5b57, 0x83551005, 0x0be1b54f, 0x9441368b, 0xe091f7a3, 0x12daeab1,
	0xbe114397, 0x5a1efc66, 0x37ddab4f, 0xd43548b5, 0xd95912a4, 0x9ab00b62, 0xe05cd70c, 0x2d102012,
	0x0b5ce7fb, 0x63da496a, 0x74149e31, 0x1d8b76d8, 0x1959a170, 0x83814eab, 0xe0db0ba1, 0xb44205b6,
	0x6a63464c, 0x57f22439, 0x7dd4bde3, 0xa77db237, 0x36500fea, 0xc207d3bc, 0x3679bf04, 0x32bec6c8,
	0xa691cc9b, 0x7f5e805a, 0x45e769f0, 0xb3fe8e1c, 0x259adf42, 0xb026af1b, 0xdd7a42d9, 0x31042169,
	0x1002245d, 0xc5bc6d39, 0x4b764fb4, 0xd2915074, 0xeb6a2b5b, 0x6e22973b, 0xa478c279, 0x3ac03022,
	0xa449a640, 0x80bc2e00, 0xaaf9bb7e, 0x2f508315, 0xd975ad0c, 0xf65777a6, 0x0cd4c517, 0x1abb8aac,
	0x1629d43b, 0xb97aefec, 0x7464a84f, 0xccca27d9, 0x8e193be1, 0x85cca533, 0x3c337d46, 0x20e905eb,
	0x0ad8dde1, 0x3dfa5f33, 0xb59c839d, 0x98091c2a, 0xca0c3c6c, 0xfdb2cf2c, 0x2eb4bde7, 0x98082d03,
	0x28a87937, 0xd65fd4f0, 0xb4f99090, 0x5b91af45, 0xa15e3759, 0x9111b4e3, 0x563d6385, 0xb3fa6ac3,
	0x2aecc7d2, 0xf0cd05f9, 0x5e33b5c0, 0x39ff9125, 0xb0b1cdc8, 0xa819a0cc, 0x1c0db74c, 0xf66825fe,
	0xa8240e35, 0x15b5e244, 0x965be1fa, 0xa6fe4dc8, 0x87a8370b, 0xa86be24f, 0x506f639e, 0x3f834f90,
	0x985df1a8, 0xeb74b11c, 0xd7b6f957, 0x1b1fbe39, 0x77c5e2f5, 0xb8ffc038, 0x5fe4e8c4, 0x9d7d3efa,
	0x6eee16cb, 0x2ad33ad0, 0xfcaa9e94, 0x40716c28, 0xd37f0092, 0x5ec67da4, 0xbf2416bd, 0x8386a0c4,
	0xa45f6a6b, 0x6b57f2a2, 0x357cfc43, 0xf46dee19, 0x7c73b30e, 0x485cb6e7, 0x0e870d47, 0x0adcc0d0,
	0xca17bfd3, 0x8055e585, 0xa04e2517, 0xf9721b41, 0xf956afcc, 0xb9480afb, 0xbaf1e8f0, 0x7a1acbe7,
	0x4fa170d4, 0x56c3c129, 0xf2383d1a, 0x46fbfd37, 0x12fd32b9, 0x21e3556c, 0x2290e9ab, 0xcb175959,
	0x27b141a7, 0xff316ac5, 0x9f5dddd1, 0xb81a1be2, 0x97a2ec71, 0x8fb98587, 0x5e2e7a63, 0xbd280892,
	0x3b78c76f, 0x5133e205, 0x8319c33c, 0xd4bdcee3, 0xc1529233, 0xf183cc99, 0x8a05bab1, 0x97230718,
	0x0fcfe3f8, 0x85a3de20, 0x32938373, 0x1d4583ad, 0x0b3ed395, 0xf8cf7d53, 0xfbc7cac1, 0x51629a4e,
	0x4740303b, 0x69a96398, 0xfe926fd5, 0xde7a5a41, 0x33742bd8, 0x77e16b3f, 0x0a5269fc, 0xaad4830a,
	0x6c0e1450, 0x7e0c2152, 0xbee59461, 0x815ff8f5, 0xb66d9d75, 0xbda4cd14, 0xa4cdbdf7, 0x7d19dd8e,
}

