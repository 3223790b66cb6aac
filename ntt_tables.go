package mlkem

// zetas holds the precomputed NTT twiddle factors zetas[i] = 17^brv7(i)
// mod q for i in [0, 128), where brv7 reverses the lower 7 bits of i and
// 17 is q's chosen primitive 256th root of unity (FIPS 203 Appendix A).
// Grounded on the teacher's kyberZetas table (pqc/kyber_ntt.go), which
// already carries these exact values; component J permits computing them
// at startup instead of embedding them, but this module embeds them for
// clarity and to guarantee they match the standard exactly.
//
// The same table doubles as the "quadratic component roots" of §4.B's
// multiply_ntt: gamma_i = zetas[64+i] = zeta^{2*brv6(i)+1} for the first
// half of each group of four coefficients, and q-zetas[64+i] for the
// second half, because zeta^128 = -1 and so
// zeta^{2*brv6(i)+129} = -zeta^{2*brv6(i)+1} mod q (the standard identity
// reference Kyber implementations, e.g. circl's pke/kyber, exploit to
// avoid a second table).
var zetas = [128]uint16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848,
	1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333,
	1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055,
	650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402,
	2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100,
	1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687,
	939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645,
	1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886,
	1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

// nInvMod128 is 128^-1 mod q, the scaling factor applied after the
// 7-layer inverse NTT (n = 128 because the final FFT layer is omitted,
// per §4.B).
const nInvMod128 = 3303
