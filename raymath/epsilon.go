package raymath

// Epsilon is RT_EPSILON for the double-precision path the module
// standardizes on (spec §4.G.4): 1e-6. The single-precision 1e-4 variant
// from spec §4.G.4 applies only to a float32 build, which this module does
// not provide.
const Epsilon = 1e-6
