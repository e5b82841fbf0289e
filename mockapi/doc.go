// Package mockapi provides the machinery for fabricating external API responses.
//
// A simulated API call produces a Flat payload: a map of scalar fields whose compound
// keys encode structure ("results_0_name", "results_0_score", "meta_total"). Tool
// handlers reshape a Flat into the nested response their schema documents, either by
// building typed result structs from the scalar getters or generically via Rows and
// Object. Source supplies seedable randomness so fabricated values are plausible but
// reproducible in tests.
package mockapi
