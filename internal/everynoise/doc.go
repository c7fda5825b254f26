// Package everynoise understands the pages published by everynoise.com.
//
// Two page families are used:
//
//   - engenremap-<genre>.html: the genre map, one div per artist whose
//     onclick handler carries the artist name ([ParseArtists])
//   - everynoise1d-<genre>.html: genres ordered by similarity to <genre>
//     ([ParseSimilarGenres])
//
// [Score] and [MostSimilar] compare two similarity lists.
// Nothing here touches the network.
package everynoise
