// Package noisefetch fetches a webpage and stores its text on disk, with
// helpers for the genre pages published by everynoise.com.
//
// # Basic Usage
//
//	cfg := noisefetch.DefaultConfig()
//	cfg.Output = "brooklyn.html"
//
//	c, err := noisefetch.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := c.Save(ctx)
//
// With the zero-value URL the default page,
// https://everynoise.com/engenremap-brooklynindie.html, is fetched.
// Save replaces the output file atomically: a failed request never leaves a
// truncated or partially written file behind.
//
// # Genre Pages
//
// [Client.Artists] lists the artists on a genre map page and
// [Client.MostSimilar] compares the similarity pages of two genres.
//
// # Dependency Injection
//
//	c, err := noisefetch.New(cfg,
//	    noisefetch.WithHTTPClient(mockClient),
//	    noisefetch.WithLogger(customLogger),
//	)
//
// Errors can be inspected with errors.Is against [ErrInvalidConfig],
// [ErrEmptyURL] and [ErrNoCommonGenre], or with errors.As against
// *[StatusError].
package noisefetch
