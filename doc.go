// Package md2wp publishes local Markdown documents to a WordPress site.
//
// The pipeline is strictly sequential: parse the document, upload every
// referenced local file to the media library, rewrite local paths to the
// returned URLs, optionally render the body to HTML, and create the post
// over XML-RPC.
//
// Basic usage:
//
//	pub, err := md2wp.New("https://example.com", "admin", "app-password")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := pub.Publish(ctx, md2wp.Input{Path: "article.md"})
package md2wp
