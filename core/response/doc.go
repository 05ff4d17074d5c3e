// Package response provides builders for handler.Response values: plain
// text, HTML, JSON, html/template documents, and redirects, plus the
// HTTPError type used to surface structured errors to the router's error
// handler.
package response
