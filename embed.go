// Package searchportal holds the templates and static assets compiled into
// the server binary.
package searchportal

import "embed"

// Views holds the HTML templates under views/.
//
//go:embed views
var Views embed.FS

// Static holds the stylesheets and other assets under static/.
//
//go:embed static
var Static embed.FS
