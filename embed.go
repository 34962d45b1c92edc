package web

import "embed"

// ContentFS holds the bundled content tree, used when CONTENT_PATH does not
// exist on disk.
//
//go:embed content
var ContentFS embed.FS
