//go:generate sh -c "cp \"$GOROOT/lib/wasm/wasm_exec.js\" static/js/wasm_exec.js"
//go:generate env GOOS=js GOARCH=wasm go build -trimpath -ldflags=-s -o static/cursor.wasm ../cmd/cursorwasm

// Package web embeds the site's static assets.
//
// static/js/wasm_exec.js and static/cursor.wasm are build outputs of
// `go generate ./web`. Without them the page is served already revealed and
// the cursor and interactive widgets are left out.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
