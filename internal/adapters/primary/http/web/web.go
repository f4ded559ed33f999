// Package web serves the embedded single-page UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// Register mounts the UI at "/" and its assets under "/static".
func Register(r *gin.Engine) error {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}
	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return err
	}

	r.StaticFS("/static", http.FS(assets))
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	return nil
}
