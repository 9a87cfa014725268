// sitemapgen validates page records and serializes them into sitemap files.
package main

import (
	"os"

	"github.com/hupe1980/sitemapgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
