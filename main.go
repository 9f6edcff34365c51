// Command habrmd saves a single article page as a Markdown file with
// YAML front matter listing the article's tags.
package main

import "github.com/gaurav-prasanna/habrmd/cmd"

func main() {
	cmd.Execute()
}
