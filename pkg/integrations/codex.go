package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/champions/pkg/data"
)

// CodexBuilder collects champions into an EPUB, one section per champion.
type CodexBuilder struct {
	book     *epub.Epub
	imageDir string
	sections int
}

func NewCodexBuilder(title string) (*CodexBuilder, error) {
	book, err := epub.NewEpub(title)
	if err != nil {
		return nil, fmt.Errorf("failed to create EPub: %w", err)
	}
	book.SetAuthor("LoL Champion Encyclopedia")
	book.SetDescription("Your liked League of Legends champions")
	book.SetLang("en")

	// go-epub reads images lazily during Write, so they stay on disk until Close.
	imageDir, err := os.MkdirTemp("", "champions-codex-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}

	return &CodexBuilder{book: book, imageDir: imageDir}, nil
}

// AddChampion appends a section. portrait may be nil.
func (b *CodexBuilder) AddChampion(champion data.Champion, portrait []byte) error {
	var imgTag string
	if len(portrait) > 0 {
		filename := fmt.Sprintf("champion-%d.jpg", champion.ID)
		path := filepath.Join(b.imageDir, filename)
		if err := os.WriteFile(path, portrait, 0644); err != nil {
			return fmt.Errorf("failed to stage portrait: %w", err)
		}
		internalPath, err := b.book.AddImage(path, filename)
		if err != nil {
			return fmt.Errorf("failed to add portrait for %s: %w", champion.Name, err)
		}
		imgTag = fmt.Sprintf(`<div class="portrait"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>`,
			internalPath, html.EscapeString(champion.Name))
	}

	if _, err := b.book.AddSection(renderChampion(champion, imgTag), champion.Name, "", ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	b.sections++
	return nil
}

func (b *CodexBuilder) Sections() int {
	return b.sections
}

func (b *CodexBuilder) Write(path string) error {
	if b.sections == 0 {
		return fmt.Errorf("no champions to compile")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := b.book.Write(path); err != nil {
		return fmt.Errorf("failed to write EPub: %w", err)
	}
	return nil
}

func (b *CodexBuilder) Close() error {
	return os.RemoveAll(b.imageDir)
}

func renderChampion(c data.Champion, imgTag string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(c.Name))
	fmt.Fprintf(&sb, "<p><em>%s</em></p>\n", html.EscapeString(c.Title))
	sb.WriteString(imgTag)

	if len(c.Tags) > 0 {
		fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(strings.Join(c.Tags, " · ")))
	}

	fmt.Fprintf(&sb, "<h2>Resource</h2>\n<p>%s</p>\n", html.EscapeString(c.Partype))
	fmt.Fprintf(&sb, "<h2>Summary</h2>\n<p>%s</p>\n", html.EscapeString(c.Blurb))

	sb.WriteString("<h2>Base stats</h2>\n<table>\n")
	for _, row := range c.Stats.Rows() {
		fmt.Fprintf(&sb, "<tr><td>%s</td><td>%s</td></tr>\n", row.Label, row.Value)
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

// SanitizeFilename removes characters that are invalid in filenames
func SanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
