package document

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

const noiseSelector = "script, style, noscript, iframe, template, svg"

type htmlConverter struct {
	readability bool
}

func (c *htmlConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	data, err := src.Bytes()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src.Name(), err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	body, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	if c.readability {
		body = mainContent(body, src)
	}

	var opts []converter.ConvertOptionFunc
	if src.BaseURL != "" {
		opts = append(opts, converter.WithDomain(src.BaseURL))
	}

	md, err := htmltomarkdown.ConvertString(body, opts...)
	if err != nil {
		return "", fmt.Errorf("html to markdown: %w", err)
	}
	return md, nil
}

// mainContent keeps the readable article of a page. The full page is
// returned when readability finds nothing.
func mainContent(body string, src Source) string {
	pageURL, err := url.Parse(src.BaseURL)
	if src.BaseURL == "" || err != nil {
		pageURL = &url.URL{Scheme: "file", Path: "/" + src.Name()}
	}

	article, err := readability.FromReader(strings.NewReader(body), pageURL)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return body
	}
	return article.Content
}
