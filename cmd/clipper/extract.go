package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	state, err := loadState(c.State)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	responses := make([]*clipper.Response, len(c.Files))
	errs := make([]error, len(c.Files))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, file := range c.Files {
		g.Go(func() error {
			responses[i], errs[i] = c.extractFile(gctx, deps, file, state)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, file := range c.Files {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", file, clipper.ErrorMessage(errs[i]))
			continue
		}
		resp := responses[i]
		if resp.Error != "" {
			fmt.Fprintf(deps.Stderr, "  degraded %s: %s\n", file, resp.Error)
		}

		if err := c.write(deps.Stdout, resp); err != nil {
			return err
		}

		if c.Save {
			item := clipper.NewItem(resp)
			if err := deps.Items.CreateItem(deps.Ctx, item); err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", file, clipper.ErrorMessage(err))
				continue
			}
			fmt.Fprintf(deps.Stderr, "  saved %s as %s\n", file, item.ID)
		}
	}

	if failed > 0 {
		err := clipper.Errorf(clipper.EINVALID, "%d of %d files failed", failed, len(c.Files))
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *ExtractCmd) extractFile(ctx context.Context, deps *Dependencies, file string, state clipper.StateProvider) (*clipper.Response, error) {
	html, err := readInput(deps.Stdin, file)
	if err != nil {
		return nil, err
	}

	doc, err := deps.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	pageURL := c.URL
	if pageURL == "" {
		pageURL = canonicalURL(doc)
	}

	agent := extract.NewAgent(deps.Extractor)
	agent.CaptureSelection(c.Selection)
	return agent.Handle(ctx, pageURL, doc, state), nil
}

func (c *ExtractCmd) write(w io.Writer, resp *clipper.Response) error {
	if c.Format == "text" {
		_, err := fmt.Fprintf(w, "%s\n\n", clipper.FormatItem(clipper.NewItem(resp)))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func readInput(stdin io.Reader, file string) (string, error) {
	if file == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return "", clipper.Errorf(clipper.ENOTFOUND, "file not found: %s", file)
		}
		return "", err
	}
	return string(b), nil
}

// canonicalURL returns the page's declared address, or "".
func canonicalURL(doc clipper.Document) string {
	if n := doc.Find(`link[rel="canonical"]`); n != nil {
		if href := strings.TrimSpace(n.Attr("href")); href != "" {
			return href
		}
	}
	if n := doc.Find(`meta[property="og:url"]`); n != nil {
		return strings.TrimSpace(n.Attr("content"))
	}
	return ""
}

// loadState reads a JSON object of page state objects. Object values are
// kept as raw JSON and string values are used as-is. An empty path means
// the page has no state.
func loadState(path string) (clipper.StateProvider, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, clipper.Errorf(clipper.ENOTFOUND, "state file not found: %s", path)
		}
		return nil, err
	}
	if !gjson.ValidBytes(b) {
		return nil, clipper.Errorf(clipper.EINVALID, "state file is not valid JSON: %s", path)
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, clipper.Errorf(clipper.EINVALID, "state file must hold a JSON object: %s", path)
	}

	state := clipper.StateMap{}
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			state[key.String()] = value.String()
		} else {
			state[key.String()] = value.Raw
		}
		return true
	})
	return state, nil
}
