package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/parse"
	"github.com/signadot/valu/value"
)

var docSep = []byte("\n---\n")

// readDocs reads the documents of path, "-" being standard input. YAML
// streams may hold several documents separated by "---" lines.
func readDocs(cfg *MainConfig, cc *cli.Context, path string) ([]value.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parseDocs(cfg, path, d)
}

func parseDocs(cfg *MainConfig, path string, d []byte) ([]value.Value, error) {
	d = bytes.TrimPrefix(d, []byte("---\n"))
	parts := bytes.Split(d, docSep)
	res := make([]value.Value, 0, len(parts))
	for i, part := range parts {
		if len(bytes.TrimSpace(part)) == 0 {
			continue
		}
		v, err := parseValue(cfg, path, part)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s document %d: %w", path, i, err)
		}
		res = append(res, v)
	}
	return res, nil
}

func parseValue(cfg *MainConfig, path string, d []byte) (value.Value, error) {
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// readOne reads a file holding exactly one document.
func readOne(cfg *MainConfig, cc *cli.Context, path string) (value.Value, error) {
	docs, err := readDocs(cfg, cc, path)
	if err != nil {
		return value.Value{}, err
	}
	if len(docs) != 1 {
		return value.Value{}, fmt.Errorf("%s: expected 1 document, got %d", path, len(docs))
	}
	return docs[0], nil
}

// eachDoc calls f on every document of files, or of standard input when
// there are none, writing separators between outputs.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(doc value.Value, file string) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	n := 0
	for _, file := range files {
		docs, err := readDocs(cfg, cc, file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if n > 0 {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			if err := f(doc, file); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
			n++
		}
	}
	return nil
}
