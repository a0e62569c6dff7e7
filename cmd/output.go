package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/the-turing-way/pull-files/pkg/config"
)

func printFiles(w io.Writer, format string, files []string) error {
	if files == nil {
		files = []string{}
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(files)
	case config.OutputLines:
		for _, f := range files {
			if _, err := fmt.Fprintln(w, f); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
