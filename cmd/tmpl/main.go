// Command tmpl renders a ${...} marker template against a YAML or JSON data
// file.
//
//	tmpl page.tmpl --data page.yml -o page.html
//	tmpl page.tmpl --data page.yml --watch
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	tmpl "github.com/Skateside/template"
)

var (
	dataFile string
	outFile  string
	watch    bool
)

var rootCmd = &cobra.Command{
	Use:   "tmpl <template>",
	Short: "Render a ${...} marker template",
	Long: `Render a template file against a data context read from a YAML or
JSON file. With --watch the output is rewritten whenever the template or the
data file changes.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !watch {
			return render(args[0])
		}
		return watchAndRender(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&dataFile, "data", "d", "", "YAML or JSON file holding the data context")
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "write output here instead of stdout")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render when the template or data file changes")
}

func render(path string) error {
	t, err := tmpl.ParseFile(path)
	if err != nil {
		return err
	}

	data, err := loadData(dataFile)
	if err != nil {
		return err
	}

	out, err := t.Render(data)
	if err != nil {
		return err
	}

	if outFile == "" {
		_, err = fmt.Print(out)
		return err
	}
	return os.WriteFile(outFile, []byte(out), 0644)
}

//loadData decodes the data context. YAML is a superset of JSON, so one
//decoder covers both.
func loadData(path string) (interface{}, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

func watchAndRender(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return err
	}
	if dataFile != "" {
		if err := w.Add(dataFile); err != nil {
			return err
		}
	}

	if err := render(path); err != nil {
		log.Println(err)
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			log.Printf("%s changed", ev.Name)
			if err := render(path); err != nil {
				log.Println(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Println(err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
