// Command yaml2json converts yaml on stdin to formatted json on stdout. It is
// handy when turning yaml data files into json_data fixtures.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// normalize rewrites the containers produced by the yaml decoder so that every
// map is string keyed and can be marshalled as json
func normalize(v any) any {
	switch v := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprintf(`%v`, k)] = normalize(e)
		}
		return m
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
	}
	return v
}

func convert(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	var body any
	if err = yaml.Unmarshal(data, &body); err != nil {
		return err
	}
	bs, err := json.MarshalIndent(normalize(body), ``, ` `)
	if err != nil {
		return err
	}
	_, err = out.Write(bs)
	return err
}

func main() {
	if err := convert(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
