package provide

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lyraproj/provide/api"
	"gopkg.in/yaml.v3"
)

// RenderName is the name of the option value that describes how to render output
type RenderName string

const (
	// YAML render output in YAML
	YAML = RenderName(`yaml`)
	// JSON render output in JSON
	JSON = RenderName(`json`)
	// Binary render output as binary data
	Binary = RenderName(`binary`)
	// Text render output as plain text
	Text = RenderName(`s`)
)

// Render renders a value on a writer using a specified RenderName
func Render(renderAs RenderName, value any, out io.Writer) {
	switch v := value.(type) {
	case api.Sensitive:
		Render(renderAs, v.String(), out)
		return
	case api.Explainer:
		Render(renderAs, v.String(), out)
		return
	}

	switch renderAs {
	case JSON:
		bs, err := json.Marshal(value)
		if err != nil {
			panic(err)
		}
		write(out, bs)
		write(out, []byte{'\n'})

	case YAML:
		if value == nil {
			write(out, []byte{'\n'})
		} else {
			bs, err := yaml.Marshal(value)
			if err != nil {
				panic(err)
			}
			write(out, bs)
		}

	case Binary:
		write(out, toBytes(value))

	case Text:
		_, err := fmt.Fprintln(out, value)
		if err != nil {
			panic(err)
		}

	default:
		panic(fmt.Errorf(`unknown rendering '%s'`, renderAs))
	}
}

func write(out io.Writer, bs []byte) {
	if _, err := out.Write(bs); err != nil {
		panic(err)
	}
}

// toBytes converts a string of base64 encoded data or an array of integers to
// the bytes that they denote
func toBytes(value any) []byte {
	switch value := value.(type) {
	case []byte:
		return value
	case string:
		bs, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			panic(fmt.Errorf(`unable to decode base64 data: %s`, err))
		}
		return bs
	case []any:
		bs := make([]byte, len(value))
		for i, e := range value {
			b, ok := e.(int)
			if !ok || b < 0 || b > 255 {
				panic(fmt.Errorf(`element %d cannot be represented as a byte`, i))
			}
			bs[i] = byte(b)
		}
		return bs
	default:
		panic(fmt.Errorf(`value of type %T cannot be rendered as binary`, value))
	}
}
