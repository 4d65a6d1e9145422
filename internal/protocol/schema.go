package protocol

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	helloSchema = mustCompile("hello.schema.json")
	cmdSchema   = mustCompile("cmd.schema.json")
)

func mustCompile(name string) *jsonschema.Schema {
	b, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(b)); err != nil {
		panic(err)
	}
	return c.MustCompile(name)
}

func validate(s *jsonschema.Schema, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return s.Validate(v)
}

// DecodeHello validates and decodes a HELLO message.
func DecodeHello(raw []byte) (HelloMsg, error) {
	var m HelloMsg
	if err := validate(helloSchema, raw); err != nil {
		return m, fmt.Errorf("hello: %w", err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("hello: %w", err)
	}
	return m, nil
}

// DecodeCmd validates and decodes a CMD message.
func DecodeCmd(raw []byte) (CmdMsg, error) {
	var m CmdMsg
	if err := validate(cmdSchema, raw); err != nil {
		return m, fmt.Errorf("cmd: %w", err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("cmd: %w", err)
	}
	return m, nil
}
