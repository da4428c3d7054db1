package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", b)

	return err
}

func printYAML(w io.Writer, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

func printResult(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		return printYAML(w, v)
	}

	return printJSON(w, v)
}
