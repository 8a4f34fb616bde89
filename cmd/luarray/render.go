package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/a-peyrard/luarray/array"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

const (
	formatDescribe = "describe"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

type renderer func(value any) (string, error)

func rendererFor(format string) (renderer, error) {
	switch strings.ToLower(format) {
	case formatDescribe:
		return renderDescribe, nil
	case formatJSON:
		return renderJSON, nil
	case formatYAML:
		return renderYAML, nil
	default:
		return nil, fmt.Errorf("%w %q, expected one of %s, %s or %s", errUnknownFormat, format, formatDescribe, formatJSON, formatYAML)
	}
}

func renderDescribe(value any) (string, error) {
	return array.Describe(value), nil
}

func renderJSON(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("unable to render json:\n\t%w", err)
	}
	return string(data), nil
}

func renderYAML(value any) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("unable to render yaml:\n\t%w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
