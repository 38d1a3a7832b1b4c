// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// Encoder is an interface for standard encoder types
type Encoder interface {
	// Encode encodes to io.Writer specified at creation
	Encode(v any) error
}

// EncoderFunc is a function that creates a new Encoder for given writer
type EncoderFunc func(w io.Writer) Encoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// NewEncoderFunc returns a EncoderFunc for a specific Encoder type
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Decoders and encoders of the supported file formats.
var (
	TOMLDecoder = NewDecoderFunc(toml.NewDecoder)
	TOMLEncoder = NewEncoderFunc(toml.NewEncoder)
	YAMLDecoder = NewDecoderFunc(yaml.NewDecoder)
	YAMLEncoder = NewEncoderFunc(yaml.NewEncoder)
)

// Codecs returns the decoder and encoder for the given filename,
// based on its extension: .toml, .yaml or .yml.
func Codecs(filename string) (DecoderFunc, EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOMLDecoder, TOMLEncoder, nil
	case ".yaml", ".yml":
		return YAMLDecoder, YAMLEncoder, nil
	}
	return nil, nil, fmt.Errorf("config: unsupported file type %q (must be .toml, .yaml or .yml)", filepath.Ext(filename))
}

// Open reads the given config file over the current values,
// using the format given by its extension, and clamps the result.
func (cfg *Config) Open(filename string) error {
	dec, _, err := Codecs(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(cfg, bufio.NewReader(fp), dec); err != nil {
		return fmt.Errorf("config: reading %s: %w", filename, err)
	}
	cfg.Clamp()
	return nil
}

// Save writes the config to the given file,
// using the format given by its extension.
func (cfg *Config) Save(filename string) error {
	_, enc, err := Codecs(filename)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := Write(cfg, &b, enc); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Load returns the default config overridden by the given file,
// if the filename is non-empty.
func Load(filename string) (Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	err := cfg.Open(filename)
	return cfg, err
}

// Read reads object encoding from the given reader,
// using the given [DecoderFunc]. An empty input leaves v unchanged.
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	err := d.Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// ReadBytes reads object encoding from the given bytes,
// using the given [DecoderFunc]
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	b := bytes.NewBuffer(data)
	return Read(v, b, f)
}

// Write writes object encoding to the given writer,
// using the given [EncoderFunc]. Encoders that buffer
// output (such as YAML) are closed to flush it.
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	if err := e.Encode(v); err != nil {
		return err
	}
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
